package physics

import (
	"math"

	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

// MotionRatios holds the front/rear motion ratio used by the spring
// correction pass (C4a). mr < 1 means "spring moves less than wheel" and
// so needs a stiffer spring: k_spring = k_wheel / mr^2 (spec §9.1.3).
type MotionRatios struct {
	Front float64
	Rear  float64
}

// defaultMotionRatios are the category fallbacks used when a car has no
// override in the per-car table (spec §4.4a).
var defaultMotionRatios = map[model.CategoryTag]MotionRatios{
	model.CategoryFormula:     {Front: 1.0, Rear: 1.0},
	model.CategoryPrototype:   {Front: 0.95, Rear: 0.95},
	model.CategoryGT:          {Front: 0.9, Rear: 0.8},
	model.CategoryStreetSport: {Front: 0.85, Rear: 0.75},
	model.CategoryStreet:      {Front: 0.8, Rear: 0.7},
	model.CategoryVintage:     {Front: 0.75, Rear: 0.65},
	model.CategoryDrift:       {Front: 0.85, Rear: 0.7},
}

// DefaultMotionRatios returns the category fallback motion ratios.
func DefaultMotionRatios(tag model.CategoryTag) MotionRatios {
	return defaultMotionRatios[tag]
}

var corners = []string{"LF", "RF", "LR", "RR"}
var frontCorners = []string{"LF", "RF"}
var rearCorners = []string{"LR", "RR"}

// Refine applies the three post-processing passes of spec §4.4 in order:
// motion-ratio spring correction, anti-bottoming, fast-damper cap. It
// never reads the profile or conditions — only category, rake, track
// type, and any per-car motion-ratio override.
func Refine(s *setupfile.Setup, categoryTag model.CategoryTag, rakeDeg float64, trackType model.TrackType, overrides *MotionRatios) *setupfile.Setup {
	mr := DefaultMotionRatios(categoryTag)
	if overrides != nil {
		mr = *overrides
	}
	applyMotionRatioCorrection(s, mr)
	applyAntiBottoming(s, categoryTag, rakeDeg)
	applyFastDamperCap(s, trackType)
	return s
}

func applyMotionRatioCorrection(s *setupfile.Setup, mr MotionRatios) {
	frontFactor := 1.0 / (mr.Front * mr.Front)
	rearFactor := 1.0 / (mr.Rear * mr.Rear)

	for _, c := range frontCorners {
		scaleSpring(s, c, frontFactor)
	}
	for _, c := range rearCorners {
		scaleSpring(s, c, rearFactor)
	}
}

func scaleSpring(s *setupfile.Setup, corner string, factor float64) {
	key := "SPRING_RATE_" + corner
	if v, ok := s.Get(setupfile.SectionSuspension, key); ok {
		s.Set(setupfile.SectionSuspension, key, v*factor)
	}
}

func applyAntiBottoming(s *setupfile.Setup, categoryTag model.CategoryTag, rakeDeg float64) {
	if categoryTag != model.CategoryFormula && categoryTag != model.CategoryPrototype {
		return
	}
	if rakeDeg <= 1.0 {
		return
	}

	dampScale := math.Sqrt(1.15)
	for _, c := range corners {
		if v, ok := s.Get(setupfile.SectionSuspension, "SPRING_RATE_"+c); ok {
			s.Set(setupfile.SectionSuspension, "SPRING_RATE_"+c, v*1.15)
		}
		for _, slowKey := range []string{"DAMP_BUMP_", "DAMP_REBOUND_"} {
			key := slowKey + c
			if v, ok := s.Get(setupfile.SectionSuspension, key); ok {
				s.Set(setupfile.SectionSuspension, key, v*dampScale)
			}
		}
	}
}

func applyFastDamperCap(s *setupfile.Setup, trackType model.TrackType) {
	if trackType != model.TrackTypeTouge && trackType != model.TrackTypeStreet {
		return
	}

	for _, c := range corners {
		capFastDamper(s, "DAMP_BUMP_"+c, "DAMP_FAST_BUMP_"+c)
		capFastDamper(s, "DAMP_REBOUND_"+c, "DAMP_FAST_REBOUND_"+c)
	}
}

func capFastDamper(s *setupfile.Setup, slowKey, fastKey string) {
	slow, okSlow := s.Get(setupfile.SectionSuspension, slowKey)
	fast, okFast := s.Get(setupfile.SectionSuspension, fastKey)
	if !okSlow || !okFast {
		return
	}
	cap := 0.5 * slow
	if fast > cap {
		s.Set(setupfile.SectionSuspension, fastKey, cap)
	}
}
