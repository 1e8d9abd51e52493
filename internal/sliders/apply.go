package sliders

import (
	"fmt"

	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

// normalize converts a raw [0,1] slider value into the signed magnitude
// fraction an Effect scales by, per spec §4.5's centered/zero-based split.
func normalize(sliderName string, value float64) float64 {
	if centeredSliders[sliderName] {
		return (value - 0.5) * 2
	}
	return value
}

func isNeutral(sliderName string, value float64) bool {
	if centeredSliders[sliderName] {
		return value == 0.5
	}
	return value == 0.0
}

// resolveKey returns the (section, key) actually present in s for a
// canonical effect target, following the alias table when the canonical
// key itself is absent (spec §4.5 step 3).
func resolveKey(s *setupfile.Setup, section, key string) (string, bool) {
	if _, ok := s.Get(section, key); ok {
		return key, true
	}
	for _, alias := range aliases[key] {
		if _, ok := s.Get(section, alias); ok {
			return alias, true
		}
	}
	return key, false
}

// attenuate applies the click-based suspension attenuation rule: when the
// setup is already click-quantized, full-deflection spring/damper effects
// would overshoot by roughly an order of magnitude, so adds are scaled by
// 0.1 and multiplies are scaled by half their magnitude (spec §4.5 step 4).
func attenuate(section, key string, op Op, magnitude float64, isClickBased bool) float64 {
	if !isClickBased || section != setupfile.SectionSuspension || !isSpringOrDamperKey(key) {
		return magnitude
	}
	if op == OpAdd {
		return magnitude * 0.1
	}
	return magnitude * 0.5
}

// ApplyAll runs every slider's effect table against s in the fixed order
// (aero, rotation, slide, aggression, drift, performance), returning the
// mutated setup and a change-log line per effect actually applied. A
// slider at its neutral value contributes nothing and is skipped entirely.
func ApplyAll(s *setupfile.Setup, profile model.Profile, isClickBased bool) (*setupfile.Setup, []string) {
	values := map[string]float64{
		"aero":        profile.Aero,
		"rotation":    profile.Rotation,
		"slide":       profile.Slide,
		"aggression":  profile.Aggression,
		"drift":       profile.Drift,
		"performance": profile.Performance,
	}

	var log []string
	for _, name := range sliderOrder {
		value := values[name]
		if isNeutral(name, value) {
			continue
		}
		n := normalize(name, value)

		for _, eff := range definitions[name] {
			key, found := resolveKey(s, eff.Section, eff.Key)
			if !found {
				log = append(log, fmt.Sprintf("[SKIP] %s.%s: no matching key or alias in setup (%s)",
					eff.Section, eff.Key, eff.Description))
				continue
			}
			magnitude := eff.BaseMagnitude * n
			magnitude = attenuate(eff.Section, key, eff.Op, magnitude, isClickBased)

			current, _ := s.Get(eff.Section, key)
			var next float64
			switch eff.Op {
			case OpAdd:
				next = current + magnitude
			case OpMultiply:
				next = current * (1 + magnitude)
			case OpSet:
				next = magnitude
			}
			s.Set(eff.Section, key, next)
			log = append(log, fmt.Sprintf("[%s] %s.%s: %.4f -> %.4f (%s, slider=%s@%.2f)",
				name, eff.Section, key, current, next, eff.Description, name, value))
		}
	}
	return s, log
}
