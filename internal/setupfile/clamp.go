package setupfile

import "fmt"

// clampRule pairs a (section, key) with the envelope bounds it must sit
// within once C5's slider effects have been applied.
type clampRule struct {
	section  string
	key      string
	min, max float64
}

func envelopeRules() []clampRule {
	var rules []clampRule
	for _, c := range []string{"LF", "RF", "LR", "RR"} {
		rules = append(rules,
			clampRule{SectionTyres, "PRESSURE_" + c, PressureMinPSI, PressureMaxPSI},
			clampRule{SectionAlignment, "CAMBER_" + c, CamberMinDeg, CamberMaxDeg},
			clampRule{SectionAlignment, "TOE_" + c, ToeMinDeg, ToeMaxDeg},
			clampRule{SectionSuspension, "SPRING_RATE_" + c, SpringMinNPerM, SpringMaxNPerM},
			clampRule{SectionSuspension, "RIDE_HEIGHT_" + c, RideHeightMinMM, RideHeightMaxMM},
			clampRule{SectionSuspension, "DAMP_BUMP_" + c, DamperSlowMinNsPerM, DamperSlowMaxNsPerM},
			clampRule{SectionSuspension, "DAMP_REBOUND_" + c, DamperSlowMinNsPerM, DamperSlowMaxNsPerM},
			clampRule{SectionSuspension, "DAMP_FAST_BUMP_" + c, DamperFastMinNsPerM, DamperFastMaxNsPerM},
			clampRule{SectionSuspension, "DAMP_FAST_REBOUND_" + c, DamperFastMinNsPerM, DamperFastMaxNsPerM},
		)
	}
	rules = append(rules,
		clampRule{SectionARB, "FRONT", ARBMin, ARBMax},
		clampRule{SectionARB, "REAR", ARBMin, ARBMax},
		clampRule{SectionDifferential, "POWER", DiffPowerCoastMin, DiffPowerCoastMax},
		clampRule{SectionDifferential, "COAST", DiffPowerCoastMin, DiffPowerCoastMax},
		clampRule{SectionDifferential, "PRELOAD", DiffPreloadMin, DiffPreloadMax},
		clampRule{SectionBrakes, "FRONT_BIAS", BrakeBiasMinPct, BrakeBiasMaxPct},
		clampRule{SectionFuel, "FUEL", FuelMin, FuelMax},
	)
	return rules
}

// ClampEnvelope re-applies the hard-limit envelope to every known field of
// s, after slider effects (C5) have potentially pushed values out of
// range and before the smart converter (C8) turns them into integers
// (spec §7: ValueOutOfEnvelope is locally recovered by clamping here).
// It returns one change-log line per value actually moved.
func ClampEnvelope(s *Setup) []string {
	var log []string
	for _, r := range envelopeRules() {
		v, ok := s.Get(r.section, r.key)
		if !ok {
			continue
		}
		clamped := Clamp(v, r.min, r.max)
		if clamped != v {
			s.Set(r.section, r.key, clamped)
			log = append(log, fmt.Sprintf("[CLAMP] %s.%s: %.4f -> %.4f (envelope [%.1f, %.1f])",
				r.section, r.key, v, clamped, r.min, r.max))
		}
	}
	return log
}
