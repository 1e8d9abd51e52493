package writer

import "github.com/raceeng/setupgen/internal/setupfile"

type fieldRef struct {
	Section string
	Key     string
}

// canonicalFields maps the lowercase internal parameter names shared with
// internal/mapping's alias table onto the (section, key) pair our own
// Setup stores that value under.
var canonicalFields = map[string]fieldRef{
	"pressure_lf": {setupfile.SectionTyres, "PRESSURE_LF"},
	"pressure_rf": {setupfile.SectionTyres, "PRESSURE_RF"},
	"pressure_lr": {setupfile.SectionTyres, "PRESSURE_LR"},
	"pressure_rr": {setupfile.SectionTyres, "PRESSURE_RR"},

	"camber_lf": {setupfile.SectionAlignment, "CAMBER_LF"},
	"camber_rf": {setupfile.SectionAlignment, "CAMBER_RF"},
	"camber_lr": {setupfile.SectionAlignment, "CAMBER_LR"},
	"camber_rr": {setupfile.SectionAlignment, "CAMBER_RR"},

	"toe_lf": {setupfile.SectionAlignment, "TOE_LF"},
	"toe_rf": {setupfile.SectionAlignment, "TOE_RF"},
	"toe_lr": {setupfile.SectionAlignment, "TOE_LR"},
	"toe_rr": {setupfile.SectionAlignment, "TOE_RR"},

	"spring_lf": {setupfile.SectionSuspension, "SPRING_RATE_LF"},
	"spring_rf": {setupfile.SectionSuspension, "SPRING_RATE_RF"},
	"spring_lr": {setupfile.SectionSuspension, "SPRING_RATE_LR"},
	"spring_rr": {setupfile.SectionSuspension, "SPRING_RATE_RR"},

	"ride_height_lf": {setupfile.SectionSuspension, "RIDE_HEIGHT_LF"},
	"ride_height_rf": {setupfile.SectionSuspension, "RIDE_HEIGHT_RF"},
	"ride_height_lr": {setupfile.SectionSuspension, "RIDE_HEIGHT_LR"},
	"ride_height_rr": {setupfile.SectionSuspension, "RIDE_HEIGHT_RR"},

	"damp_bump_lf": {setupfile.SectionSuspension, "DAMP_BUMP_LF"},
	"damp_bump_rf": {setupfile.SectionSuspension, "DAMP_BUMP_RF"},
	"damp_bump_lr": {setupfile.SectionSuspension, "DAMP_BUMP_LR"},
	"damp_bump_rr": {setupfile.SectionSuspension, "DAMP_BUMP_RR"},

	"damp_rebound_lf": {setupfile.SectionSuspension, "DAMP_REBOUND_LF"},
	"damp_rebound_rf": {setupfile.SectionSuspension, "DAMP_REBOUND_RF"},
	"damp_rebound_lr": {setupfile.SectionSuspension, "DAMP_REBOUND_LR"},
	"damp_rebound_rr": {setupfile.SectionSuspension, "DAMP_REBOUND_RR"},

	"damp_fast_bump_lf": {setupfile.SectionSuspension, "DAMP_FAST_BUMP_LF"},
	"damp_fast_bump_rf": {setupfile.SectionSuspension, "DAMP_FAST_BUMP_RF"},
	"damp_fast_bump_lr": {setupfile.SectionSuspension, "DAMP_FAST_BUMP_LR"},
	"damp_fast_bump_rr": {setupfile.SectionSuspension, "DAMP_FAST_BUMP_RR"},

	"damp_fast_rebound_lf": {setupfile.SectionSuspension, "DAMP_FAST_REBOUND_LF"},
	"damp_fast_rebound_rf": {setupfile.SectionSuspension, "DAMP_FAST_REBOUND_RF"},
	"damp_fast_rebound_lr": {setupfile.SectionSuspension, "DAMP_FAST_REBOUND_LR"},
	"damp_fast_rebound_rr": {setupfile.SectionSuspension, "DAMP_FAST_REBOUND_RR"},

	"arb_front": {setupfile.SectionARB, "FRONT"},
	"arb_rear":  {setupfile.SectionARB, "REAR"},

	"diff_power":   {setupfile.SectionDifferential, "POWER"},
	"diff_coast":   {setupfile.SectionDifferential, "COAST"},
	"diff_preload": {setupfile.SectionDifferential, "PRELOAD"},

	"brake_bias":  {setupfile.SectionBrakes, "FRONT_BIAS"},
	"brake_power": {setupfile.SectionBrakes, "BRAKE_POWER_MULT"},

	"wing_front": {setupfile.SectionAero, "WING_FRONT"},
	"wing_rear":  {setupfile.SectionAero, "WING_REAR"},

	"fuel": {setupfile.SectionFuel, "FUEL"},
}

// fieldAlternatives lists extra (section, key) pairs worth trying when the
// primary canonical key has no value in the Setup, mirroring the writer's
// fallback for keys a different stage may have written under a game alias.
var fieldAlternatives = map[string][]fieldRef{
	"brake_bias":  {{setupfile.SectionBrakes, "BIAS"}, {setupfile.SectionBrakes, "BRAKE_BIAS"}},
	"brake_power": {{setupfile.SectionBrakes, "BRAKE_POWER"}},
	"wing_front":  {{setupfile.SectionAero, "WING_0"}, {setupfile.SectionAero, "FWING"}},
	"wing_rear":   {{setupfile.SectionAero, "WING_1"}, {setupfile.SectionAero, "RWING"}, {setupfile.SectionAero, "WING"}},
}

func lookupValue(s *setupfile.Setup, internalName string) (float64, bool) {
	ref := canonicalFields[internalName]
	if v, ok := s.Get(ref.Section, ref.Key); ok {
		return v, true
	}
	for _, alt := range fieldAlternatives[internalName] {
		if v, ok := s.Get(alt.Section, alt.Key); ok {
			return v, true
		}
	}
	return 0, false
}
