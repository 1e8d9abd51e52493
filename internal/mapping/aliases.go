// Package mapping implements the dynamic parameter mapper (C6) and the
// value-type detector (C7) from spec §4.6/§4.6a: given an unfamiliar car's
// existing setup files, discover which of its AC-style parameter names
// back each canonical internal parameter, and whether that car's sliders
// speak in discrete clicks or continuous physical units.
package mapping

// ParameterCategories lists, for every internal parameter name, the AC
// parameter names that could represent it, in the priority order a car's
// own setup files are checked. Verbatim from the reference parameter
// table; a car that never uses a listed alias simply has no mapping for
// that internal name, which downstream conversion treats as "unmapped".
var ParameterCategories = map[string][]string{
	"pressure_lf": {"PRESSURE_LF", "TYRE_PRESSURE_LF", "TYRE_PRESSURE_0", "PRESSURE_FL", "TIRE_PRESSURE_LF"},
	"pressure_rf": {"PRESSURE_RF", "TYRE_PRESSURE_RF", "TYRE_PRESSURE_1", "PRESSURE_FR", "TIRE_PRESSURE_RF"},
	"pressure_lr": {"PRESSURE_LR", "TYRE_PRESSURE_LR", "TYRE_PRESSURE_2", "PRESSURE_RL", "TIRE_PRESSURE_LR"},
	"pressure_rr": {"PRESSURE_RR", "TYRE_PRESSURE_RR", "TYRE_PRESSURE_3", "TIRE_PRESSURE_RR"},

	"camber_lf": {"CAMBER_LF", "CAMBER_ANGLE_LF", "CAMBER_FL", "CAMBER_0", "FRONT_CAMBER_L"},
	"camber_rf": {"CAMBER_RF", "CAMBER_ANGLE_RF", "CAMBER_FR", "CAMBER_1", "FRONT_CAMBER_R"},
	"camber_lr": {"CAMBER_LR", "CAMBER_ANGLE_LR", "CAMBER_RL", "CAMBER_2", "REAR_CAMBER_L"},
	"camber_rr": {"CAMBER_RR", "CAMBER_ANGLE_RR", "CAMBER_3", "REAR_CAMBER_R"},

	"toe_lf": {"TOE_OUT_LF", "TOE_LF", "TOE_ANGLE_LF", "TOE_FL", "TOE_0", "FRONT_TOE_L"},
	"toe_rf": {"TOE_OUT_RF", "TOE_RF", "TOE_ANGLE_RF", "TOE_FR", "TOE_1", "FRONT_TOE_R"},
	"toe_lr": {"TOE_OUT_LR", "TOE_LR", "TOE_ANGLE_LR", "TOE_RL", "TOE_2", "REAR_TOE_L"},
	"toe_rr": {"TOE_OUT_RR", "TOE_RR", "TOE_ANGLE_RR", "TOE_3", "REAR_TOE_R"},

	"spring_lf": {"SPRING_RATE_LF", "SPRING_LF", "SPRING_RATE_FL", "SPRING_0", "FRONT_SPRING_L", "ROD_LENGTH_LF"},
	"spring_rf": {"SPRING_RATE_RF", "SPRING_RF", "SPRING_RATE_FR", "SPRING_1", "FRONT_SPRING_R", "ROD_LENGTH_RF"},
	"spring_lr": {"SPRING_RATE_LR", "SPRING_LR", "SPRING_RATE_RL", "SPRING_2", "REAR_SPRING_L", "ROD_LENGTH_LR"},
	"spring_rr": {"SPRING_RATE_RR", "SPRING_RR", "SPRING_3", "REAR_SPRING_R", "ROD_LENGTH_RR"},

	"ride_height_lf": {"ROD_LENGTH_LF", "RIDE_HEIGHT_LF", "HEIGHT_LF", "FRONT_HEIGHT_L", "PACKER_LF"},
	"ride_height_rf": {"ROD_LENGTH_RF", "RIDE_HEIGHT_RF", "HEIGHT_RF", "FRONT_HEIGHT_R", "PACKER_RF"},
	"ride_height_lr": {"ROD_LENGTH_LR", "RIDE_HEIGHT_LR", "HEIGHT_LR", "REAR_HEIGHT_L", "PACKER_LR"},
	"ride_height_rr": {"ROD_LENGTH_RR", "RIDE_HEIGHT_RR", "HEIGHT_RR", "REAR_HEIGHT_R", "PACKER_RR"},

	"damp_bump_lf": {"DAMP_BUMP_LF", "BUMP_LF", "SLOW_BUMP_LF", "DAMPER_BUMP_LF", "DAMPER_0_BUMP"},
	"damp_bump_rf": {"DAMP_BUMP_RF", "BUMP_RF", "SLOW_BUMP_RF", "DAMPER_BUMP_RF", "DAMPER_1_BUMP"},
	"damp_bump_lr": {"DAMP_BUMP_LR", "BUMP_LR", "SLOW_BUMP_LR", "DAMPER_BUMP_LR", "DAMPER_2_BUMP"},
	"damp_bump_rr": {"DAMP_BUMP_RR", "BUMP_RR", "SLOW_BUMP_RR", "DAMPER_BUMP_RR", "DAMPER_3_BUMP"},

	"damp_rebound_lf": {"DAMP_REBOUND_LF", "REBOUND_LF", "SLOW_REBOUND_LF", "DAMPER_REBOUND_LF", "DAMPER_0_REBOUND"},
	"damp_rebound_rf": {"DAMP_REBOUND_RF", "REBOUND_RF", "SLOW_REBOUND_RF", "DAMPER_REBOUND_RF", "DAMPER_1_REBOUND"},
	"damp_rebound_lr": {"DAMP_REBOUND_LR", "REBOUND_LR", "SLOW_REBOUND_LR", "DAMPER_REBOUND_LR", "DAMPER_2_REBOUND"},
	"damp_rebound_rr": {"DAMP_REBOUND_RR", "REBOUND_RR", "SLOW_REBOUND_RR", "DAMPER_REBOUND_RR", "DAMPER_3_REBOUND"},

	"damp_fast_bump_lf": {"DAMP_FAST_BUMP_LF", "FAST_BUMP_LF", "DAMPER_FAST_BUMP_LF"},
	"damp_fast_bump_rf": {"DAMP_FAST_BUMP_RF", "FAST_BUMP_RF", "DAMPER_FAST_BUMP_RF"},
	"damp_fast_bump_lr": {"DAMP_FAST_BUMP_LR", "FAST_BUMP_LR", "DAMPER_FAST_BUMP_LR"},
	"damp_fast_bump_rr": {"DAMP_FAST_BUMP_RR", "FAST_BUMP_RR", "DAMPER_FAST_BUMP_RR"},

	"damp_fast_rebound_lf": {"DAMP_FAST_REBOUND_LF", "FAST_REBOUND_LF", "DAMPER_FAST_REBOUND_LF"},
	"damp_fast_rebound_rf": {"DAMP_FAST_REBOUND_RF", "FAST_REBOUND_RF", "DAMPER_FAST_REBOUND_RF"},
	"damp_fast_rebound_lr": {"DAMP_FAST_REBOUND_LR", "FAST_REBOUND_LR", "DAMPER_FAST_REBOUND_LR"},
	"damp_fast_rebound_rr": {"DAMP_FAST_REBOUND_RR", "FAST_REBOUND_RR", "DAMPER_FAST_REBOUND_RR"},

	"arb_front": {"ARB_FRONT", "FRONT_ARB", "ANTIROLL_FRONT", "SWAY_BAR_FRONT", "ARB_0"},
	"arb_rear":  {"ARB_REAR", "REAR_ARB", "ANTIROLL_REAR", "SWAY_BAR_REAR", "ARB_1"},

	"diff_power":   {"POWER", "DIFF_POWER", "LOCK_POWER", "ACCEL_LOCK", "DIFF_LOCK_POWER"},
	"diff_coast":   {"COAST", "DIFF_COAST", "LOCK_COAST", "DECEL_LOCK", "DIFF_LOCK_COAST"},
	"diff_preload": {"PRELOAD", "DIFF_PRELOAD", "DIFF_PRELOAD_NM"},

	"brake_bias":  {"FRONT_BIAS", "BRAKE_BIAS", "BIAS", "BRAKE_BALANCE", "FRONT_BRAKE_BIAS"},
	"brake_power": {"BRAKE_POWER_MULT", "BRAKE_POWER", "BRAKE_FORCE"},

	"wing_front": {"WING_0", "FRONT_WING", "FWING", "WING_FRONT", "AERO_FRONT", "SPLITTER"},
	"wing_rear":  {"WING_1", "REAR_WING", "RWING", "WING_REAR", "AERO_REAR", "WING_2", "SPOILER", "WING"},

	"fuel":  {"FUEL", "FUEL_LOAD", "FUEL_LEVEL"},
	"tyres": {"TYRES", "TYRE_COMPOUND", "COMPOUND", "TIRE_COMPOUND"},

	"caster_lf": {"CASTER_LF", "CASTER_FL", "FRONT_CASTER_L"},
	"caster_rf": {"CASTER_RF", "CASTER_FR", "FRONT_CASTER_R"},
}

// metaSections are setup-file headers that are not parameters and must be
// skipped when scanning a file for available section names.
var metaSections = map[string]bool{
	"CAR": true, "__EXT_PATCH": true, "VERSION": true, "INFO": true,
}

func buildMapping(available map[string]bool) map[string]string {
	mapping := make(map[string]string, len(ParameterCategories))
	for internalName, candidates := range ParameterCategories {
		for _, acName := range candidates {
			if available[acName] {
				mapping[internalName] = acName
				break
			}
		}
	}
	return mapping
}
