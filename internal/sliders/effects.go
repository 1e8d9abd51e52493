// Package sliders implements the slider interdependency engine (C5, spec
// §4.5): each named preference slider fans out to a list of correlated
// parameter effects, evaluated in the fixed order below so pipeline runs
// stay reproducible.
package sliders

import "github.com/raceeng/setupgen/internal/setupfile"

// Op is the arithmetic an Effect applies to the current value.
type Op int

const (
	OpAdd Op = iota
	OpMultiply
	OpSet
)

// Effect is one correlated parameter change a slider drives at full
// deflection (slider_value contributing normalized = 1.0).
type Effect struct {
	Section       string
	Key           string
	Op            Op
	BaseMagnitude float64
	Description   string
}

// centeredSliders are interpreted around 0.5 (n = (value-0.5)*2, range
// [-1,+1]); all others are zero-based (n = value, range [0,1]).
var centeredSliders = map[string]bool{
	"rotation": true,
	"slide":    true,
}

// definitions reproduces spec §4.5's per-slider effect lists verbatim,
// grounded on original_source/core/slider_interdependencies.py.
var definitions = map[string][]Effect{
	"aero": {
		{setupfile.SectionAero, "WING_REAR", OpAdd, 8.0, "Rear wing: +8 clicks at max"},
		{setupfile.SectionAero, "WING_FRONT", OpAdd, 4.0, "Front wing: +4 clicks at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_LF", OpAdd, -5.0, "Front ride height: -5mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_RF", OpAdd, -5.0, "Front ride height: -5mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_LR", OpAdd, 3.0, "Rear ride height: +3mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_RR", OpAdd, 3.0, "Rear ride height: +3mm at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_LR", OpMultiply, 0.15, "Rear springs: +15% at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_RR", OpMultiply, 0.15, "Rear springs: +15% at max"},
		{setupfile.SectionARB, "REAR", OpMultiply, 0.10, "Rear ARB: +10% at max"},
	},
	"rotation": {
		{setupfile.SectionAlignment, "TOE_LR", OpAdd, 0.4, "Rear toe: +0.4 toe-out at max"},
		{setupfile.SectionAlignment, "TOE_RR", OpAdd, 0.4, "Rear toe: +0.4 toe-out at max"},
		{setupfile.SectionARB, "REAR", OpMultiply, 0.30, "Rear ARB: +30% at max"},
		{setupfile.SectionARB, "FRONT", OpMultiply, -0.15, "Front ARB: -15% at max"},
		{setupfile.SectionDifferential, "COAST", OpAdd, -15.0, "Diff coast: -15 at max"},
		{setupfile.SectionBrakes, "FRONT_BIAS", OpAdd, -3.0, "Brake bias: -3% front at max"},
		{setupfile.SectionAlignment, "CAMBER_LR", OpAdd, 0.5, "Rear camber: +0.5 at max"},
		{setupfile.SectionAlignment, "CAMBER_RR", OpAdd, 0.5, "Rear camber: +0.5 at max"},
	},
	"slide": {
		{setupfile.SectionAlignment, "CAMBER_LR", OpAdd, 1.5, "Rear camber: +1.5 at max"},
		{setupfile.SectionAlignment, "CAMBER_RR", OpAdd, 1.5, "Rear camber: +1.5 at max"},
		{setupfile.SectionAlignment, "TOE_LR", OpAdd, 0.3, "Rear toe: +0.3 toe-out at max"},
		{setupfile.SectionAlignment, "TOE_RR", OpAdd, 0.3, "Rear toe: +0.3 toe-out at max"},
		{setupfile.SectionDifferential, "POWER", OpAdd, 20.0, "Diff power: +20 at max"},
		{setupfile.SectionTyres, "PRESSURE_LR", OpAdd, 2.0, "Rear pressure: +2 PSI at max"},
		{setupfile.SectionTyres, "PRESSURE_RR", OpAdd, 2.0, "Rear pressure: +2 PSI at max"},
		{setupfile.SectionAlignment, "CAMBER_LF", OpAdd, -0.5, "Front camber: -0.5 at max"},
		{setupfile.SectionAlignment, "CAMBER_RF", OpAdd, -0.5, "Front camber: -0.5 at max"},
	},
	"aggression": {
		{setupfile.SectionSuspension, "RIDE_HEIGHT_LF", OpAdd, -8.0, "Ride height: -8mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_RF", OpAdd, -8.0, "Ride height: -8mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_LR", OpAdd, -6.0, "Rear ride height: -6mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_RR", OpAdd, -6.0, "Rear ride height: -6mm at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_LF", OpMultiply, 0.25, "Springs: +25% at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_RF", OpMultiply, 0.25, "Springs: +25% at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_LR", OpMultiply, 0.25, "Springs: +25% at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_RR", OpMultiply, 0.25, "Springs: +25% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_LF", OpMultiply, 0.30, "Rebound damping: +30% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_RF", OpMultiply, 0.30, "Rebound damping: +30% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_LR", OpMultiply, 0.30, "Rebound damping: +30% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_RR", OpMultiply, 0.30, "Rebound damping: +30% at max"},
		{setupfile.SectionSuspension, "DAMP_BUMP_LF", OpMultiply, 0.20, "Bump damping: +20% at max"},
		{setupfile.SectionSuspension, "DAMP_BUMP_RF", OpMultiply, 0.20, "Bump damping: +20% at max"},
		{setupfile.SectionSuspension, "DAMP_BUMP_LR", OpMultiply, 0.20, "Bump damping: +20% at max"},
		{setupfile.SectionSuspension, "DAMP_BUMP_RR", OpMultiply, 0.20, "Bump damping: +20% at max"},
		{setupfile.SectionBrakes, "BRAKE_POWER_MULT", OpMultiply, 0.15, "Brake power: +15% at max"},
	},
	"drift": {
		{setupfile.SectionDifferential, "POWER", OpAdd, 40.0, "Diff power: +40 at max"},
		{setupfile.SectionDifferential, "COAST", OpAdd, 30.0, "Diff coast: +30 at max"},
		{setupfile.SectionDifferential, "PRELOAD", OpAdd, 30.0, "Diff preload: +30 Nm at max"},
		{setupfile.SectionAlignment, "CAMBER_LR", OpAdd, 2.5, "Rear camber: +2.5 at max"},
		{setupfile.SectionAlignment, "CAMBER_RR", OpAdd, 2.5, "Rear camber: +2.5 at max"},
		{setupfile.SectionAlignment, "TOE_LR", OpAdd, 0.5, "Rear toe: +0.5 toe-out at max"},
		{setupfile.SectionAlignment, "TOE_RR", OpAdd, 0.5, "Rear toe: +0.5 toe-out at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_LR", OpMultiply, -0.20, "Rear springs: -20% at max"},
		{setupfile.SectionSuspension, "SPRING_RATE_RR", OpMultiply, -0.20, "Rear springs: -20% at max"},
		{setupfile.SectionAlignment, "CAMBER_LF", OpAdd, -1.0, "Front camber: -1.0 at max"},
		{setupfile.SectionAlignment, "CAMBER_RF", OpAdd, -1.0, "Front camber: -1.0 at max"},
		{setupfile.SectionBrakes, "FRONT_BIAS", OpAdd, 5.0, "Brake bias: +5% front at max"},
		{setupfile.SectionTyres, "PRESSURE_LR", OpAdd, 3.0, "Rear pressure: +3 PSI at max"},
		{setupfile.SectionTyres, "PRESSURE_RR", OpAdd, 3.0, "Rear pressure: +3 PSI at max"},
	},
	"performance": {
		{setupfile.SectionSuspension, "DAMP_BUMP_LF", OpMultiply, 0.40, "Bump damping: +40% at max"},
		{setupfile.SectionSuspension, "DAMP_BUMP_RF", OpMultiply, 0.40, "Bump damping: +40% at max"},
		{setupfile.SectionSuspension, "DAMP_BUMP_LR", OpMultiply, 0.40, "Bump damping: +40% at max"},
		{setupfile.SectionSuspension, "DAMP_BUMP_RR", OpMultiply, 0.40, "Bump damping: +40% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_LF", OpMultiply, 0.40, "Rebound damping: +40% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_RF", OpMultiply, 0.40, "Rebound damping: +40% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_LR", OpMultiply, 0.40, "Rebound damping: +40% at max"},
		{setupfile.SectionSuspension, "DAMP_REBOUND_RR", OpMultiply, 0.40, "Rebound damping: +40% at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_LF", OpAdd, -6.0, "Ride height: -6mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_RF", OpAdd, -6.0, "Ride height: -6mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_LR", OpAdd, -4.0, "Rear ride height: -4mm at max"},
		{setupfile.SectionSuspension, "RIDE_HEIGHT_RR", OpAdd, -4.0, "Rear ride height: -4mm at max"},
		{setupfile.SectionTyres, "PRESSURE_LF", OpAdd, -1.0, "Front pressure: -1 PSI at max"},
		{setupfile.SectionTyres, "PRESSURE_RF", OpAdd, -1.0, "Front pressure: -1 PSI at max"},
		{setupfile.SectionTyres, "PRESSURE_LR", OpAdd, -0.5, "Rear pressure: -0.5 PSI at max"},
		{setupfile.SectionTyres, "PRESSURE_RR", OpAdd, -0.5, "Rear pressure: -0.5 PSI at max"},
	},
}

// sliderOrder fixes the evaluation order across a single apply_all call,
// matching spec §4.5's listing order so runs stay reproducible.
var sliderOrder = []string{"aero", "rotation", "slide", "aggression", "drift", "performance"}

// aliases lets an effect reach a canonical key even when the Setup was
// populated under a different game alias (spec §4.5 step 3).
var aliases = map[string][]string{
	"WING_REAR":        {"WING_1", "REAR_WING", "RWING", "WING"},
	"WING_FRONT":       {"WING_0", "FRONT_WING", "FWING"},
	"FRONT_BIAS":       {"BRAKE_BIAS", "BIAS"},
	"BRAKE_POWER_MULT": {"BRAKE_POWER"},
}

func isSpringOrDamperKey(key string) bool {
	return hasPrefix(key, "SPRING_") || hasPrefix(key, "DAMP_")
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
