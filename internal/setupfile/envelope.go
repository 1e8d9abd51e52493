package setupfile

// Hard limit envelope from spec §4.2. Clamping against these bounds is
// always the final step before a value is considered valid (testable
// property 1); it is applied both by the physics stages directly on
// physical units and by the smart converter (C8) on the resulting
// integers.
const (
	PressureMinPSI = 20.0
	PressureMaxPSI = 35.0

	CamberMinDeg = -5.0
	CamberMaxDeg = 0.0

	ToeMinDeg = -0.5
	ToeMaxDeg = 0.5

	SpringMinNPerM = 35000.0
	SpringMaxNPerM = 150000.0

	DamperSlowMinNsPerM = 1000.0
	DamperSlowMaxNsPerM = 12000.0
	DamperFastMinNsPerM = 500.0
	DamperFastMaxNsPerM = 10000.0

	RideHeightMinMM = 30.0
	RideHeightMaxMM = 85.0

	ARBMin = 0.0
	ARBMax = 10.0

	DiffPowerCoastMin = 0.0
	DiffPowerCoastMax = 100.0
	DiffPreloadMin    = 0.0
	DiffPreloadMax    = 200.0

	BrakeBiasMinPct = 40.0
	BrakeBiasMaxPct = 80.0

	FuelMin = 5.0
	FuelMax = 100.0
)

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
