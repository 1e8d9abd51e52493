package category

import "github.com/raceeng/setupgen/internal/model"

// Targets is the static, read-only physical-target bundle for one
// category (spec §3 CategoryTargets / §4.2).
type Targets struct {
	FrequencyFrontHz     float64
	FrequencyRearHz      float64
	DampingRatio         float64
	BumpReboundRatio     float64
	FastSlowRatio        float64
	HotPressureFrontPSI  float64
	HotPressureRearPSI   float64
	PressureGainPerLapPSI float64
	CamberFrontDeg       float64
	CamberRearDeg        float64
	ToeFrontDeg          float64
	ToeRearDeg           float64
	CasterDeg            float64
	RakeDeg              float64
	RideHeightFrontMM    float64
	RideHeightRearMM     float64
	AeroBalance          float64 // 0 = all front, 1 = all rear
	DiffPowerPct         float64
	DiffCoastPct         float64
	DiffPreloadNm        float64
	ARBFront             float64
	ARBRear              float64
	BrakeBiasFrontPct    float64
}

// table holds the engineer-validated constants from spec §4.2. These
// values are a fixed, immutable part of the process; Lookup never
// mutates them.
var table = map[model.CategoryTag]Targets{
	model.CategoryFormula: {
		FrequencyFrontHz: 3.8, FrequencyRearHz: 4.2, DampingRatio: 0.65,
		BumpReboundRatio: 3.0, FastSlowRatio: 2.5,
		HotPressureFrontPSI: 24.0, HotPressureRearPSI: 23.0, PressureGainPerLapPSI: 1.2,
		CamberFrontDeg: -3.5, CamberRearDeg: -2.0, ToeFrontDeg: -0.05, ToeRearDeg: 0.10,
		CasterDeg: 7.0, RakeDeg: 1.5, RideHeightFrontMM: 35, RideHeightRearMM: 50,
		AeroBalance: 0.45, DiffPowerPct: 75, DiffCoastPct: 55, DiffPreloadNm: 40,
		ARBFront: 8.0, ARBRear: 7.0, BrakeBiasFrontPct: 56,
	},
	model.CategoryPrototype: {
		FrequencyFrontHz: 3.5, FrequencyRearHz: 3.8, DampingRatio: 0.68,
		BumpReboundRatio: 2.8, FastSlowRatio: 2.2,
		HotPressureFrontPSI: 26.0, HotPressureRearPSI: 25.5, PressureGainPerLapPSI: 1.0,
		CamberFrontDeg: -3.8, CamberRearDeg: -2.5, ToeFrontDeg: -0.03, ToeRearDeg: 0.12,
		CasterDeg: 6.5, RakeDeg: 1.8, RideHeightFrontMM: 40, RideHeightRearMM: 58,
		AeroBalance: 0.48, DiffPowerPct: 70, DiffCoastPct: 55, DiffPreloadNm: 35,
		ARBFront: 7.5, ARBRear: 6.5, BrakeBiasFrontPct: 57,
	},
	model.CategoryGT: {
		FrequencyFrontHz: 2.8, FrequencyRearHz: 3.0, DampingRatio: 0.70,
		BumpReboundRatio: 2.5, FastSlowRatio: 2.0,
		HotPressureFrontPSI: 27.5, HotPressureRearPSI: 27.0, PressureGainPerLapPSI: 0.8,
		CamberFrontDeg: -4.0, CamberRearDeg: -3.0, ToeFrontDeg: -0.05, ToeRearDeg: 0.15,
		CasterDeg: 6.0, RakeDeg: 0.8, RideHeightFrontMM: 50, RideHeightRearMM: 58,
		AeroBalance: 0.50, DiffPowerPct: 65, DiffCoastPct: 50, DiffPreloadNm: 30,
		ARBFront: 6.0, ARBRear: 5.0, BrakeBiasFrontPct: 58,
	},
	model.CategoryStreetSport: {
		FrequencyFrontHz: 2.2, FrequencyRearHz: 2.4, DampingRatio: 0.55,
		BumpReboundRatio: 2.2, FastSlowRatio: 1.8,
		HotPressureFrontPSI: 30.0, HotPressureRearPSI: 28.0, PressureGainPerLapPSI: 0.6,
		CamberFrontDeg: -2.8, CamberRearDeg: -2.2, ToeFrontDeg: 0.05, ToeRearDeg: 0.15,
		CasterDeg: 5.5, RakeDeg: 0.3, RideHeightFrontMM: 90, RideHeightRearMM: 95,
		AeroBalance: 0.52, DiffPowerPct: 45, DiffCoastPct: 35, DiffPreloadNm: 25,
		ARBFront: 5.5, ARBRear: 4.5, BrakeBiasFrontPct: 58,
	},
	model.CategoryStreet: {
		FrequencyFrontHz: 1.8, FrequencyRearHz: 2.0, DampingRatio: 0.50,
		BumpReboundRatio: 2.0, FastSlowRatio: 1.5,
		HotPressureFrontPSI: 32.0, HotPressureRearPSI: 30.0, PressureGainPerLapPSI: 0.5,
		CamberFrontDeg: -2.5, CamberRearDeg: -2.0, ToeFrontDeg: 0.05, ToeRearDeg: 0.15,
		CasterDeg: 5.0, RakeDeg: 0.0, RideHeightFrontMM: 100, RideHeightRearMM: 105,
		AeroBalance: 0.55, DiffPowerPct: 40, DiffCoastPct: 30, DiffPreloadNm: 20,
		ARBFront: 5.0, ARBRear: 4.0, BrakeBiasFrontPct: 60,
	},
	model.CategoryVintage: {
		FrequencyFrontHz: 1.5, FrequencyRearHz: 1.6, DampingRatio: 0.45,
		BumpReboundRatio: 1.8, FastSlowRatio: 1.3,
		HotPressureFrontPSI: 28.0, HotPressureRearPSI: 26.0, PressureGainPerLapPSI: 0.4,
		CamberFrontDeg: -1.5, CamberRearDeg: -1.0, ToeFrontDeg: 0.10, ToeRearDeg: 0.20,
		CasterDeg: 3.0, RakeDeg: 0.0, RideHeightFrontMM: 120, RideHeightRearMM: 125,
		AeroBalance: 0.50, DiffPowerPct: 30, DiffCoastPct: 20, DiffPreloadNm: 10,
		ARBFront: 3.0, ARBRear: 2.5, BrakeBiasFrontPct: 55,
	},
	model.CategoryDrift: {
		FrequencyFrontHz: 2.5, FrequencyRearHz: 1.8, DampingRatio: 0.60,
		BumpReboundRatio: 2.0, FastSlowRatio: 1.6,
		HotPressureFrontPSI: 32.0, HotPressureRearPSI: 36.0, PressureGainPerLapPSI: 0.7,
		CamberFrontDeg: -3.5, CamberRearDeg: -1.0, ToeFrontDeg: -0.05, ToeRearDeg: -0.15,
		CasterDeg: 6.5, RakeDeg: 0.2, RideHeightFrontMM: 110, RideHeightRearMM: 120,
		AeroBalance: 0.70, DiffPowerPct: 85, DiffCoastPct: 65, DiffPreloadNm: 50,
		ARBFront: 7.0, ARBRear: 3.0, BrakeBiasFrontPct: 65,
	},
}

// Lookup returns the fixed target bundle for a category. Every
// CategoryTag returned by Classify has an entry; Lookup never returns a
// zero value for a tag produced by this package.
func Lookup(tag model.CategoryTag) Targets {
	return table[tag]
}
