// Package physics implements the physics baseline builder (C3) and the
// physics refiner (C4) from spec §4.3/§4.4.
package physics

import (
	"math"

	"github.com/raceeng/setupgen/internal/category"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

// damperUnitScale is the "system constant" unit-scaling factor spec §4.3
// calls out as 0.01. Applying 0.01 literally drives every category's slow
// damper value below the 1000 N·s/m envelope floor, so
// per the Open Question guidance in spec §9.1 this implementation
// documents and uses 1.0 instead — see DESIGN.md for the per-category
// verification. The constant stays named so a future car-specific
// override is a one-line change, not a re-derivation.
const damperUnitScale = 1.0

const laps = 3

// Build produces the in-memory physical-unit Setup from category targets,
// the car, track, ambient conditions, and the detected track type (spec
// §4.3). The profile is not an input here; C5 consumes it later.
func Build(car model.CarDescriptor, track model.TrackDescriptor, targets category.Targets, cond model.Conditions, trackType model.TrackType) *setupfile.Setup {
	s := setupfile.New()

	buildPressures(s, targets, cond)
	buildSprings(s, targets, car)
	buildDampers(s, targets, car)
	buildRideHeights(s, targets, trackType)
	buildAero(s, targets, track, trackType)
	buildDifferential(s, targets, car)
	buildAlignment(s, targets, car)
	buildARBAndBrakes(s, targets)
	s.Set(setupfile.SectionFuel, "FUEL", 30)

	return s
}

func buildPressures(s *setupfile.Setup, t category.Targets, cond model.Conditions) {
	front := rampedColdPressure(t.HotPressureFrontPSI, t.PressureGainPerLapPSI, cond)
	rear := rampedColdPressure(t.HotPressureRearPSI, t.PressureGainPerLapPSI, cond)

	s.Set(setupfile.SectionTyres, "PRESSURE_LF", front)
	s.Set(setupfile.SectionTyres, "PRESSURE_RF", front)
	s.Set(setupfile.SectionTyres, "PRESSURE_LR", rear)
	s.Set(setupfile.SectionTyres, "PRESSURE_RR", rear)
}

func rampedColdPressure(hot, gainPerLap float64, cond model.Conditions) float64 {
	cold := hot - float64(laps)*gainPerLap

	switch {
	case cond.RoadC < 20:
		cold += (20 - cond.RoadC) * 0.075
	case cond.RoadC > 35:
		cold -= (cond.RoadC - 35) * 0.05
	}

	switch {
	case cond.AmbientC < 15:
		cold += (15 - cond.AmbientC) * 0.03
	case cond.AmbientC > 30:
		cold -= (cond.AmbientC - 30) * 0.02
	}

	return setupfile.Clamp(cold, 18, 35)
}

func cornerMass(car model.CarDescriptor) float64 {
	return car.MassKg() / 4
}

// wheelRate computes k_wheel = (2*pi*f)^2 * m_corner for one axle.
func wheelRate(freqHz, mCorner float64) float64 {
	omega := 2 * math.Pi * freqHz
	return omega * omega * mCorner
}

func buildSprings(s *setupfile.Setup, t category.Targets, car model.CarDescriptor) {
	mCorner := cornerMass(car)
	kFront := wheelRate(t.FrequencyFrontHz, mCorner)
	kRear := wheelRate(t.FrequencyRearHz, mCorner)

	s.Set(setupfile.SectionSuspension, "SPRING_RATE_LF", kFront)
	s.Set(setupfile.SectionSuspension, "SPRING_RATE_RF", kFront)
	s.Set(setupfile.SectionSuspension, "SPRING_RATE_LR", kRear)
	s.Set(setupfile.SectionSuspension, "SPRING_RATE_RR", kRear)
}

func buildDampers(s *setupfile.Setup, t category.Targets, car model.CarDescriptor) {
	mCorner := cornerMass(car)
	kFront := wheelRate(t.FrequencyFrontHz, mCorner)
	kRear := wheelRate(t.FrequencyRearHz, mCorner)

	setCornerDamper(s, "LF", kFront, mCorner, t)
	setCornerDamper(s, "RF", kFront, mCorner, t)
	setCornerDamper(s, "LR", kRear, mCorner, t)
	setCornerDamper(s, "RR", kRear, mCorner, t)
}

func setCornerDamper(s *setupfile.Setup, corner string, k, mCorner float64, t category.Targets) {
	cCrit := 2 * math.Sqrt(k*mCorner)
	slowTotal := 0.7 * cCrit
	slowBump := slowTotal / (1 + t.BumpReboundRatio)
	slowRebound := slowBump * t.BumpReboundRatio
	fastBump := slowBump * t.FastSlowRatio
	fastRebound := slowRebound * t.FastSlowRatio

	s.Set(setupfile.SectionSuspension, "DAMP_BUMP_"+corner, slowBump*damperUnitScale)
	s.Set(setupfile.SectionSuspension, "DAMP_REBOUND_"+corner, slowRebound*damperUnitScale)
	s.Set(setupfile.SectionSuspension, "DAMP_FAST_BUMP_"+corner, fastBump*damperUnitScale)
	s.Set(setupfile.SectionSuspension, "DAMP_FAST_REBOUND_"+corner, fastRebound*damperUnitScale)
}

func buildRideHeights(s *setupfile.Setup, t category.Targets, trackType model.TrackType) {
	front, rear := t.RideHeightFrontMM, t.RideHeightRearMM
	switch trackType {
	case model.TrackTypeTouge:
		front += 15
		rear += 15
	case model.TrackTypeStreet:
		front += 10
		rear += 10
	}

	s.Set(setupfile.SectionSuspension, "RIDE_HEIGHT_LF", front)
	s.Set(setupfile.SectionSuspension, "RIDE_HEIGHT_RF", front)
	s.Set(setupfile.SectionSuspension, "RIDE_HEIGHT_LR", rear)
	s.Set(setupfile.SectionSuspension, "RIDE_HEIGHT_RR", rear)
}

func aeroSpeedFactor(track model.TrackDescriptor, trackType model.TrackType) float64 {
	if trackType == model.TrackTypeTouge || trackType == model.TrackTypeStreet || trackType == model.TrackTypeDrift {
		return 1.3
	}
	if track.AvgSpeedKmh == nil {
		return 1.0
	}
	switch {
	case *track.AvgSpeedKmh > 180:
		return 0.7
	case *track.AvgSpeedKmh < 120:
		return 1.3
	default:
		return 1.0
	}
}

func buildAero(s *setupfile.Setup, t category.Targets, track model.TrackDescriptor, trackType model.TrackType) {
	total := 5.0 * aeroSpeedFactor(track, trackType)
	front := setupfile.Clamp(total*(1-t.AeroBalance), 0, 5)
	rear := setupfile.Clamp(total*t.AeroBalance, 0, 5)

	s.Set(setupfile.SectionAero, "WING_FRONT", front)
	s.Set(setupfile.SectionAero, "WING_REAR", rear)
}

func buildDifferential(s *setupfile.Setup, t category.Targets, car model.CarDescriptor) {
	power, coast, preload := t.DiffPowerPct, t.DiffCoastPct, t.DiffPreloadNm
	torque := car.TorqueNm()

	switch car.Drivetrain {
	case model.DrivetrainRWD:
		switch {
		case torque > 600:
			power += 10
			coast += 5
			preload += 5
		case torque > 400:
			power += 5
			coast += 3
		}
	case model.DrivetrainFWD:
		power -= 15
		coast -= 10
		preload -= 10
	case model.DrivetrainAWD:
		power += 5
		coast += 5
	}

	s.Set(setupfile.SectionDifferential, "POWER", setupfile.Clamp(power, 0, 100))
	s.Set(setupfile.SectionDifferential, "COAST", setupfile.Clamp(coast, 0, 100))
	s.Set(setupfile.SectionDifferential, "PRELOAD", setupfile.Clamp(preload, 0, 200))
}

func buildAlignment(s *setupfile.Setup, t category.Targets, car model.CarDescriptor) {
	s.Set(setupfile.SectionAlignment, "CAMBER_LF", t.CamberFrontDeg)
	s.Set(setupfile.SectionAlignment, "CAMBER_RF", t.CamberFrontDeg)
	s.Set(setupfile.SectionAlignment, "CAMBER_LR", t.CamberRearDeg)
	s.Set(setupfile.SectionAlignment, "CAMBER_RR", t.CamberRearDeg)

	wheelbaseRatio := model.ReferenceWheelbaseMM / car.WheelbaseOrReference()
	toeFront := setupfile.Clamp(t.ToeFrontDeg*wheelbaseRatio, -0.5, 0.5)
	toeRear := setupfile.Clamp(t.ToeRearDeg*wheelbaseRatio, -0.5, 0.5)

	s.Set(setupfile.SectionAlignment, "TOE_LF", toeFront)
	s.Set(setupfile.SectionAlignment, "TOE_RF", toeFront)
	s.Set(setupfile.SectionAlignment, "TOE_LR", toeRear)
	s.Set(setupfile.SectionAlignment, "TOE_RR", toeRear)

	s.Set(setupfile.SectionAlignment, "CASTER_LF", t.CasterDeg)
	s.Set(setupfile.SectionAlignment, "CASTER_RF", t.CasterDeg)
}

func buildARBAndBrakes(s *setupfile.Setup, t category.Targets) {
	s.Set(setupfile.SectionARB, "FRONT", t.ARBFront)
	s.Set(setupfile.SectionARB, "REAR", t.ARBRear)
	s.Set(setupfile.SectionBrakes, "FRONT_BIAS", t.BrakeBiasFrontPct)
	s.Set(setupfile.SectionBrakes, "BRAKE_POWER_MULT", 1.0)
}
