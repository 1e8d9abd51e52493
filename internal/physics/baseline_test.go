package physics

import (
	"testing"

	"github.com/raceeng/setupgen/internal/category"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestBuildColdPressureMatchesWorkedExample(t *testing.T) {
	weight := 1300.0
	car := model.CarDescriptor{WeightKg: &weight}
	targets := category.Lookup(model.CategoryGT)
	cond := model.Conditions{AmbientC: 22, RoadC: 28, Weather: model.WeatherDry}

	s := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, cond, model.TrackTypeCircuit)

	front, _ := s.Get(setupfile.SectionTyres, "PRESSURE_LF")
	rear, _ := s.Get(setupfile.SectionTyres, "PRESSURE_LR")
	if !approxEqual(front, 25.1, 0.2) {
		t.Errorf("expected front cold pressure ~25.1 PSI, got %v", front)
	}
	if !approxEqual(rear, 24.6, 0.2) {
		t.Errorf("expected rear cold pressure ~24.6 PSI, got %v", rear)
	}
}

func TestBuildSpringRateMatchesWorkedExample(t *testing.T) {
	weight := 1300.0
	car := model.CarDescriptor{WeightKg: &weight}
	targets := category.Lookup(model.CategoryGT)

	s := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)

	k, _ := s.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")
	if !approxEqual(k, 100587, 500) {
		t.Errorf("expected front wheel rate ~100,587 N/m, got %v", k)
	}
}

func TestBuildRideHeightBumpsForTougeAndStreet(t *testing.T) {
	targets := category.Lookup(model.CategoryStreetSport)
	car := model.CarDescriptor{}

	circuit := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	touge := Build(car, model.TrackDescriptor{TrackID: "touge"}, targets, model.Conditions{}, model.TrackTypeTouge)

	circuitHeight, _ := circuit.Get(setupfile.SectionSuspension, "RIDE_HEIGHT_LF")
	tougeHeight, _ := touge.Get(setupfile.SectionSuspension, "RIDE_HEIGHT_LF")
	if tougeHeight != circuitHeight+15 {
		t.Errorf("expected touge ride height +15mm over circuit: circuit=%v touge=%v", circuitHeight, tougeHeight)
	}
}

func TestBuildDifferentialAdjustsForDrivetrain(t *testing.T) {
	targets := category.Lookup(model.CategoryGT)
	torque := 620.0 / 1.36 // PowerHP such that TorqueNm() > 600
	rwd := model.CarDescriptor{Drivetrain: model.DrivetrainRWD, PowerHP: &torque}
	fwd := model.CarDescriptor{Drivetrain: model.DrivetrainFWD, PowerHP: &torque}

	sRWD := Build(rwd, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	sFWD := Build(fwd, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)

	powerRWD, _ := sRWD.Get(setupfile.SectionDifferential, "POWER")
	powerFWD, _ := sFWD.Get(setupfile.SectionDifferential, "POWER")
	if powerRWD <= powerFWD {
		t.Errorf("expected high-torque RWD diff power to exceed FWD: rwd=%v fwd=%v", powerRWD, powerFWD)
	}
}

func TestBuildToeCorrectionIsNoOpAtReferenceWheelbase(t *testing.T) {
	targets := category.Lookup(model.CategoryGT)
	wb := model.ReferenceWheelbaseMM
	car := model.CarDescriptor{WheelbaseMM: &wb}

	s := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	toe, _ := s.Get(setupfile.SectionAlignment, "TOE_LF")
	if !approxEqual(toe, targets.ToeFrontDeg, 1e-9) {
		t.Errorf("expected unscaled toe at reference wheelbase, got %v want %v", toe, targets.ToeFrontDeg)
	}
}
