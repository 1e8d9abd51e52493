package pipeline

import (
	"testing"

	"github.com/raceeng/setupgen/internal/model"
)

func gtCar() model.CarDescriptor {
	weight := 1300.0
	power := 550.0
	return model.CarDescriptor{
		CarID:       "ks_ferrari_488_gt3",
		DisplayName: "Ferrari 488 GT3",
		ClassHint:   "GT3",
		Drivetrain:  model.DrivetrainRWD,
		PowerHP:     &power,
		WeightKg:    &weight,
	}
}

func monza() model.TrackDescriptor {
	return model.TrackDescriptor{TrackID: "monza", DisplayName: "Monza"}
}

func TestGenerateClassifiesAndBuildsAPhysicallyPlausibleSetup(t *testing.T) {
	p := New("")
	cond := model.Conditions{AmbientC: 22, RoadC: 28, Weather: model.WeatherDry}

	result, err := p.Generate(gtCar(), monza(), cond, model.NeutralProfile(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Category != model.CategoryGT {
		t.Errorf("expected gt category, got %v", result.Category)
	}
	if result.TrackType != model.TrackTypeCircuit {
		t.Errorf("expected circuit track type, got %v", result.TrackType)
	}

	pressure, ok := result.Setup.Get("TYRES", "PRESSURE_LF")
	if !ok {
		t.Fatal("expected PRESSURE_LF to be set")
	}
	if pressure < 20 || pressure > 35 {
		t.Errorf("expected pressure within the hard envelope, got %v", pressure)
	}

	spring, ok := result.Setup.Get("SUSPENSION", "SPRING_RATE_LF")
	if !ok {
		t.Fatal("expected SPRING_RATE_LF to be set")
	}
	if spring < 35000 || spring > 150000 {
		t.Errorf("expected spring rate within the hard envelope, got %v", spring)
	}
}

func TestGenerateRejectsMissingCarID(t *testing.T) {
	p := New("")
	_, err := p.Generate(model.CarDescriptor{}, monza(), model.Conditions{}, model.NeutralProfile(), Options{})
	if err == nil {
		t.Fatal("expected an error for a missing car_id")
	}
}

func TestGenerateRejectsMissingTrackID(t *testing.T) {
	p := New("")
	_, err := p.Generate(gtCar(), model.TrackDescriptor{}, model.Conditions{}, model.NeutralProfile(), Options{})
	if err == nil {
		t.Fatal("expected an error for a missing track_id")
	}
}

func TestGenerateIsIdempotentForIdenticalInputs(t *testing.T) {
	p := New("")
	cond := model.Conditions{AmbientC: 22, RoadC: 28, Weather: model.WeatherDry}

	first, err := p.Generate(gtCar(), monza(), cond, model.NeutralProfile(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Generate(gtCar(), monza(), cond, model.NeutralProfile(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !first.Setup.Equal(second.Setup) {
		t.Error("expected two Generate calls with identical inputs to produce identical setups")
	}
}

func TestGenerateAggressionSliderStiffensSpringsRelativeToNeutral(t *testing.T) {
	p := New("")
	cond := model.Conditions{AmbientC: 22, RoadC: 28, Weather: model.WeatherDry}

	neutral, err := p.Generate(gtCar(), monza(), cond, model.NeutralProfile(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	aggressive := model.NeutralProfile()
	aggressive.Aggression = 1.0
	withAggression, err := p.Generate(gtCar(), monza(), cond, aggressive, Options{})
	if err != nil {
		t.Fatal(err)
	}

	base, _ := neutral.Setup.Get("SUSPENSION", "SPRING_RATE_LF")
	stiffened, _ := withAggression.Setup.Get("SUSPENSION", "SPRING_RATE_LF")
	if stiffened <= base {
		t.Errorf("expected aggression=1.0 to stiffen front springs: base=%v stiffened=%v", base, stiffened)
	}
}
