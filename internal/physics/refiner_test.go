package physics

import (
	"testing"

	"github.com/raceeng/setupgen/internal/category"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

func TestRefineAppliesMotionRatioCorrectionMatchingWorkedExample(t *testing.T) {
	weight := 1300.0
	car := model.CarDescriptor{WeightKg: &weight}
	targets := category.Lookup(model.CategoryGT)

	s := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	s = Refine(s, model.CategoryGT, targets.RakeDeg, model.TrackTypeCircuit, nil)

	k, _ := s.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")
	// GT front motion ratio is 0.9, so k_spring = k_wheel / 0.9^2.
	if !approxEqual(k, 124181, 500) {
		t.Errorf("expected front spring rate ~124,181 N/m after motion-ratio correction, got %v", k)
	}
}

func TestRefineMotionRatioOverrideWins(t *testing.T) {
	weight := 1300.0
	car := model.CarDescriptor{WeightKg: &weight}
	targets := category.Lookup(model.CategoryGT)

	s := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	withDefault := Refine(s, model.CategoryGT, targets.RakeDeg, model.TrackTypeCircuit, nil)
	kDefault, _ := withDefault.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")

	s2 := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	withOverride := Refine(s2, model.CategoryGT, targets.RakeDeg, model.TrackTypeCircuit, &MotionRatios{Front: 1.0, Rear: 1.0})
	kOverride, _ := withOverride.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")

	if kOverride >= kDefault {
		t.Errorf("expected a motion ratio of 1.0 to require less spring correction than the 0.9 default: override=%v default=%v", kOverride, kDefault)
	}
}

func TestRefineAntiBottomingOnlyAppliesToFormulaAndPrototypeAtHighRake(t *testing.T) {
	car := model.CarDescriptor{}
	targets := category.Lookup(model.CategoryFormula)

	base := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	baseSpring, _ := base.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")

	refined := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	refined = Refine(refined, model.CategoryFormula, 1.5, model.TrackTypeCircuit, &MotionRatios{Front: 1.0, Rear: 1.0})
	refinedSpring, _ := refined.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")

	if !approxEqual(refinedSpring, baseSpring*1.15, 1e-6) {
		t.Errorf("expected anti-bottoming to stiffen formula springs by 1.15x at rake>1.0: base=%v refined=%v", baseSpring, refinedSpring)
	}
}

func TestRefineAntiBottomingSkipsGTEvenAtHighRake(t *testing.T) {
	car := model.CarDescriptor{}
	targets := category.Lookup(model.CategoryGT)

	s := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	baseSpring, _ := s.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")

	s = Refine(s, model.CategoryGT, 2.0, model.TrackTypeCircuit, &MotionRatios{Front: 1.0, Rear: 1.0})
	refinedSpring, _ := s.Get(setupfile.SectionSuspension, "SPRING_RATE_LF")

	if !approxEqual(refinedSpring, baseSpring, 1e-6) {
		t.Errorf("expected GT (non formula/prototype) to skip anti-bottoming entirely: base=%v refined=%v", baseSpring, refinedSpring)
	}
}

func TestRefineFastDamperCapAppliesOnlyForTougeAndStreet(t *testing.T) {
	car := model.CarDescriptor{}
	targets := category.Lookup(model.CategoryStreetSport)

	circuit := Build(car, model.TrackDescriptor{TrackID: "monza"}, targets, model.Conditions{}, model.TrackTypeCircuit)
	circuit = Refine(circuit, model.CategoryStreetSport, targets.RakeDeg, model.TrackTypeCircuit, nil)
	circuitSlow, _ := circuit.Get(setupfile.SectionSuspension, "DAMP_BUMP_LF")
	circuitFast, _ := circuit.Get(setupfile.SectionSuspension, "DAMP_FAST_BUMP_LF")

	if circuitFast <= 0.5*circuitSlow {
		t.Fatalf("fixture assumption broken: fast damper already below cap before refine (fast=%v slow=%v)", circuitFast, circuitSlow)
	}

	touge := Build(car, model.TrackDescriptor{TrackID: "touge"}, targets, model.Conditions{}, model.TrackTypeTouge)
	touge = Refine(touge, model.CategoryStreetSport, targets.RakeDeg, model.TrackTypeTouge, nil)
	tougeSlow, _ := touge.Get(setupfile.SectionSuspension, "DAMP_BUMP_LF")
	tougeFast, _ := touge.Get(setupfile.SectionSuspension, "DAMP_FAST_BUMP_LF")

	if tougeFast > 0.5*tougeSlow+1e-6 {
		t.Errorf("expected touge fast damper capped at 0.5x slow damper: fast=%v slow=%v", tougeFast, tougeSlow)
	}
}
