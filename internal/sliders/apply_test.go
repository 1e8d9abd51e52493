package sliders

import (
	"testing"

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

func TestApplyAllNeutralProfileIsNoOp(t *testing.T) {
	s := setupfile.New()
	s.Set(setupfile.SectionAero, "WING_REAR", 3.0)
	before := s.Clone()

	s, log := ApplyAll(s, model.NeutralProfile(), false)

	if !s.Equal(before) {
		t.Error("expected neutral profile to leave the setup unchanged")
	}
	if len(log) != 0 {
		t.Errorf("expected no change-log lines for a neutral profile, got %d", len(log))
	}
}

func TestApplyAllAeroSliderMovesWings(t *testing.T) {
	s := setupfile.New()
	s.Set(setupfile.SectionAero, "WING_REAR", 3.0)
	s.Set(setupfile.SectionAero, "WING_FRONT", 2.0)

	s, log := ApplyAll(s, model.Profile{Rotation: 0.5, Slide: 0.5, Aero: 1.0}, false)

	rear, _ := s.Get(setupfile.SectionAero, "WING_REAR")
	front, _ := s.Get(setupfile.SectionAero, "WING_FRONT")
	if !approxEqual(rear, 11.0, 1e-9) {
		t.Errorf("expected rear wing 3+8=11, got %v", rear)
	}
	if !approxEqual(front, 6.0, 1e-9) {
		t.Errorf("expected front wing 2+4=6, got %v", front)
	}
	if len(log) == 0 {
		t.Error("expected change-log entries for a non-neutral slider")
	}
}

func TestApplyAllRotationIsCenteredAroundHalf(t *testing.T) {
	s := setupfile.New()
	s.Set(setupfile.SectionAlignment, "TOE_LR", 0.0)
	s.Set(setupfile.SectionAlignment, "TOE_RR", 0.0)

	// rotation=0.75 normalizes to (0.75-0.5)*2 = 0.5, half of full deflection
	s, _ = ApplyAll(s, model.Profile{Rotation: 0.75, Slide: 0.5}, false)

	toeLR, _ := s.Get(setupfile.SectionAlignment, "TOE_LR")
	if !approxEqual(toeLR, 0.2, 1e-9) {
		t.Errorf("expected TOE_LR 0 + 0.4*0.5 = 0.2, got %v", toeLR)
	}
}

func TestApplyAllRotationBelowNeutralReversesSign(t *testing.T) {
	s := setupfile.New()
	s.Set(setupfile.SectionARB, "REAR", 5.0)

	// rotation=0.0 normalizes to -1.0: full-deflection opposite of rotation=1.0
	s, _ = ApplyAll(s, model.Profile{Rotation: 0.0, Slide: 0.5}, false)

	rear, _ := s.Get(setupfile.SectionARB, "REAR")
	want := 5.0 * (1 + 0.30*-1.0)
	if !approxEqual(rear, want, 1e-9) {
		t.Errorf("expected ARB REAR %v, got %v", want, rear)
	}
}

func TestApplyAllClickBasedAttenuatesSuspensionSprings(t *testing.T) {
	sUnattenuated := setupfile.New()
	sUnattenuated.Set(setupfile.SectionSuspension, "SPRING_RATE_LR", 100000)
	sUnattenuated, _ = ApplyAll(sUnattenuated, model.Profile{Rotation: 0.5, Slide: 0.5, Aero: 1.0}, false)
	unattenuated, _ := sUnattenuated.Get(setupfile.SectionSuspension, "SPRING_RATE_LR")

	sAttenuated := setupfile.New()
	sAttenuated.Set(setupfile.SectionSuspension, "SPRING_RATE_LR", 100000)
	sAttenuated, _ = ApplyAll(sAttenuated, model.Profile{Rotation: 0.5, Slide: 0.5, Aero: 1.0}, true)
	attenuated, _ := sAttenuated.Get(setupfile.SectionSuspension, "SPRING_RATE_LR")

	wantUnattenuated := 100000 * (1 + 0.15)
	wantAttenuated := 100000 * (1 + 0.15*0.5)
	if !approxEqual(unattenuated, wantUnattenuated, 1e-6) {
		t.Errorf("unattenuated spring rate = %v, want %v", unattenuated, wantUnattenuated)
	}
	if !approxEqual(attenuated, wantAttenuated, 1e-6) {
		t.Errorf("click-based attenuated spring rate = %v, want %v", attenuated, wantAttenuated)
	}
}

func TestApplyAllSkipsEffectsWhoseKeyIsAbsentAndUnaliased(t *testing.T) {
	s := setupfile.New()
	// No WING_REAR and no alias present: effect is skipped with a [SKIP] change-log line.
	s, log := ApplyAll(s, model.Profile{Rotation: 0.5, Slide: 0.5, Aero: 1.0}, false)

	if _, ok := s.Get(setupfile.SectionAero, "WING_REAR"); ok {
		t.Error("expected WING_REAR to remain absent when neither it nor an alias was present")
	}
	for _, line := range log {
		if line == "" {
			t.Error("unexpected empty change-log line")
		}
	}
}

func TestApplyAllResolvesAlias(t *testing.T) {
	s := setupfile.New()
	s.Set(setupfile.SectionAero, "REAR_WING", 2.0)

	s, _ = ApplyAll(s, model.Profile{Rotation: 0.5, Slide: 0.5, Aero: 1.0}, false)

	v, ok := s.Get(setupfile.SectionAero, "REAR_WING")
	if !ok {
		t.Fatal("expected REAR_WING to still be present")
	}
	if !approxEqual(v, 10.0, 1e-9) {
		t.Errorf("expected aliased REAR_WING 2+8=10, got %v", v)
	}
	if _, ok := s.Get(setupfile.SectionAero, "WING_REAR"); ok {
		t.Error("canonical WING_REAR should not have been created alongside the alias")
	}
}
