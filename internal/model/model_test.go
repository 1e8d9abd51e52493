package model

import "testing"

func TestMassKgFallsBackWhenUnset(t *testing.T) {
	car := CarDescriptor{}
	if got := car.MassKg(); got != 1200.0 {
		t.Errorf("expected default mass 1200, got %v", got)
	}
}

func TestMassKgUsesWeightWhenSet(t *testing.T) {
	w := 1350.0
	car := CarDescriptor{WeightKg: &w}
	if got := car.MassKg(); got != 1350.0 {
		t.Errorf("expected 1350, got %v", got)
	}
}

func TestTorqueNmEstimatesFromPower(t *testing.T) {
	hp := 500.0
	car := CarDescriptor{PowerHP: &hp}
	want := 500.0 * 1.36
	if got := car.TorqueNm(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTorqueNmFallsBackWhenUnset(t *testing.T) {
	car := CarDescriptor{}
	if got := car.TorqueNm(); got != 400.0 {
		t.Errorf("expected default torque 400, got %v", got)
	}
}

func TestWheelbaseOrReferenceFallsBackToDefault(t *testing.T) {
	car := CarDescriptor{}
	if got := car.WheelbaseOrReference(); got != ReferenceWheelbaseMM {
		t.Errorf("expected reference wheelbase, got %v", got)
	}
}

func TestTrackDescriptorFullID(t *testing.T) {
	tr := TrackDescriptor{TrackID: "monza"}
	if got := tr.FullID(); got != "monza" {
		t.Errorf("expected bare track id, got %q", got)
	}
	tr.Config = "gp"
	if got := tr.FullID(); got != "monza/gp" {
		t.Errorf("expected track id with config, got %q", got)
	}
}

func TestNeutralProfileMatchesDocumentedDefaults(t *testing.T) {
	p := NeutralProfile()
	if p.Rotation != 0.5 || p.Slide != 0.5 {
		t.Errorf("expected centered sliders to default to 0.5, got rotation=%v slide=%v", p.Rotation, p.Slide)
	}
	if p.Aggression != 0 || p.Drift != 0 || p.Performance != 0 || p.Aero != 0 {
		t.Error("expected zero-based sliders to default to 0.0")
	}
}

func TestDetectTrackTypePriorityOrder(t *testing.T) {
	cases := []struct {
		name string
		tr   TrackDescriptor
		want TrackType
	}{
		{"drift wins over touge substring", TrackDescriptor{TrackID: "touge_drift_arena"}, TrackTypeDrift},
		{"touge substring", TrackDescriptor{TrackID: "irohazaka_touge"}, TrackTypeTouge},
		{"street substring", TrackDescriptor{TrackID: "tokyo_street_circuit"}, TrackTypeStreet},
		{"circuit fallback", TrackDescriptor{TrackID: "monza"}, TrackTypeCircuit},
	}
	for _, c := range cases {
		if got := DetectTrackType(c.tr); got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}
