package style

import (
	"testing"
)

func smoothCruiseSample() Sample {
	return Sample{SpeedKmh: 150, Throttle: 0.6, Brake: 0.0, Steering: 0.05, GLat: 0.1, GLon: 0.0}
}

func TestAnalyzeReturnsUnknownBeforeMinimumSamples(t *testing.T) {
	a := NewAnalyzer(500)
	for i := 0; i < 10; i++ {
		a.AddSample(smoothCruiseSample())
	}
	m := a.Analyze()
	if m.DetectedStyle != StyleUnknown {
		t.Errorf("expected unknown style before the minimum sample count, got %v", m.DetectedStyle)
	}
}

func TestAnalyzeDetectsSmoothStyle(t *testing.T) {
	a := NewAnalyzer(500)
	for i := 0; i < 200; i++ {
		a.AddSample(smoothCruiseSample())
	}
	m := a.Analyze()
	if m.DetectedStyle != StyleSmooth {
		t.Errorf("expected smooth style for constant low-aggression inputs, got %v (aggression=%v smoothness=%v)",
			m.DetectedStyle, m.AggressionScore, m.SmoothnessScore)
	}
}

func TestAnalyzeGivesHardJerkyInputsHighAggressionScore(t *testing.T) {
	a := NewAnalyzer(500)
	toggle := 0.0
	for i := 0; i < 200; i++ {
		toggle = 1 - toggle
		a.AddSample(Sample{SpeedKmh: 180, Throttle: toggle, Brake: toggle, Steering: toggle, GLat: 1.4, GLon: 1.2})
	}
	m := a.Analyze()
	if m.AggressionScore <= 0.5 {
		t.Errorf("expected a high aggression score for hard, jerky inputs, got %v", m.AggressionScore)
	}
}

func TestAnalyzeDetectsDriftStyle(t *testing.T) {
	a := NewAnalyzer(500)
	steer := 0.5
	for i := 0; i < 200; i++ {
		steer = -steer
		gLat := 0.5
		if steer > 0 {
			gLat = -0.5
		}
		a.AddSample(Sample{SpeedKmh: 80, Throttle: 0.8, Brake: 0, Steering: steer, GLat: gLat, GLon: 0.2})
	}
	m := a.Analyze()
	if m.DriftScore <= 0.3 {
		t.Errorf("expected a meaningfully high drift score for sustained counter-steer and slide, got %v", m.DriftScore)
	}
}

func TestToProfileBiasMapsDriftStyleOntoSliderAxes(t *testing.T) {
	m := Metrics{DetectedStyle: StyleDrift, DriftScore: 0.8}
	p := ToProfileBias(m)
	if p.Drift <= 0 {
		t.Errorf("expected a drift-biased profile to raise the Drift axis, got %v", p.Drift)
	}
	if p.Slide <= 0.5 {
		t.Errorf("expected a drift-biased profile to push Slide past its 0.5 neutral, got %v", p.Slide)
	}
}

func TestToProfileBiasBalancedIsNeutral(t *testing.T) {
	p := ToProfileBias(Metrics{DetectedStyle: StyleBalanced})
	if p.Rotation != 0.5 || p.Slide != 0.5 || p.Aggression != 0 {
		t.Error("expected a balanced style to leave the profile at its neutral defaults")
	}
}
