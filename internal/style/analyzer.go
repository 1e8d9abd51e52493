// Package style classifies a sliding window of telemetry samples into a
// driving-style tag plus a metric vector, adapted from the original
// implementation's DrivingAnalyzer. It is an external collaborator: the
// setup-synthesis pipeline never calls it directly. A caller runs it
// against a telemetry stream and passes the resulting model.Profile bias
// into pipeline.Generate.
package style

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/raceeng/setupgen/internal/model"
)

// Style is the detected driving-style tag.
type Style string

const (
	StyleUnknown    Style = "unknown"
	StyleSmooth     Style = "smooth"
	StyleBalanced   Style = "balanced"
	StyleAggressive Style = "aggressive"
	StyleDrift      Style = "drift"
)

const (
	slideGThreshold       = 0.3
	counterSteerThreshold = 0.15
	fullThrottleThreshold = 0.95
	minSamplesToAnalyze   = 50
)

// Sample is a single telemetry reading fed into the analyzer.
type Sample struct {
	SpeedKmh float64
	Throttle float64 // 0-1
	Brake    float64 // 0-1
	Steering float64 // -1 to 1
	GLat     float64
	GLon     float64
}

// Metrics is the full descriptive vector produced by Analyze.
type Metrics struct {
	AvgThrottle        float64
	FullThrottlePct    float64
	ThrottleSmoothness float64 // 0 = jerky, 1 = smooth

	AvgBrakePressure float64
	BrakeSmoothness  float64
	TrailBrakingScore float64

	SteeringSmoothness float64
	CounterSteerCount  int

	AvgLateralG      float64
	MaxLateralG      float64
	LateralGStdDev   float64
	AvgLongitudinalG float64

	SlideTimePct   float64
	AvgSlideAngle  float64
	DriftScore     float64

	AggressionScore float64
	SmoothnessScore float64

	DetectedStyle Style
	Confidence    float64
}

// Analyzer holds a bounded sliding window of samples and the running
// counters that only make sense across the whole window (counter-steers,
// slide samples), mirroring the original's deque(maxlen=WINDOW_SIZE).
type Analyzer struct {
	mu         sync.Mutex
	windowSize int
	samples    []Sample

	prevSteering float64

	counterSteers int
	slideSamples  int
}

// NewAnalyzer builds an Analyzer with the given window size (the original
// used 500 samples at ~50Hz, roughly 10 seconds).
func NewAnalyzer(windowSize int) *Analyzer {
	if windowSize <= 0 {
		windowSize = 500
	}
	return &Analyzer{windowSize: windowSize}
}

// AddSample appends one telemetry reading, sliding the window and
// updating the counter-steer/slide counters in the same pass the original
// does it in (before the periodic _analyze call).
func (a *Analyzer) AddSample(s Sample) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delta := s.Steering - a.prevSteering
	if abs(delta) > counterSteerThreshold {
		if (delta > 0 && s.GLat < -0.2) || (delta < 0 && s.GLat > 0.2) {
			a.counterSteers++
		}
	}
	if abs(s.GLat) > slideGThreshold && s.SpeedKmh > 30 {
		a.slideSamples++
	}
	a.prevSteering = s.Steering

	a.samples = append(a.samples, s)
	if len(a.samples) > a.windowSize {
		a.samples = a.samples[len(a.samples)-a.windowSize:]
	}
}

// Analyze computes the full metric vector and style classification over
// the current window. It returns the zero Metrics with StyleUnknown when
// fewer than minSamplesToAnalyze samples have been collected.
func (a *Analyzer) Analyze() Metrics {
	a.mu.Lock()
	samples := append([]Sample(nil), a.samples...)
	counterSteers := a.counterSteers
	slideSamples := a.slideSamples
	a.mu.Unlock()

	n := len(samples)
	if n < minSamplesToAnalyze {
		return Metrics{DetectedStyle: StyleUnknown}
	}

	throttles := column(samples, func(s Sample) float64 { return s.Throttle })
	brakes := column(samples, func(s Sample) float64 { return s.Brake })
	steerings := column(samples, func(s Sample) float64 { return s.Steering })
	latGs := column(samples, func(s Sample) float64 { return abs(s.GLat) })
	lonGs := column(samples, func(s Sample) float64 { return abs(s.GLon) })

	m := Metrics{}
	m.AvgThrottle = stat.Mean(throttles, nil)
	m.FullThrottlePct = fractionAbove(throttles, fullThrottleThreshold)
	m.ThrottleSmoothness = smoothnessFromDiffs(throttles, 10)

	m.AvgBrakePressure = stat.Mean(brakes, nil)
	m.BrakeSmoothness = smoothnessFromDiffs(brakes, 10)

	trailSamples := 0
	for _, s := range samples {
		if s.Brake > 0.1 && abs(s.Steering) > 0.2 {
			trailSamples++
		}
	}
	m.TrailBrakingScore = float64(trailSamples) / float64(n)

	m.SteeringSmoothness = smoothnessFromDiffs(steerings, 5)
	m.CounterSteerCount = counterSteers

	m.AvgLateralG = stat.Mean(latGs, nil)
	m.MaxLateralG = maxOf(latGs)
	m.LateralGStdDev = stat.StdDev(latGs, nil)
	m.AvgLongitudinalG = stat.Mean(lonGs, nil)

	m.SlideTimePct = float64(slideSamples) / float64(n)
	m.AvgSlideAngle = averageSlideAngle(samples)

	driftFactors := []float64{
		m.SlideTimePct * 2,
		minOf(float64(counterSteers)/20, 1.0),
		minOf(m.AvgSlideAngle/15, 1.0),
	}
	m.DriftScore = stat.Mean(driftFactors, nil)

	m.AggressionScore = stat.Mean([]float64{
		m.FullThrottlePct,
		m.AvgBrakePressure * 2,
		minOf(m.MaxLateralG/1.5, 1.0),
		1 - m.ThrottleSmoothness,
		1 - m.BrakeSmoothness,
	}, nil)

	m.SmoothnessScore = stat.Mean([]float64{
		m.ThrottleSmoothness,
		m.BrakeSmoothness,
		m.SteeringSmoothness,
		m.TrailBrakingScore,
	}, nil)

	m.DetectedStyle, m.Confidence = classify(m.DriftScore, m.AggressionScore, m.SmoothnessScore)
	return m
}

func classify(drift, aggression, smoothness float64) (Style, float64) {
	switch {
	case drift > 0.4:
		return StyleDrift, minOf(drift*1.5, 1.0)
	case aggression > 0.6 && smoothness < 0.5:
		return StyleAggressive, aggression
	case smoothness > 0.6 && aggression < 0.4:
		return StyleSmooth, smoothness
	default:
		confidence := minOf((0.5+abs(0.5-aggression)+abs(0.5-smoothness))/2, 1.0)
		return StyleBalanced, confidence
	}
}

// ToProfileBias maps a classified style onto a model.Profile, for a
// caller to hand to pipeline.Generate as the slider preference set.
// Smooth/aggressive/drift styles each nudge a different subset of axes;
// balanced returns the neutral profile unchanged.
func ToProfileBias(m Metrics) model.Profile {
	p := model.NeutralProfile()
	switch m.DetectedStyle {
	case StyleAggressive:
		p.Aggression = minOf(m.AggressionScore, 1.0)
		p.Performance = 0.3
	case StyleSmooth:
		p.Aggression = 0
		p.Performance = -0.2
	case StyleDrift:
		p.Drift = minOf(m.DriftScore, 1.0)
		p.Slide = 0.5 + 0.3*minOf(m.DriftScore, 1.0)
	}
	return p
}

func column(samples []Sample, f func(Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = f(s)
	}
	return out
}

func smoothnessFromDiffs(values []float64, scale float64) float64 {
	if len(values) < 2 {
		return 0
	}
	diffs := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs = append(diffs, abs(values[i]-values[i-1]))
	}
	avgChange := stat.Mean(diffs, nil)
	return maxOf([]float64{0, 1 - avgChange*scale})
}

func fractionAbove(values []float64, threshold float64) float64 {
	count := 0
	for _, v := range values {
		if v > threshold {
			count++
		}
	}
	return float64(count) / float64(len(values))
}

func averageSlideAngle(samples []Sample) float64 {
	var angles []float64
	for _, s := range samples {
		if s.SpeedKmh <= 20 {
			continue
		}
		expectedG := abs(s.Steering) * (s.SpeedKmh / 100) * 0.5
		if abs(s.GLat) > expectedG+0.2 {
			angles = append(angles, (abs(s.GLat)-expectedG)*10)
		}
	}
	if len(angles) == 0 {
		return 0
	}
	return stat.Mean(angles, nil)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minOf(values ...float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
