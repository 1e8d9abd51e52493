package convert

import (
	"fmt"
	"math"

	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

// Converter turns a physical value into an AC-style integer using linear
// click interpolation: click = round((value-min)/step), step = (max-min)/max_clicks.
type Converter struct {
	carRanges map[string]map[string]Range
}

func NewConverter() *Converter {
	return &Converter{carRanges: make(map[string]map[string]Range)}
}

// SetCarRanges registers a per-car override table that takes priority
// over the category defaults.
func (c *Converter) SetCarRanges(carID string, ranges map[string]Range) {
	c.carRanges[carID] = ranges
}

// Ranges returns the range table in effect for a car: its own override if
// set, otherwise the category default, falling back to street if the
// category itself is unrecognized.
func (c *Converter) Ranges(carID string, category model.CategoryTag) map[string]Range {
	if carID != "" {
		if ranges, ok := c.carRanges[carID]; ok {
			return ranges
		}
	}
	if ranges, ok := DefaultRanges[category]; ok {
		return ranges
	}
	return DefaultRanges[model.CategoryStreet]
}

// ToClicks converts value to an AC integer for paramType, returning
// whether the result is click-quantized and a human-readable trace line.
func (c *Converter) ToClicks(value float64, paramType string, category model.CategoryTag, carID string) (int, bool, string) {
	ranges := c.Ranges(carID, category)

	r, ok := ranges[paramType]
	if !ok {
		return int(math.Round(value)), false, "no range defined, using raw value"
	}

	if r.MaxClicks == 0 {
		clamped := setupfile.Clamp(value, r.Min, r.Max)
		return int(math.Round(clamped)), false,
			fmt.Sprintf("absolute value, clamped to [%.0f, %.0f]", r.Min, r.Max)
	}

	step := (r.Max - r.Min) / float64(r.MaxClicks)
	if step <= 0 {
		return 0, true, "invalid step size"
	}

	click := (value - r.Min) / step
	click = setupfile.Clamp(click, 0, float64(r.MaxClicks))
	clickInt := int(math.Round(click))
	actual := r.Min + float64(clickInt)*step

	info := fmt.Sprintf("interpolated: %.0f %s -> click %d (actual: %.0f %s, range: %.0f-%.0f, step: %.0f)",
		value, r.Unit, clickInt, actual, r.Unit, r.Min, r.Max, step)
	return clickInt, true, info
}

func (c *Converter) ConvertSpring(valueNPerM float64, position string, category model.CategoryTag, carID string) (int, bool, string) {
	return c.ToClicks(valueNPerM, "spring_"+position, category, carID)
}

func (c *Converter) ConvertDamper(valueNsPerM float64, damperType string, category model.CategoryTag, carID string) (int, bool, string) {
	return c.ToClicks(valueNsPerM, "damper_"+damperType, category, carID)
}

func (c *Converter) ConvertARB(value float64, category model.CategoryTag, carID string) (int, bool, string) {
	return c.ToClicks(value, "arb", category, carID)
}

func (c *Converter) ConvertWing(value float64, category model.CategoryTag, carID string) (int, bool, string) {
	return c.ToClicks(value, "wing", category, carID)
}

// ConvertCamber converts degrees to AC format (degrees x 10).
func ConvertCamber(degrees float64) int {
	return int(math.Round(degrees * 10))
}

// ConvertToe converts degrees to AC format at the given scale (10 or 100,
// depending on what the car's existing value implies).
func ConvertToe(degrees float64, scale int) int {
	return int(math.Round(degrees * float64(scale)))
}

func ConvertPressure(psi float64) int {
	return int(math.Round(psi))
}

func ConvertDiff(percentage float64) int {
	return int(math.Round(percentage))
}

func ConvertBrakeBias(percentage float64) int {
	return int(math.Round(percentage))
}
