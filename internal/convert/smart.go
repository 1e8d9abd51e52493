package convert

import (
	"fmt"
	"math"
	"strings"

	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/setupfile"
)

// paramType classifies an AC parameter name into the family the smart
// converter dispatches on, matching the reference classifier's priority
// order (most specific damper variants checked before the generic ones).
func paramType(paramName string) (string, bool) {
	up := strings.ToUpper(paramName)

	switch {
	case strings.Contains(up, "PRESSURE"):
		return "pressure", true
	case strings.Contains(up, "CAMBER"):
		return "camber", true
	case strings.Contains(up, "TOE"):
		return "toe", true
	case strings.Contains(up, "SPRING") || strings.Contains(up, "ROD_LENGTH"):
		return "spring", true
	case strings.Contains(up, "FAST_BUMP"):
		return "damper_fast_bump", true
	case strings.Contains(up, "FAST_REBOUND"):
		return "damper_fast_rebound", true
	case strings.Contains(up, "BUMP"):
		return "damper_bump", true
	case strings.Contains(up, "REBOUND"):
		return "damper_rebound", true
	case strings.Contains(up, "ARB") || strings.Contains(up, "ANTIROLL") || strings.Contains(up, "SWAY"):
		return "arb", true
	case strings.Contains(up, "WING") || strings.Contains(up, "AERO") || strings.Contains(up, "SPLITTER") || strings.Contains(up, "SPOILER"):
		return "wing", true
	case strings.Contains(up, "HEIGHT") || strings.Contains(up, "PACKER"):
		return "ride_height", true
	case strings.Contains(up, "POWER") && !strings.Contains(up, "BRAKE"):
		return "diff", true
	case strings.Contains(up, "COAST") || strings.Contains(up, "PRELOAD"):
		return "diff", true
	case strings.Contains(up, "BIAS") || strings.Contains(up, "BALANCE"):
		return "brake_bias", true
	case strings.Contains(up, "BRAKE"):
		return "brake_bias", true
	default:
		return "", false
	}
}

func isFrontCorner(paramName string) bool {
	up := strings.ToUpper(paramName)
	return strings.Contains(up, "LF") || strings.Contains(up, "RF") || strings.Contains(up, "FL") || strings.Contains(up, "FR")
}

// SmartConverter combines parameter-family classification with
// click/absolute detection so every physical value C3-C5 produced ends up
// as the correct integer for the target car (spec §4.7).
type SmartConverter struct {
	clicks *Converter
}

func NewSmartConverter(clicks *Converter) *SmartConverter {
	return &SmartConverter{clicks: clicks}
}

// DetectAndConvert converts physicalValue for paramName into the integer
// the car's setup file should hold. existing, when non-nil, is the
// matching value already present in the car's baseline setup and is used
// to infer whether springs/dampers/arb/wing are click-quantized for this
// specific car.
func (sc *SmartConverter) DetectAndConvert(carID string, category model.CategoryTag, paramName string, physicalValue float64, existing *int) (int, string) {
	pt, ok := paramType(paramName)
	if !ok {
		return int(math.Round(physicalValue)), fmt.Sprintf("unknown parameter type, raw value: %.3f", physicalValue)
	}

	switch pt {
	case "pressure":
		v := ConvertPressure(setupfile.Clamp(physicalValue, setupfile.PressureMinPSI, setupfile.PressureMaxPSI))
		return v, fmt.Sprintf("pressure: %.1f PSI -> %d", physicalValue, v)
	case "diff":
		diffMax := setupfile.DiffPowerCoastMax
		if strings.Contains(strings.ToUpper(paramName), "PRELOAD") {
			diffMax = setupfile.DiffPreloadMax
		}
		v := ConvertDiff(setupfile.Clamp(physicalValue, setupfile.DiffPowerCoastMin, diffMax))
		return v, fmt.Sprintf("diff: %.1f%% -> %d", physicalValue, v)
	case "brake_bias":
		clamped := physicalValue
		if !strings.Contains(strings.ToUpper(paramName), "POWER") {
			clamped = setupfile.Clamp(physicalValue, setupfile.BrakeBiasMinPct, setupfile.BrakeBiasMaxPct)
		}
		v := ConvertBrakeBias(clamped)
		return v, fmt.Sprintf("brake bias: %.1f%% -> %d", physicalValue, v)
	case "camber":
		v := ConvertCamber(setupfile.Clamp(physicalValue, setupfile.CamberMinDeg, setupfile.CamberMaxDeg))
		return v, fmt.Sprintf("camber: %.2f deg x 10 -> %d", physicalValue, v)
	case "toe":
		scale := 10
		if existing != nil && absInt(*existing) > 50 {
			scale = 100
		}
		v := ConvertToe(setupfile.Clamp(physicalValue, -3, 3), scale)
		return v, fmt.Sprintf("toe: %.3f deg x %d -> %d", physicalValue, scale, v)
	case "ride_height":
		v := int(math.Round(physicalValue))
		return v, fmt.Sprintf("ride height: %.0f mm -> %d", physicalValue, v)
	case "spring":
		position := "rear"
		if isFrontCorner(paramName) {
			position = "front"
		}
		if existing != nil && *existing < 1000 {
			v, _, info := sc.clicks.ConvertSpring(physicalValue, position, category, carID)
			return v, info
		}
		v := int(math.Round(physicalValue))
		return v, fmt.Sprintf("spring (absolute): %.0f N/m -> %d", physicalValue, v)
	case "damper_bump", "damper_rebound", "damper_fast_bump", "damper_fast_rebound":
		damperType := strings.TrimPrefix(pt, "damper_")
		if existing != nil && *existing < 100 {
			v, _, info := sc.clicks.ConvertDamper(physicalValue, damperType, category, carID)
			return v, info
		}
		v := int(math.Round(physicalValue))
		return v, fmt.Sprintf("damper (absolute): %.0f N/m/s -> %d", physicalValue, v)
	case "arb":
		if existing != nil && *existing < 50 {
			v, _, info := sc.clicks.ConvertARB(physicalValue, category, carID)
			return v, info
		}
		v := int(math.Round(physicalValue))
		return v, fmt.Sprintf("arb (absolute): %.0f -> %d", physicalValue, v)
	case "wing":
		if existing != nil && *existing < 50 {
			v, _, info := sc.clicks.ConvertWing(physicalValue, category, carID)
			return v, info
		}
		v := int(math.Round(physicalValue))
		return v, fmt.Sprintf("wing (absolute): %.0f -> %d", physicalValue, v)
	default:
		v := int(math.Round(physicalValue))
		return v, fmt.Sprintf("default conversion: %.3f -> %d", physicalValue, v)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
