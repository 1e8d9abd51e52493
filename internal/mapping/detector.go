package mapping

import (
	"bufio"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// ValueKind is the value representation a car's parameter family uses.
type ValueKind string

const (
	ValueKindClicks   ValueKind = "clicks"
	ValueKindAbsolute ValueKind = "absolute"
)

// thresholds below which a raw integer value is assumed to be a slider
// click index rather than a physical quantity, per family (spec §4.6a).
var thresholds = map[string]float64{
	"spring": 1000,
	"damper": 100,
	"arb":    50,
	"wing":   50,
}

// alwaysAbsolute families never use clicks in practice, so detection
// short-circuits to ValueKindAbsolute without reading a value.
var alwaysAbsolute = []string{"ride_height", "pressure", "diff", "brake", "camber", "toe"}

// ValueTypeDetector infers, per car and per parameter family, whether
// that car's setup values are click indices or physical units (C7, spec
// §4.6a). Detector results are used purely as lookups by the smart
// converter; the detector itself never mutates a Setup.
type ValueTypeDetector struct {
	setupsRoot string

	mu    sync.RWMutex
	cache map[string]map[string]ValueKind
}

func NewValueTypeDetector(setupsRoot string) *ValueTypeDetector {
	return &ValueTypeDetector{
		setupsRoot: setupsRoot,
		cache:      make(map[string]map[string]ValueKind),
	}
}

// DetectValueTypes returns the per-family value-kind map for a car,
// reading one of its setup files on first call and caching after.
func (d *ValueTypeDetector) DetectValueTypes(carID string) map[string]ValueKind {
	d.mu.RLock()
	cached, ok := d.cache[carID]
	d.mu.RUnlock()
	if ok {
		return cached
	}

	values := d.readSetupValues(carID)
	kinds := make(map[string]ValueKind, len(thresholds)+len(alwaysAbsolute))

	if v, ok := firstPresent(values, "SPRING_RATE_LF", "SPRING_LF", "SPRING_0"); ok {
		kinds["spring"] = classify(v, thresholds["spring"])
	}
	if v, ok := firstPresent(values, "DAMP_BUMP_LF", "BUMP_LF", "DAMPER_BUMP_LF"); ok {
		kinds["damper"] = classify(v, thresholds["damper"])
	}
	if v, ok := firstPresent(values, "ARB_FRONT", "FRONT_ARB"); ok {
		kinds["arb"] = classify(v, thresholds["arb"])
	}
	if v, ok := firstPresent(values, "WING_0", "WING_1", "REAR_WING"); ok {
		kinds["wing"] = classify(v, thresholds["wing"])
	}
	for _, family := range alwaysAbsolute {
		kinds[family] = ValueKindAbsolute
	}

	d.mu.Lock()
	d.cache[carID] = kinds
	d.mu.Unlock()

	log.Debug().Str("car_id", carID).
		Str("spring", string(kinds["spring"])).
		Str("damper", string(kinds["damper"])).
		Str("wing", string(kinds["wing"])).
		Msg("value-type detector: classified car")
	return kinds
}

func classify(value, threshold float64) ValueKind {
	if value < threshold {
		return ValueKindClicks
	}
	return ValueKindAbsolute
}

func firstPresent(values map[string]float64, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := values[k]; ok {
			return v, true
		}
	}
	return 0, false
}

func (d *ValueTypeDetector) readSetupValues(carID string) map[string]float64 {
	values := make(map[string]float64)
	if d.setupsRoot == "" {
		return values
	}

	carDir := filepath.Join(d.setupsRoot, carID)
	files, err := discoverSetupFiles(carDir)
	if err != nil || len(files) == 0 {
		return values
	}

	text, ok := readSetupText(files[0])
	if !ok {
		return values
	}

	var currentSection string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			currentSection = line[1 : len(line)-1]
		case strings.HasPrefix(line, "VALUE=") && currentSection != "":
			if v, err := strconv.ParseFloat(strings.TrimPrefix(line, "VALUE="), 64); err == nil {
				values[currentSection] = v
			}
		}
	}
	return values
}

// IsClickBased reports whether carID's setup values for the given family
// ("spring", "damper", "arb", "wing", or any always-absolute family) are
// click indices rather than physical units. Unknown families default to
// absolute, matching the reference detector's fail-safe.
func (d *ValueTypeDetector) IsClickBased(carID, family string) bool {
	return d.DetectValueTypes(carID)[family] == ValueKindClicks
}

// ClearCache discards every cached per-car classification.
func (d *ValueTypeDetector) ClearCache() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cache = make(map[string]map[string]ValueKind)
}
