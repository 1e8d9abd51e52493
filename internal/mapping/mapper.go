package mapping

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Mapper discovers, per car, which AC parameter names back each internal
// parameter name by reading that car's own setup files. Results are
// cached per car_id; call Refresh to force re-detection (spec §4.6:
// single-writer/multi-reader, explicit invalidation only).
type Mapper struct {
	setupsRoot string

	mu    sync.RWMutex
	cache map[string]map[string]string
}

// NewMapper builds a Mapper rooted at a simulator's setups directory
// (e.g. "<Documents>/Assetto Corsa/setups").
func NewMapper(setupsRoot string) *Mapper {
	return &Mapper{
		setupsRoot: setupsRoot,
		cache:      make(map[string]map[string]string),
	}
}

// GetCarMapping returns the internal-name -> AC-name mapping for a car,
// using the cached result unless refresh is true.
func (m *Mapper) GetCarMapping(carID string, refresh bool) map[string]string {
	if !refresh {
		m.mu.RLock()
		cached, ok := m.cache[carID]
		m.mu.RUnlock()
		if ok {
			return cached
		}
	}

	available := m.detectAvailableParameters(carID)
	mapping := buildMapping(available)

	m.mu.Lock()
	m.cache[carID] = mapping
	m.mu.Unlock()

	log.Debug().Str("car_id", carID).Int("parameter_count", len(mapping)).Msg("dynamic mapper: detected parameters")
	return mapping
}

func (m *Mapper) detectAvailableParameters(carID string) map[string]bool {
	available := make(map[string]bool)
	if m.setupsRoot == "" {
		log.Warn().Msg("dynamic mapper: setups root not configured")
		return available
	}

	carDir := filepath.Join(m.setupsRoot, carID)
	files, err := discoverSetupFiles(carDir)
	if err != nil {
		log.Warn().Err(err).Str("car_id", carID).Msg("dynamic mapper: failed to scan setup folder")
		return available
	}

	for _, f := range files {
		for _, param := range parseSetupFile(f) {
			available[param] = true
		}
	}
	return available
}

// ACParamName returns the AC parameter name backing internalName for
// carID, or "" if no alias was found in that car's setup files.
func (m *Mapper) ACParamName(carID, internalName string) string {
	return m.GetCarMapping(carID, false)[internalName]
}

// IsParameterAvailable reports whether carID has a known alias for
// internalName.
func (m *Mapper) IsParameterAvailable(carID, internalName string) bool {
	return m.ACParamName(carID, internalName) != ""
}

// ClearCache discards every cached per-car mapping.
func (m *Mapper) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string]map[string]string)
}
