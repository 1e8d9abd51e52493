// Package writer implements the setup writer (C9, spec §4.8/§6): merging
// synthesized values into a car's existing baseline integers, converting
// each through the dynamic mapper and smart converter, and committing the
// result to both the car's generic folder and its track-specific folder.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/raceeng/setupgen/internal/convert"
	"github.com/raceeng/setupgen/internal/mapping"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/raceerrors"
	"github.com/raceeng/setupgen/internal/setupfile"
)

// Result reports where a setup was written and the conversion trace.
type Result struct {
	GenericPath string
	TrackPath   string
	ChangeLog   []string
}

// Writer ties the dynamic mapper and smart converter to disk I/O.
type Writer struct {
	setupsRoot string
	mapper     *mapping.Mapper
	converter  *convert.SmartConverter
}

func New(setupsRoot string, mapper *mapping.Mapper, converter *convert.SmartConverter) *Writer {
	return &Writer{setupsRoot: setupsRoot, mapper: mapper, converter: converter}
}

// Write converts s into AC integers for carID and saves it under both
// "<root>/<carID>/generic/<filename>" and "<root>/<carID>/<trackID>/<filename>".
// The generic write is attempted first and is best-effort: a failure there
// is logged as a warning and Result.GenericPath is left empty, but the
// track-specific write still proceeds. Only a failure writing the
// track-specific copy is returned as a KindIOFailure error. overwrite
// controls whether an existing track-specific file is replaced.
func (w *Writer) Write(s *setupfile.Setup, car model.CarDescriptor, trackID string, category model.CategoryTag, filename string, overwrite bool) (Result, error) {
	if w.setupsRoot == "" {
		return Result{}, raceerrors.New(raceerrors.KindIOFailure, "writer.Write", "setups root not configured")
	}
	filename = normalizeFilename(filename)

	carDir := filepath.Join(w.setupsRoot, car.CarID)
	existing := w.readExisting(car.CarID)

	finalParams := make(map[string]int, len(existing)+len(canonicalFields))
	for k, v := range existing {
		finalParams[k] = v
	}

	carMapping := w.mapper.GetCarMapping(car.CarID, false)
	var changeLog []string

	for internalName, ref := range canonicalFields {
		value, ok := lookupValue(s, internalName)
		if !ok {
			continue
		}

		acName := carMapping[internalName]
		if acName == "" {
			acName = ref.Key
		}

		var existingPtr *int
		if v, ok := existing[acName]; ok {
			ev := v
			existingPtr = &ev
		}

		converted, info := w.converter.DetectAndConvert(car.CarID, category, acName, value, existingPtr)
		finalParams[acName] = converted
		changeLog = append(changeLog, fmt.Sprintf("%s (%s.%s): %s", acName, ref.Section, ref.Key, info))
	}

	content := setupfile.EncodeINI(finalParams, car.CarID)

	genericPath := filepath.Join(carDir, "generic", filename)
	if err := atomicWriteFile(genericPath, content); err != nil {
		log.Warn().Err(err).Str("car_id", car.CarID).Str("path", genericPath).
			Msg("writer: failed to save generic setup, continuing with track-specific write")
		genericPath = ""
	}

	trackDir := filepath.Join(carDir, trackID)
	trackPath := filepath.Join(trackDir, filename)
	if fileExists(trackPath) && !overwrite {
		return Result{GenericPath: genericPath, ChangeLog: changeLog}, nil
	}
	if err := atomicWriteFile(trackPath, content); err != nil {
		return Result{GenericPath: genericPath, ChangeLog: changeLog},
			raceerrors.Wrap(raceerrors.KindIOFailure, "writer.Write", "saved generic only; track-specific write failed", err)
	}

	return Result{GenericPath: genericPath, TrackPath: trackPath, ChangeLog: changeLog}, nil
}

func (w *Writer) readExisting(carID string) map[string]int {
	carDir := filepath.Join(w.setupsRoot, carID)
	genericLast := filepath.Join(carDir, "generic", "last.ini")
	if data, err := os.ReadFile(genericLast); err == nil {
		return setupfile.DecodeINI(string(data))
	}

	entries, err := os.ReadDir(carDir)
	if err != nil {
		log.Warn().Str("car_id", carID).
			Str("kind", raceerrors.KindDiscoveryEmpty.String()).
			Msg("writer: no existing sample setup found for car, writing synthesized superset only")
		return map[string]int{}
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		candidate := filepath.Join(carDir, e.Name(), "last.ini")
		if data, err := os.ReadFile(candidate); err == nil {
			return setupfile.DecodeINI(string(data))
		}
	}

	log.Warn().Str("car_id", carID).
		Str("kind", raceerrors.KindDiscoveryEmpty.String()).
		Msg("writer: no existing sample setup found for car, writing synthesized superset only")
	return map[string]int{}
}

func normalizeFilename(name string) string {
	if name == "" {
		name = "setupgen_output"
	}
	if !strings.HasSuffix(name, ".ini") {
		name += ".ini"
	}
	return name
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// atomicWriteFile writes content to a temp file in dir's directory, then
// renames it into place, so a crash mid-write never leaves a half-written
// setup a sim could load.
func atomicWriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".setupgen-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
