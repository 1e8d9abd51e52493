// Package pipeline implements the setup-synthesis orchestrator (C10,
// spec §4.9): classify, look up targets, build the physics baseline,
// refine it, fold in slider preferences, clamp to the hard envelope, and
// optionally export to disk.
package pipeline

import (
	"fmt"

	"github.com/raceeng/setupgen/internal/category"
	"github.com/raceeng/setupgen/internal/convert"
	"github.com/raceeng/setupgen/internal/mapping"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/physics"
	"github.com/raceeng/setupgen/internal/raceerrors"
	"github.com/raceeng/setupgen/internal/setupfile"
	"github.com/raceeng/setupgen/internal/sliders"
	"github.com/raceeng/setupgen/internal/writer"
)

// Options tunes a single Generate/GenerateAndExport call.
type Options struct {
	// MotionRatioOverride replaces the category-default motion ratios
	// used by the physics refiner (C4a), when a per-car measurement is
	// known.
	MotionRatioOverride *physics.MotionRatios
	// Filename is the base name (without .ini) for GenerateAndExport's
	// on-disk output. Defaults to "setupgen_output".
	Filename string
	// Overwrite allows GenerateAndExport to replace an existing
	// track-specific file; the generic copy is always refreshed.
	Overwrite bool
}

// Result is everything a Generate call produced, before any disk write.
type Result struct {
	Setup     *setupfile.Setup
	Category  model.CategoryTag
	TrackType model.TrackType
	Targets   category.Targets
	// Trace lists every slider-effect and clamp adjustment applied, in
	// application order, for debugging and audit logging.
	Trace []string
}

// Pipeline owns the process-local caches (dynamic mapper, value-type
// detector) that make repeated Generate calls for the same car cheap.
type Pipeline struct {
	setupsRoot string
	mapper     *mapping.Mapper
	detector   *mapping.ValueTypeDetector
	writer     *writer.Writer
}

// New builds a Pipeline rooted at a simulator's setups directory. Pass ""
// if on-disk car/track file discovery is unavailable (the pipeline still
// runs; the dynamic mapper and value-type detector simply report nothing
// learned and fall back to canonical names and absolute-value handling).
func New(setupsRoot string) *Pipeline {
	mapper := mapping.NewMapper(setupsRoot)
	detector := mapping.NewValueTypeDetector(setupsRoot)
	conv := convert.NewSmartConverter(convert.NewConverter())
	return &Pipeline{
		setupsRoot: setupsRoot,
		mapper:     mapper,
		detector:   detector,
		writer:     writer.New(setupsRoot, mapper, conv),
	}
}

// Generate runs C1 through C5 plus the envelope clamp pass, returning the
// in-memory physical-unit Setup without writing anything to disk.
func (p *Pipeline) Generate(car model.CarDescriptor, track model.TrackDescriptor, cond model.Conditions, profile model.Profile, opts Options) (*Result, error) {
	if car.CarID == "" {
		return nil, raceerrors.New(raceerrors.KindInputInvalid, "pipeline.Generate", "car_id is required")
	}
	if track.TrackID == "" {
		return nil, raceerrors.New(raceerrors.KindInputInvalid, "pipeline.Generate", "track_id is required")
	}

	tag := category.Classify(car)
	targets := category.Lookup(tag)
	trackType := model.DetectTrackType(track)

	s := physics.Build(car, track, targets, cond, trackType)
	s = physics.Refine(s, tag, targets.RakeDeg, trackType, opts.MotionRatioOverride)

	isClickBased := p.detector.IsClickBased(car.CarID, "spring")
	s, sliderLog := sliders.ApplyAll(s, profile, isClickBased)

	clampLog := setupfile.ClampEnvelope(s)

	trace := make([]string, 0, len(sliderLog)+len(clampLog))
	trace = append(trace, sliderLog...)
	trace = append(trace, clampLog...)

	return &Result{
		Setup:     s,
		Category:  tag,
		TrackType: trackType,
		Targets:   targets,
		Trace:     trace,
	}, nil
}

// ExportResult bundles a Generate result with where it was written.
type ExportResult struct {
	*Result
	GenericPath string
	TrackPath   string
	WriteTrace  []string
}

// GenerateAndExport runs Generate and then writes the result to disk
// through the C9 setup writer (dynamic mapping + smart conversion +
// two-destination atomic write).
func (p *Pipeline) GenerateAndExport(car model.CarDescriptor, track model.TrackDescriptor, cond model.Conditions, profile model.Profile, opts Options) (*ExportResult, error) {
	result, err := p.Generate(car, track, cond, profile, opts)
	if err != nil {
		return nil, err
	}

	filename := opts.Filename
	if filename == "" {
		filename = "setupgen_output"
	}

	writeResult, err := p.writer.Write(result.Setup, car, track.FullID(), result.Category, filename, opts.Overwrite)
	if err != nil {
		return nil, raceerrors.Wrap(raceerrors.KindIOFailure, "pipeline.GenerateAndExport",
			fmt.Sprintf("failed to export setup for %s at %s", car.CarID, track.FullID()), err)
	}

	return &ExportResult{
		Result:      result,
		GenericPath: writeResult.GenericPath,
		TrackPath:   writeResult.TrackPath,
		WriteTrace:  writeResult.ChangeLog,
	}, nil
}

// RefreshCaches invalidates the dynamic mapper and value-type detector
// caches, forcing the next Generate call to re-read each car's setup
// files from disk.
func (p *Pipeline) RefreshCaches() {
	p.mapper.ClearCache()
	p.detector.ClearCache()
}
