// Command setupgen is the CLI entrypoint: load configuration, run the
// setup-synthesis pipeline for one car/track/conditions combination, and
// optionally export the result and narrate it, adapted from the
// teacher's demos/ flag-driven one-shot tools and goefidash's
// config-path/signal-handling main.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/raceeng/setupgen/internal/advisor"
	"github.com/raceeng/setupgen/internal/config"
	"github.com/raceeng/setupgen/internal/history"
	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/pipeline"
	"github.com/raceeng/setupgen/internal/style"
	"github.com/raceeng/setupgen/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to a setupgen config YAML file (defaults applied if omitted)")
	carID := flag.String("car", "", "Car ID (ignored with -detect for a sim that reports its own car)")
	trackID := flag.String("track", "", "Track ID (ignored with -detect for a sim that reports its own track)")
	trackConfig := flag.String("track-config", "", "Track layout/config name, if the sim distinguishes one")
	ambientC := flag.Float64("ambient", 22.0, "Ambient temperature in Celsius")
	roadC := flag.Float64("road", 28.0, "Road/track temperature in Celsius")
	filename := flag.String("filename", "setupgen_output", "Base filename (without .ini) for the exported setup")
	write := flag.Bool("write", false, "Write the generated setup to disk via the configured setups root")
	overwrite := flag.Bool("overwrite", false, "Allow overwriting an existing track-specific setup file")
	explain := flag.Bool("explain", false, "Ask the advisor to narrate the generated setup (requires AdvisorConfig.Enabled)")
	detect := flag.Bool("detect", false, "Connect to a running simulator and derive car/track/conditions and a driving-style profile bias from live telemetry instead of the flags above")
	sim := flag.String("sim", "iracing", "Simulator to connect to when -detect is set: \"iracing\" or \"acc\"")
	detectWindow := flag.Duration("detect-window", 15*time.Second, "How long to sample telemetry before analyzing driving style, when -detect is set")
	pollInterval := flag.Duration("detect-interval", 50*time.Millisecond, "Telemetry poll interval when -detect is set")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setupgen: failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	if !*detect && (*carID == "" || *trackID == "") {
		logger.Error().Msg("-car and -track are required unless -detect is set")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info().Msg("received interrupt, shutting down")
		cancel()
	}()

	hist, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to open history store, continuing without it")
		hist = nil
	}

	car := model.CarDescriptor{CarID: *carID}
	track := model.TrackDescriptor{TrackID: *trackID, Config: *trackConfig}
	cond := model.Conditions{AmbientC: *ambientC, RoadC: *roadC, Weather: model.WeatherDry}
	profile := model.NeutralProfile()

	if *detect {
		detected, styleBias, ok := detectFromTelemetry(ctx, *sim, *detectWindow, *pollInterval, logger)
		if !ok {
			logger.Error().Msg("telemetry auto-detect failed, pass -car/-track/-ambient/-road explicitly instead")
			os.Exit(1)
		}
		if detected.Car.CarID != "" {
			car = detected.Car
		} else if *carID != "" {
			car = model.CarDescriptor{CarID: *carID}
		}
		if detected.Track.TrackID != "" {
			track = detected.Track
		} else if *trackID != "" {
			track = model.TrackDescriptor{TrackID: *trackID, Config: *trackConfig}
		}
		cond = detected.Conditions
		profile = styleBias
		logger.Info().Str("car_id", car.CarID).Str("track_id", track.TrackID).
			Float64("ambient_c", cond.AmbientC).Float64("road_c", cond.RoadC).
			Msg("telemetry auto-detect complete")
	}

	if car.CarID == "" || track.TrackID == "" {
		logger.Error().Msg("no car/track available: pass -car/-track, or use a sim whose telemetry identifies them")
		os.Exit(2)
	}

	if hist != nil {
		if best, ok := hist.Best(car.CarID, track.FullID()); ok {
			logger.Info().Float64("best_lap_sec", best.BestLapSec).Msg("found a remembered best lap for this car/track, biasing profile")
			profile = best.Profile
		}
	}

	p := pipeline.New(cfg.SetupsRoot)

	var result *pipeline.Result
	if *write {
		exported, err := p.GenerateAndExport(car, track, cond, profile, pipeline.Options{Filename: *filename, Overwrite: *overwrite})
		if err != nil {
			logger.Error().Err(err).Msg("setup generation failed")
			os.Exit(1)
		}
		result = exported.Result
		logger.Info().Str("generic_path", exported.GenericPath).Str("track_path", exported.TrackPath).Msg("setup written")
	} else {
		result, err = p.Generate(car, track, cond, profile, pipeline.Options{})
		if err != nil {
			logger.Error().Err(err).Msg("setup generation failed")
			os.Exit(1)
		}
	}

	logger.Info().Str("category", string(result.Category)).Str("track_type", string(result.TrackType)).
		Int("trace_steps", len(result.Trace)).Msg("setup generated")
	for _, step := range result.Trace {
		logger.Debug().Msg(step)
	}

	if *explain {
		runAdvisor(ctx, cfg, car, track, result, logger)
	}
}

// detectFromTelemetry connects to the requested simulator, windows live
// samples through a style.Analyzer for window, and returns the last
// polled Snapshot (for car/track/conditions) alongside the driving-style
// profile bias derived from the window. ok is false if the connector
// never reached a connected state or produced no usable samples.
func detectFromTelemetry(ctx context.Context, sim string, window, interval time.Duration, logger zerolog.Logger) (telemetry.Snapshot, model.Profile, bool) {
	var conn telemetry.Connector
	switch sim {
	case "acc":
		conn = telemetry.NewACCConnector(logger)
	case "iracing", "":
		conn = telemetry.NewIRacingConnector(logger)
	default:
		logger.Error().Str("sim", sim).Msg("unknown -sim value, expected \"iracing\" or \"acc\"")
		return telemetry.Snapshot{}, model.Profile{}, false
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.Connect(connectCtx); err != nil {
		logger.Error().Err(err).Str("sim", sim).Msg("failed to connect to simulator")
		return telemetry.Snapshot{}, model.Profile{}, false
	}
	defer conn.Disconnect()

	streamCtx, stopStream := context.WithTimeout(ctx, window)
	defer stopStream()

	snapshots, errs := conn.Stream(streamCtx, interval)
	analyzer := style.NewAnalyzer(0)
	var last telemetry.Snapshot
	samples := 0

drain:
	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				break drain
			}
			analyzer.AddSample(snap.Sample)
			last = snap
			samples++
		case err, ok := <-errs:
			if !ok {
				continue
			}
			logger.Debug().Err(err).Msg("telemetry sample dropped")
		case <-streamCtx.Done():
			break drain
		}
	}
	conn.Stop()

	if samples == 0 {
		logger.Warn().Str("sim", sim).Msg("no telemetry samples collected during detect window")
		return telemetry.Snapshot{}, model.Profile{}, false
	}

	metrics := analyzer.Analyze()
	logger.Info().Int("samples", samples).Str("detected_style", string(metrics.DetectedStyle)).
		Float64("confidence", metrics.Confidence).Msg("driving style analyzed from telemetry window")

	return last, style.ToProfileBias(metrics), true
}

// runAdvisor builds and runs the optional Gemini-backed narrator. A
// failure here is logged and swallowed: advisor.Advisor is never on the
// critical path, the setup was already generated (and possibly written)
// before this runs.
func runAdvisor(ctx context.Context, cfg *config.Config, car model.CarDescriptor, track model.TrackDescriptor, result *pipeline.Result, logger zerolog.Logger) {
	adv, err := advisor.New(ctx, cfg.Advisor)
	if err != nil {
		logger.Warn().Err(err).Msg("advisor unavailable")
		return
	}
	if adv == nil {
		logger.Info().Msg("advisor disabled, skipping explanation")
		return
	}

	explainCtx, cancel := context.WithTimeout(ctx, cfg.Advisor.RequestTimeout)
	defer cancel()

	text, err := adv.Explain(explainCtx, car, track, result)
	if err != nil {
		logger.Warn().Err(err).Msg("advisor explanation failed")
		return
	}
	logger.Info().Msg(text)
}
