package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/mpapenbr/goirsdk/irsdk"
	"github.com/rs/zerolog"

	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/style"
)

// IRacingConnector reads iRacing's shared-memory telemetry through
// goirsdk, adapted from the teacher's sims.IRacingConnector down to the
// subset of channels this repository needs.
type IRacingConnector struct {
	api         *irsdk.Irsdk
	client      *http.Client
	isConnected bool
	stop        chan struct{}

	circuitBreaker *CircuitBreaker
	retryHandler   *RetryHandler
	logger         zerolog.Logger
}

// NewIRacingConnector builds an IRacingConnector with the teacher's
// default retry/circuit-breaker tuning.
func NewIRacingConnector(logger zerolog.Logger) *IRacingConnector {
	return &IRacingConnector{
		client:         &http.Client{Timeout: 10 * time.Second},
		stop:           make(chan struct{}),
		circuitBreaker: NewCircuitBreaker(nil),
		retryHandler:   NewRetryHandler(nil),
		logger:         logger,
	}
}

func (c *IRacingConnector) SimulatorType() SimulatorType { return SimulatorIRacing }
func (c *IRacingConnector) IsConnected() bool            { return c.isConnected }

func (c *IRacingConnector) Connect(ctx context.Context) error {
	return c.circuitBreaker.Execute(func() error {
		return c.retryHandler.Retry(ctx, func() error {
			return c.attemptConnect(ctx)
		})
	})
}

func (c *IRacingConnector) attemptConnect(ctx context.Context) error {
	running, err := irsdk.IsSimRunning(ctx, c.client)
	if err != nil {
		return newConnectionError(SimulatorIRacing, "check_sim_running", err, true)
	}
	if !running {
		return newConnectionError(SimulatorIRacing, "sim_not_running", errNotConnected, true)
	}

	c.api = irsdk.NewIrsdk()
	if !c.api.WaitForValidData() {
		return newConnectionError(SimulatorIRacing, "wait_for_valid_data", errNotConnected, true)
	}

	c.isConnected = true
	return nil
}

func (c *IRacingConnector) Disconnect() error {
	if c.isConnected {
		close(c.stop)
		c.stop = make(chan struct{})
		c.api = nil
		c.isConnected = false
	}
	return nil
}

func (c *IRacingConnector) Poll(ctx context.Context) (Snapshot, error) {
	if !c.isConnected || c.api == nil {
		return Snapshot{}, newConnectionError(SimulatorIRacing, "poll", errNotConnected, true)
	}

	var snap Snapshot
	err := c.circuitBreaker.Execute(func() error {
		return c.retryHandler.Retry(ctx, func() error {
			if !c.api.WaitForValidData() {
				return newConnectionError(SimulatorIRacing, "wait_for_valid_data", errNotConnected, true)
			}
			c.api.GetData()

			built, buildErr := c.buildSnapshot()
			if buildErr != nil {
				return buildErr
			}
			snap = built
			return nil
		})
	})
	return snap, err
}

// buildSnapshot reads the telemetry channels the teacher's
// convertToTelemetryData also reads (AirTemp/TrackTemp/Speed/Throttle/
// Brake/SteeringWheelAngle). iRacing's shared memory carries no stable
// car/track identifier channel, so Car and Track are left zero-valued
// here; a caller pairs a Snapshot with whatever car/track database it
// already has (e.g. from its own session setup) before calling the
// synthesis pipeline.
func (c *IRacingConnector) buildSnapshot() (Snapshot, error) {
	airTemp, _ := c.api.GetFloatValue("AirTemp")
	trackTemp, _ := c.api.GetFloatValue("TrackTemp")

	speed, _ := c.api.GetFloatValue("Speed")
	throttle, _ := c.api.GetFloatValue("Throttle")
	brake, _ := c.api.GetFloatValue("Brake")
	steer, _ := c.api.GetFloatValue("SteeringWheelAngle")
	latAccel, _ := c.api.GetFloatValue("LatAccel")
	lonAccel, _ := c.api.GetFloatValue("LongAccel")

	return Snapshot{
		Conditions: model.Conditions{
			AmbientC: float64(airTemp),
			RoadC:    float64(trackTemp),
			Weather:  model.WeatherDry,
		},
		Sample: style.Sample{
			SpeedKmh: float64(speed) * 3.6,
			Throttle: float64(throttle),
			Brake:    float64(brake),
			Steering: normalizeSteeringRad(float64(steer)),
			GLat:     float64(latAccel) / 9.81,
			GLon:     float64(lonAccel) / 9.81,
		},
	}, nil
}

func (c *IRacingConnector) Stream(ctx context.Context, interval time.Duration) (<-chan Snapshot, <-chan error) {
	return runStream(ctx, interval, c.stop, c.Poll, c.logger)
}

func (c *IRacingConnector) Stop() {
	select {
	case c.stop <- struct{}{}:
	default:
	}
}

// normalizeSteeringRad maps iRacing's SteeringWheelAngle (radians, can
// exceed +/-pi for multi-turn wheels) onto the -1..1 range style.Sample
// expects, clamping rather than wrapping.
func normalizeSteeringRad(rad float64) float64 {
	const maxWheelRad = 3.5 // ~200 degrees of lock, a common sim-wheel range
	v := rad / maxWheelRad
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
