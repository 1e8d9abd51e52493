// Package telemetry is the external shared-memory collaborator: it reads
// live simulator state (iRacing/ACC) and turns it into the domain types
// the rest of this repository works with — model.Conditions and
// style.Sample, plus whatever car/track identification each backend's
// shared-memory layout actually carries. It never calls into
// internal/pipeline; a caller reads from a Connector, pairs the result
// with its own car/track database, and decides when to run the
// synthesis pipeline.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/style"
)

// SimulatorType identifies which simulator a Connector talks to.
type SimulatorType string

const (
	SimulatorIRacing SimulatorType = "iracing"
	SimulatorACC     SimulatorType = "acc"
)

// Snapshot is one poll of simulator state, already converted into this
// repository's own domain vocabulary.
type Snapshot struct {
	Car        model.CarDescriptor
	Track      model.TrackDescriptor
	Conditions model.Conditions
	Sample     style.Sample
}

// Connector is the contract every simulator backend implements, adapted
// from the teacher's sims.SimulatorConnector down to what this repository
// actually needs: enough state to drive classification/physics/style, not
// a full race-strategy telemetry feed.
type Connector interface {
	Connect(ctx context.Context) error
	Disconnect() error
	IsConnected() bool
	SimulatorType() SimulatorType

	// Poll reads one Snapshot. Implementations wrap the read in their own
	// circuit breaker and retry handler.
	Poll(ctx context.Context) (Snapshot, error)

	// Stream polls at the given interval until ctx is done or Stop is
	// called, same shape as the teacher's StartDataStream/StopDataStream.
	Stream(ctx context.Context, interval time.Duration) (<-chan Snapshot, <-chan error)
	Stop()
}

// newConnectionError is a small helper every backend uses to build a
// consistent retryable ConnectionError.
func newConnectionError(sim SimulatorType, op string, cause error, retryable bool) *ConnectionError {
	return &ConnectionError{Simulator: sim, Operation: op, Cause: cause, Retryable: retryable}
}

// runStream is the poll-loop body shared by every Connector
// implementation; backends pass their own Poll method in.
func runStream(ctx context.Context, interval time.Duration, stop chan struct{}, poll func(context.Context) (Snapshot, error), logger zerolog.Logger) (<-chan Snapshot, <-chan error) {
	snapshots := make(chan Snapshot, 10)
	errs := make(chan error, 10)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(snapshots)
		defer close(errs)

		for {
			select {
			case <-ticker.C:
				snap, err := poll(ctx)
				if err != nil {
					logger.Debug().Err(err).Msg("telemetry poll failed")
					select {
					case errs <- err:
					default:
					}
					continue
				}
				select {
				case snapshots <- snap:
				default:
				}
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return snapshots, errs
}

var errNotConnected = fmt.Errorf("telemetry: not connected")
