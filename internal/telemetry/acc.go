package telemetry

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"github.com/raceeng/setupgen/internal/model"
	"github.com/raceeng/setupgen/internal/style"
)

// accPhysics mirrors the subset of ACC's acpmf_physics shared-memory
// layout this repository reads, adapted from the teacher's ACCPhysics.
// Field order and sizes must match ACC's layout exactly since the struct
// is read by reinterpreting a raw memory-mapped pointer.
type accPhysics struct {
	PacketID   int32
	Gas        float32
	Brake      float32
	Fuel       float32
	Gear       int32
	RPM        int32
	SteerAngle float32
	SpeedKMH   float32
	Velocity   [3]float32
	AccG       [3]float32
	_          [4 * 4]float32 // wheel slip/load/pressure/angular speed, unused here
	_          [4 * 3]float32 // tyre wear/dirty level/core temperature, unused here
	_          [4]float32     // camber, unused here
	_          [4]float32     // suspension travel, unused here
	_          float32        // drs
	_          float32        // tc
	_          float32        // heading
	_          float32        // pitch
	_          float32        // roll
	_          float32        // cg height
	_          [5]float32     // car damage, unused here
	_          int32          // number of tyres out
	_          int32          // pit limiter on
	_          float32        // abs
	_          float32        // kers charge
	_          float32        // kers input
	_          int32          // auto shifter on
	_          [2]float32     // ride height
	_          float32        // turbo boost
	_          float32        // ballast
	AirDensity float32
	AirTemp    float32
	RoadTemp   float32
}

// accGraphics mirrors the leading fields of ACC's acpmf_graphics layout.
type accGraphics struct {
	PacketID              int32
	ACStatus              int32
	ACSessionType         int32
	CurrentTime           [15]uint16
	LastTime              [15]uint16
	BestTime              [15]uint16
	Split                 [15]uint16
	CompletedLaps         int32
	Position              int32
	ICurrentTime          int32
	ILastTime             int32
	IBestTime             int32
	SessionTimeLeft       float32
	DistanceTraveled      float32
	IsInPit               int32
	CurrentSectorIndex    int32
	LastSectorTime        int32
	NumberOfLaps          int32
	TyreCompound          [33]uint16
	ReplayTimeMultiplier  float32
	NormalizedCarPosition float32
}

// accStatic mirrors the leading fields of ACC's acpmf_static layout,
// which is where car and track identification live.
type accStatic struct {
	SMVersion  [15]uint16
	ACVersion  [15]uint16
	_          int32 // number of sessions
	_          int32 // num cars
	CarModel   [33]uint16
	Track      [33]uint16
	PlayerName [33]uint16
}

// ACCConnector reads Assetto Corsa Competizione's shared-memory telemetry
// through the three named memory-mapped files ACC exposes, adapted from
// the teacher's sims.ACCConnector. The teacher's own go.mod lists
// gitlab.com/turn1de/acc_client as an ACC dependency, but its connector
// never imports it — it reads the raw Windows shared-memory blocks
// directly with golang.org/x/sys/windows and unsafe.Pointer, which this
// connector does the same way.
type ACCConnector struct {
	physicsHandle  windows.Handle
	graphicsHandle windows.Handle
	staticHandle   windows.Handle
	isConnected    bool
	stop           chan struct{}

	circuitBreaker *CircuitBreaker
	retryHandler   *RetryHandler
	logger         zerolog.Logger
}

func NewACCConnector(logger zerolog.Logger) *ACCConnector {
	return &ACCConnector{
		stop:           make(chan struct{}),
		circuitBreaker: NewCircuitBreaker(nil),
		retryHandler:   NewRetryHandler(nil),
		logger:         logger,
	}
}

func (c *ACCConnector) SimulatorType() SimulatorType { return SimulatorACC }
func (c *ACCConnector) IsConnected() bool            { return c.isConnected }

func (c *ACCConnector) Connect(ctx context.Context) error {
	return c.circuitBreaker.Execute(func() error {
		return c.retryHandler.Retry(ctx, func() error {
			return c.attemptConnect()
		})
	})
}

func (c *ACCConnector) attemptConnect() error {
	var err error

	c.physicsHandle, err = openSharedMemory("Local\\acpmf_physics")
	if err != nil {
		return newConnectionError(SimulatorACC, "open_physics_memory", err, true)
	}

	c.graphicsHandle, err = openSharedMemory("Local\\acpmf_graphics")
	if err != nil {
		windows.CloseHandle(c.physicsHandle)
		return newConnectionError(SimulatorACC, "open_graphics_memory", err, true)
	}

	c.staticHandle, err = openSharedMemory("Local\\acpmf_static")
	if err != nil {
		windows.CloseHandle(c.physicsHandle)
		windows.CloseHandle(c.graphicsHandle)
		return newConnectionError(SimulatorACC, "open_static_memory", err, true)
	}

	if _, _, _, err := c.readAll(); err != nil {
		c.cleanupHandles()
		return newConnectionError(SimulatorACC, "read_test_data", err, true)
	}

	c.isConnected = true
	return nil
}

func (c *ACCConnector) cleanupHandles() {
	if c.physicsHandle != 0 {
		windows.CloseHandle(c.physicsHandle)
		c.physicsHandle = 0
	}
	if c.graphicsHandle != 0 {
		windows.CloseHandle(c.graphicsHandle)
		c.graphicsHandle = 0
	}
	if c.staticHandle != 0 {
		windows.CloseHandle(c.staticHandle)
		c.staticHandle = 0
	}
}

func (c *ACCConnector) Disconnect() error {
	if c.isConnected {
		close(c.stop)
		c.stop = make(chan struct{})
		c.cleanupHandles()
		c.isConnected = false
	}
	return nil
}

func (c *ACCConnector) Poll(ctx context.Context) (Snapshot, error) {
	if !c.isConnected {
		return Snapshot{}, newConnectionError(SimulatorACC, "poll", errNotConnected, true)
	}

	var snap Snapshot
	err := c.circuitBreaker.Execute(func() error {
		return c.retryHandler.Retry(ctx, func() error {
			physics, _, static, err := c.readAll()
			if err != nil {
				return newConnectionError(SimulatorACC, "read_shared_memory", err, true)
			}
			snap = buildACCSnapshot(physics, static)
			return nil
		})
	})
	return snap, err
}

func (c *ACCConnector) readAll() (*accPhysics, *accGraphics, *accStatic, error) {
	physics, err := readMappedStruct[accPhysics](c.physicsHandle)
	if err != nil {
		return nil, nil, nil, err
	}
	graphics, err := readMappedStruct[accGraphics](c.graphicsHandle)
	if err != nil {
		return nil, nil, nil, err
	}
	static, err := readMappedStruct[accStatic](c.staticHandle)
	if err != nil {
		return nil, nil, nil, err
	}
	return physics, graphics, static, nil
}

// buildACCSnapshot converts one physics/static read into this repository's
// domain vocabulary, the ACC counterpart of iracing.go's buildSnapshot.
// Graphics carries lap/session state this repository doesn't need yet, so
// it is read (to prove the mapping is live) but not converted.
func buildACCSnapshot(physics *accPhysics, static *accStatic) Snapshot {
	return Snapshot{
		Car: model.CarDescriptor{
			CarID: decodeUTF16(static.CarModel[:]),
		},
		Track: model.TrackDescriptor{
			TrackID: decodeUTF16(static.Track[:]),
		},
		Conditions: model.Conditions{
			AmbientC: float64(physics.AirTemp),
			RoadC:    float64(physics.RoadTemp),
			Weather:  model.WeatherDry,
		},
		Sample: style.Sample{
			SpeedKmh: float64(physics.SpeedKMH),
			Throttle: float64(physics.Gas),
			Brake:    float64(physics.Brake),
			Steering: normalizeSteeringRad(float64(physics.SteerAngle)),
			GLat:     float64(physics.AccG[0]),
			GLon:     float64(physics.AccG[2]),
		},
	}
}

func (c *ACCConnector) Stream(ctx context.Context, interval time.Duration) (<-chan Snapshot, <-chan error) {
	return runStream(ctx, interval, c.stop, c.Poll, c.logger)
}

func (c *ACCConnector) Stop() {
	select {
	case c.stop <- struct{}{}:
	default:
	}
}

// openSharedMemory opens one of ACC's named shared-memory blocks for
// read-only mapping.
func openSharedMemory(name string) (windows.Handle, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	handle, err := windows.OpenFileMapping(windows.FILE_MAP_READ, false, namePtr)
	if err != nil {
		return 0, fmt.Errorf("acc shared memory %q not available: %w", name, err)
	}
	return handle, nil
}

// readMappedStruct maps handle read-only, copies the struct out, and
// unmaps it again, never holding a pointer into shared memory past the
// call — the same discipline as the teacher's readPhysicsData/
// readGraphicsData/readStaticData.
func readMappedStruct[T any](handle windows.Handle) (*T, error) {
	var zero T
	ptr, err := windows.MapViewOfFile(handle, windows.FILE_MAP_READ, 0, 0, unsafe.Sizeof(zero))
	if err != nil {
		return nil, err
	}
	defer windows.UnmapViewOfFile(ptr)

	value := *(*T)(unsafe.Pointer(ptr))
	return &value, nil
}

// decodeUTF16 trims a null-terminated UTF-16 shared-memory string field
// down to its printable contents.
func decodeUTF16(data []uint16) string {
	for i, v := range data {
		if v == 0 {
			return windows.UTF16ToString(data[:i])
		}
	}
	return windows.UTF16ToString(data)
}
