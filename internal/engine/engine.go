package engine

import (
	"context"

	"github.com/san-kum/cubespin/internal/geom"
)

// Observer is notified after every tick with the state that tick produced.
type Observer interface {
	OnTick(s Snapshot)
}

// Engine owns the single simulation state. It is not safe for concurrent use;
// the host delivers commands and ticks one at a time.
type Engine struct {
	vertices  []geom.Point3D
	edges     []geom.Edge
	ctrl      Controller
	replicas  int
	frame     int
	observers []Observer
}

type Option func(*Engine)

func WithVelocity(v geom.AngleVelocity) Option {
	return func(e *Engine) { e.ctrl.velocity = v }
}

func WithMultiplier(m float64) Option {
	return func(e *Engine) { e.ctrl.multiplier = clampMultiplier(m) }
}

func WithDirection(forward bool) Option {
	return func(e *Engine) { e.ctrl.forward = forward }
}

func WithReplicas(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.replicas = n
		}
	}
}

// New builds the cube at rest orientation spinning at ten degrees per second
// about each axis.
func New(opts ...Option) *Engine {
	e := &Engine{
		vertices:  CubeVertices(HalfSide),
		edges:     CubeEdges(),
		ctrl:      NewController(geom.AngleVelocity{XA: TenDegreeInRadian, YA: TenDegreeInRadian, ZA: TenDegreeInRadian}),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CubeVertices enumerates the corners in 3-bit order: bit 0 flips x, bit 1
// flips y, bit 2 flips z.
func CubeVertices(half float64) []geom.Point3D {
	v := make([]geom.Point3D, 8)
	for i := range v {
		p := geom.Point3D{X: half, Y: half, Z: half}
		if i&1 != 0 {
			p.X = -half
		}
		if i&2 != 0 {
			p.Y = -half
		}
		if i&4 != 0 {
			p.Z = -half
		}
		v[i] = p
	}
	return v
}

// CubeEdges returns the twelve edges in drawing order.
func CubeEdges() []geom.Edge {
	return []geom.Edge{
		{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 4},
		{A: 1, B: 5}, {A: 1, B: 3},
		{A: 2, B: 3}, {A: 2, B: 6},
		{A: 4, B: 5}, {A: 4, B: 6},
		{A: 3, B: 7}, {A: 6, B: 7}, {A: 5, B: 7},
	}
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Controller exposes the velocity controller for direct commands.
func (e *Engine) Controller() *Controller { return &e.ctrl }

func (e *Engine) Replicas() int { return e.replicas }
func (e *Engine) Frame() int    { return e.frame }

func (e *Engine) AddReplica() { e.replicas++ }

// RemoveReplica is a no-op when there are no replicas left.
func (e *Engine) RemoveReplica() {
	if e.replicas > 0 {
		e.replicas--
	}
}

// SetVertices replaces the vertex set. The count must stay at eight.
func (e *Engine) SetVertices(v []geom.Point3D) error {
	if len(v) != len(e.vertices) {
		return ErrVertexCount
	}
	copy(e.vertices, v)
	return nil
}

// Tick advances one frame: rotate every vertex with the current velocity,
// then damp that velocity.
func (e *Engine) Tick() {
	geom.RotateAll(e.ctrl.velocity, e.vertices, FrameRate)
	e.ctrl.Damp()
	e.frame++

	if len(e.observers) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, obs := range e.observers {
		obs.OnTick(snap)
	}
}

// Run ticks n times, stopping early if ctx is canceled.
func (e *Engine) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		e.Tick()
	}
	return nil
}

// Snapshot is a read-only copy of the simulation state for views.
type Snapshot struct {
	Frame      int
	Vertices   []geom.Point3D
	Edges      []geom.Edge
	Velocity   geom.AngleVelocity
	Forward    bool
	Multiplier float64
	Replicas   int
}

func (e *Engine) Snapshot() Snapshot {
	v := make([]geom.Point3D, len(e.vertices))
	copy(v, e.vertices)
	ed := make([]geom.Edge, len(e.edges))
	copy(ed, e.edges)
	return Snapshot{
		Frame:      e.frame,
		Vertices:   v,
		Edges:      ed,
		Velocity:   e.ctrl.velocity,
		Forward:    e.ctrl.forward,
		Multiplier: e.ctrl.multiplier,
		Replicas:   e.replicas,
	}
}
