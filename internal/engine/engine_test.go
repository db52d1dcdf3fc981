package engine

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubespin/internal/geom"
)

type countingObserver struct {
	frames []int
}

func (c *countingObserver) OnTick(s Snapshot) { c.frames = append(c.frames, s.Frame) }

var _ = Describe("Engine", func() {
	var e *Engine

	BeforeEach(func() {
		e = New()
	})

	Describe("construction", func() {
		It("starts as a cube of half-side 100 in binary corner order", func() {
			s := e.Snapshot()
			Expect(s.Vertices).To(Equal([]geom.Point3D{
				{X: 100, Y: 100, Z: 100}, {X: -100, Y: 100, Z: 100},
				{X: 100, Y: -100, Z: 100}, {X: -100, Y: -100, Z: 100},
				{X: 100, Y: 100, Z: -100}, {X: -100, Y: 100, Z: -100},
				{X: 100, Y: -100, Z: -100}, {X: -100, Y: -100, Z: -100},
			}))
		})

		It("carries the twelve cube edges in drawing order", func() {
			Expect(e.Snapshot().Edges).To(Equal([]geom.Edge{
				{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 4}, {A: 1, B: 5},
				{A: 1, B: 3}, {A: 2, B: 3}, {A: 2, B: 6}, {A: 4, B: 5},
				{A: 4, B: 6}, {A: 3, B: 7}, {A: 6, B: 7}, {A: 5, B: 7},
			}))
		})

		It("uses the documented initial controller state", func() {
			s := e.Snapshot()
			Expect(s.Velocity).To(Equal(geom.AngleVelocity{XA: TenDegreeInRadian, YA: TenDegreeInRadian, ZA: TenDegreeInRadian}))
			Expect(s.Forward).To(BeTrue())
			Expect(s.Multiplier).To(Equal(1.0))
			Expect(s.Replicas).To(BeZero())
		})

		It("applies options", func() {
			e = New(WithVelocity(geom.AngleVelocity{}), WithMultiplier(4), WithDirection(false), WithReplicas(2))
			s := e.Snapshot()
			Expect(s.Velocity).To(Equal(geom.AngleVelocity{}))
			Expect(s.Multiplier).To(Equal(4.0))
			Expect(s.Forward).To(BeFalse())
			Expect(s.Replicas).To(Equal(2))
		})

		It("falls back to a unit multiplier when given a non-positive one", func() {
			Expect(New(WithMultiplier(0)).Snapshot().Multiplier).To(Equal(1.0))
			Expect(New(WithMultiplier(-3)).Snapshot().Multiplier).To(Equal(1.0))
		})
	})

	Describe("invariants under ticking", func() {
		It("keeps eight vertices and the same edges", func() {
			edges := e.Snapshot().Edges
			e.ApplyAll([]Command{CmdRotateX, CmdVelocityUp, CmdRotateZ})
			for i := 0; i < 500; i++ {
				e.Tick()
				if i%50 == 0 {
					e.Apply(CmdRotateY)
				}
			}
			s := e.Snapshot()
			Expect(s.Vertices).To(HaveLen(8))
			Expect(s.Edges).To(Equal(edges))
			Expect(s.Frame).To(Equal(500))
		})

		It("decays velocity geometrically without input", func() {
			e.Controller().SetVelocity(geom.AngleVelocity{XA: 1.5, YA: -2, ZA: 0.25})
			const n = 300
			Expect(e.Run(context.Background(), n)).To(Succeed())
			v := e.Snapshot().Velocity
			f := math.Pow(DampenPercent, n)
			Expect(math.Abs(v.XA)).To(BeNumerically("~", 1.5*f, 1e-12))
			Expect(math.Abs(v.YA)).To(BeNumerically("~", 2*f, 1e-12))
			Expect(math.Abs(v.ZA)).To(BeNumerically("~", 0.25*f, 1e-12))
		})

		It("does not hand out its own vertex slice", func() {
			s := e.Snapshot()
			s.Vertices[0] = geom.Point3D{}
			Expect(e.Snapshot().Vertices[0]).To(Equal(geom.Point3D{X: 100, Y: 100, Z: 100}))
		})

		It("rejects vertex sets that are not a cube", func() {
			Expect(e.SetVertices(make([]geom.Point3D, 7))).To(MatchError(ErrVertexCount))
			Expect(e.SetVertices(CubeVertices(50))).To(Succeed())
			Expect(e.Snapshot().Vertices[7]).To(Equal(geom.Point3D{X: -50, Y: -50, Z: -50}))
		})
	})

	Describe("commands", func() {
		It("never moves the cube", func() {
			before := e.Snapshot().Vertices
			for _, c := range Buttons() {
				e.Apply(c)
			}
			Expect(e.Snapshot().Vertices).To(Equal(before))
			Expect(e.Frame()).To(BeZero())
		})

		It("ticks on CmdTick", func() {
			e.Apply(CmdTick)
			Expect(e.Frame()).To(Equal(1))
		})

		It("reverses direction as an involution", func() {
			e.Apply(CmdReverse)
			Expect(e.Snapshot().Forward).To(BeFalse())
			e.Apply(CmdReverse)
			Expect(e.Snapshot().Forward).To(BeTrue())
		})

		It("scales the multiplier reversibly", func() {
			for _, m := range []float64{1, 3, 0.125, 1e10} {
				e = New(WithMultiplier(m))
				e.Apply(CmdVelocityUp)
				e.Apply(CmdVelocityDown)
				Expect(e.Snapshot().Multiplier).To(Equal(m))
			}
		})

		It("keeps the multiplier positive and finite", func() {
			for i := 0; i < 2000; i++ {
				e.Apply(CmdVelocityDown)
			}
			Expect(e.Snapshot().Multiplier).To(Equal(MinMultiplier))
			for i := 0; i < 4000; i++ {
				e.Apply(CmdVelocityUp)
			}
			Expect(e.Snapshot().Multiplier).To(Equal(MaxMultiplier))
		})

		It("counts replicas without going negative", func() {
			e.Apply(CmdAddCube)
			Expect(e.Replicas()).To(Equal(1))
			e.Apply(CmdRemoveCube)
			Expect(e.Replicas()).To(BeZero())
			e.Apply(CmdRemoveCube)
			Expect(e.Replicas()).To(BeZero())
		})
	})

	Describe("observers", func() {
		It("sees every tick in order", func() {
			obs := &countingObserver{}
			e.AddObserver(obs)
			Expect(e.Run(context.Background(), 3)).To(Succeed())
			Expect(obs.frames).To(Equal([]int{1, 2, 3}))
		})

		It("stops when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(e.Run(ctx, 10)).To(MatchError(context.Canceled))
			Expect(e.Frame()).To(BeZero())
		})
	})

	Describe("scenarios", func() {
		It("S1: zero velocity tick is the identity", func() {
			e.Controller().SetVelocity(geom.AngleVelocity{})
			e.Tick()
			v0 := e.Snapshot().Vertices[0]
			Expect(v0.X).To(BeNumerically("~", 100, 1e-12))
			Expect(v0.Y).To(BeNumerically("~", 100, 1e-12))
			Expect(v0.Z).To(BeNumerically("~", 100, 1e-12))
		})

		It("S2: one X-axis frame", func() {
			e.Controller().SetVelocity(geom.AngleVelocity{XA: math.Pi})
			e.Tick()
			dx := math.Pi / 200
			v0 := e.Snapshot().Vertices[0]
			Expect(v0.X).To(BeNumerically("~", 100, 1e-12))
			Expect(v0.Y).To(BeNumerically("~", 100*math.Cos(dx)-100*math.Sin(dx), 1e-12))
			Expect(v0.Z).To(BeNumerically("~", 100*math.Cos(dx)+100*math.Sin(dx), 1e-12))
		})

		It("S3: damping over one second", func() {
			Expect(e.Run(context.Background(), 200)).To(Succeed())
			want := 0.1745329255 * math.Pow(0.9955, 200)
			v := e.Snapshot().Velocity
			Expect(v.XA).To(BeNumerically("~", want, 1e-12))
			Expect(v.YA).To(BeNumerically("~", want, 1e-12))
			Expect(v.ZA).To(BeNumerically("~", want, 1e-12))
			Expect(v.XA).To(BeNumerically("~", 0.0708158, 1e-6))
		})

		It("S4: accelerate then reverse", func() {
			e.Apply(CmdRotateX)
			Expect(e.Snapshot().Velocity.XA).To(BeNumerically("~", 1.047197553, 1e-9))
			e.Apply(CmdReverse)
			e.Apply(CmdRotateX)
			Expect(e.Snapshot().Velocity.XA).To(BeNumerically("~", 0.1745329255, 1e-9))
		})

		It("S5: velocity scaling", func() {
			e.Apply(CmdVelocityUp)
			e.Apply(CmdVelocityUp)
			Expect(e.Snapshot().Multiplier).To(Equal(4.0))
			e.Apply(CmdRotateY)
			Expect(e.Snapshot().Velocity.YA).To(BeNumerically("~", TenDegreeInRadian+3.490658510, 1e-9))
		})

		It("S6: replica lifecycle", func() {
			for i := 0; i < 5; i++ {
				e.Apply(CmdAddCube)
			}
			for i := 0; i < 7; i++ {
				e.Apply(CmdRemoveCube)
			}
			Expect(e.Replicas()).To(BeZero())
			e.Apply(CmdRemoveCube)
			Expect(e.Replicas()).To(BeZero())
		})
	})
})
