package engine

import (
	"math"

	"github.com/san-kum/cubespin/internal/geom"
)

// Scale selects the factor applied by ScaleVelocity.
type Scale int

const (
	ScaleUp Scale = iota
	ScaleDown
)

// Controller owns the angular velocity and the state that shapes user
// impulses.
type Controller struct {
	velocity   geom.AngleVelocity
	forward    bool
	multiplier float64
}

func NewController(v geom.AngleVelocity) Controller {
	return Controller{velocity: v, forward: true, multiplier: 1.0}
}

func (c *Controller) Velocity() geom.AngleVelocity { return c.velocity }
func (c *Controller) Forward() bool                { return c.forward }
func (c *Controller) Multiplier() float64          { return c.multiplier }

// SetVelocity overwrites the angular velocity, bypassing direction and
// multiplier.
func (c *Controller) SetVelocity(v geom.AngleVelocity) { c.velocity = v }

// Accelerate adds one impulse about axis, or subtracts it when the direction
// is reversed.
func (c *Controller) Accelerate(axis geom.Axis) {
	delta := AccelerateBy * c.multiplier
	if !c.forward {
		delta = -delta
	}
	c.velocity = c.velocity.WithComponent(axis, c.velocity.Component(axis)+delta)
}

func (c *Controller) ReverseDirection() { c.forward = !c.forward }

func (c *Controller) ScaleVelocity(s Scale) {
	switch s {
	case ScaleUp:
		c.multiplier = math.Min(c.multiplier*2.0, MaxMultiplier)
	case ScaleDown:
		c.multiplier = math.Max(c.multiplier*0.5, MinMultiplier)
	}
}

// Damp decays every component by one frame's worth of friction.
func (c *Controller) Damp() {
	c.velocity = c.velocity.Scale(DampenPercent)
}

func clampMultiplier(m float64) float64 {
	if m <= 0 || math.IsNaN(m) {
		return 1.0
	}
	return math.Max(MinMultiplier, math.Min(m, MaxMultiplier))
}
