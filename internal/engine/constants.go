package engine

import (
	"time"

	"github.com/san-kum/cubespin/internal/geom"
)

const (
	ViewBoxSize       = 600.0
	FrameRate         = 200.0
	OneDegreeInRadian = geom.OneDegreeInRadian
	TenDegreeInRadian = OneDegreeInRadian * 10
	AccelerateBy      = OneDegreeInRadian * 50
	DampenPercent     = 1 - 0.9/FrameRate

	// HalfSide is the distance from the cube center to each face.
	HalfSide = 100.0

	TickInterval = time.Second / time.Duration(FrameRate)
)

// ViewCenter is where the object-space origin lands on the drawing surface.
var ViewCenter = geom.Point2D{X: ViewBoxSize / 2, Y: ViewBoxSize / 2}

// Multiplier bounds. Both are powers of two so doubling then halving is exact
// anywhere between them.
const (
	MinMultiplier = 0x1p-60
	MaxMultiplier = 0x1p60
)
