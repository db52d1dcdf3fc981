package geom

import "math"

// Point3D is a position in object space. The cube is centered on the origin.
type Point3D struct {
	X, Y, Z float64
}

// Point2D is a position on the drawing surface, origin top-left.
type Point2D struct {
	X, Y float64
}

// Edge indexes two vertices joined by a line segment.
type Edge struct {
	A, B int
}

// Angle3D holds one angle per principal axis, in radians.
type Angle3D struct {
	XA, YA, ZA float64
}

// AngleVelocity is an Angle3D read as radians per second.
type AngleVelocity = Angle3D

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

func (p Point3D) Sub(o Point3D) Point3D { return Point3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point3D) Length() float64       { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

// Scale multiplies every component by s.
func (a Angle3D) Scale(s float64) Angle3D { return Angle3D{a.XA * s, a.YA * s, a.ZA * s} }

// Component returns the angle about axis.
func (a Angle3D) Component(axis Axis) float64 {
	switch axis {
	case AxisX:
		return a.XA
	case AxisY:
		return a.YA
	case AxisZ:
		return a.ZA
	}
	return 0
}

// WithComponent returns a copy of a with the angle about axis replaced by v.
func (a Angle3D) WithComponent(axis Axis, v float64) Angle3D {
	switch axis {
	case AxisX:
		a.XA = v
	case AxisY:
		a.YA = v
	case AxisZ:
		a.ZA = v
	}
	return a
}

// Norm is the Euclidean magnitude of the triple.
func (a Angle3D) Norm() float64 { return math.Sqrt(a.XA*a.XA + a.YA*a.YA + a.ZA*a.ZA) }

// Degrees converts a triple given in degrees using the one-degree constant.
func Degrees(x, y, z float64) Angle3D {
	return Angle3D{x * OneDegreeInRadian, y * OneDegreeInRadian, z * OneDegreeInRadian}
}

// OneDegreeInRadian is a truncated pi/180; kept as written so frames match exactly.
const OneDegreeInRadian = 0.01745329255
