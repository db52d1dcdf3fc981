package geom

import "math"

// RotateInPlane turns the pair (a1, a2) by angle within their plane.
func RotateInPlane(a1, a2, angle float64) (float64, float64) {
	c, s := math.Cos(angle), math.Sin(angle)
	return a1*c - a2*s, a2*c + a1*s
}

// RotateAbout rotates p by angle about a single axis.
func RotateAbout(p Point3D, axis Axis, angle float64) Point3D {
	switch axis {
	case AxisX:
		p.Y, p.Z = RotateInPlane(p.Y, p.Z, angle)
	case AxisY:
		p.X, p.Z = RotateInPlane(p.X, p.Z, angle)
	case AxisZ:
		p.X, p.Y = RotateInPlane(p.X, p.Y, angle)
	}
	return p
}

// RotateBy applies the three angles to p about X, then Y, then Z.
func RotateBy(angles Angle3D, p Point3D) Point3D {
	p = RotateAbout(p, AxisX, angles.XA)
	p = RotateAbout(p, AxisY, angles.YA)
	return RotateAbout(p, AxisZ, angles.ZA)
}

// Rotate advances p by one frame of the angular velocity v at frameRate frames
// per second.
func Rotate(v AngleVelocity, p Point3D, frameRate float64) Point3D {
	return RotateBy(perFrame(v, frameRate), p)
}

func perFrame(v AngleVelocity, frameRate float64) Angle3D {
	return Angle3D{v.XA / frameRate, v.YA / frameRate, v.ZA / frameRate}
}

// RotateAll replaces every point in pts with its one-frame image. The slice is
// rewritten in place, so rounding error accumulates across frames.
func RotateAll(v AngleVelocity, pts []Point3D, frameRate float64) {
	step := perFrame(v, frameRate)
	for i := range pts {
		pts[i] = RotateBy(step, pts[i])
	}
}

// Unrotate inverts RotateBy: Z first, then Y, then X, each negated.
func Unrotate(angles Angle3D, p Point3D) Point3D {
	p = RotateAbout(p, AxisZ, -angles.ZA)
	p = RotateAbout(p, AxisY, -angles.YA)
	return RotateAbout(p, AxisX, -angles.XA)
}
