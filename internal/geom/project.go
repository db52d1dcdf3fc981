package geom

// Project drops z and moves the origin to center. Depth plays no part in
// ordering or scale.
func Project(p Point3D, center Point2D) Point2D {
	return Point2D{X: p.X + center.X, Y: p.Y + center.Y}
}

// ProjectAll projects every point in pts.
func ProjectAll(pts []Point3D, center Point2D) []Point2D {
	out := make([]Point2D, len(pts))
	for i, p := range pts {
		out[i] = Project(p, center)
	}
	return out
}
