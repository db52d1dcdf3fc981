// Package scene turns engine snapshots into drawing primitives. It knows
// nothing about terminals or SVG; hosts consume its Layout.
package scene

import (
	"github.com/san-kum/cubespin/internal/engine"
	"github.com/san-kum/cubespin/internal/geom"
)

// Viewport is the drawing surface every view is laid out on.
type Viewport struct {
	Width, Height float64
}

// DefaultViewport matches the 1000 x 475 drawing box.
var DefaultViewport = Viewport{Width: 1000, Height: 475}

const (
	PointRadius = 2.0
	LabelOffset = 5.0
)

type Line struct {
	X1, Y1, X2, Y2 float64
}

type LabeledPoint struct {
	X, Y  float64
	Label int
}

// LabelPos is where the label text sits relative to the marker.
func (p LabeledPoint) LabelPos() geom.Point2D {
	return geom.Point2D{X: p.X + LabelOffset, Y: p.Y + LabelOffset}
}

// View is one drawing surface's worth of primitives.
type View struct {
	Lines  []Line
	Points []LabeledPoint
}

// Layout is the primary view followed by its replicas, top to bottom.
type Layout struct {
	Viewport Viewport
	Frame    int
	Views    []View
}

func (l Layout) Primary() View    { return l.Views[0] }
func (l Layout) Replicas() []View { return l.Views[1:] }

// Build projects the snapshot once and lays it out on the primary surface and
// on one surface per replica. Replicas share the primary's primitives.
func Build(s engine.Snapshot, vp Viewport) Layout {
	primary := BuildView(s.Vertices, s.Edges, engine.ViewCenter)
	views := make([]View, 0, 1+s.Replicas)
	views = append(views, primary)
	for i := 0; i < s.Replicas; i++ {
		views = append(views, primary)
	}
	return Layout{Viewport: vp, Frame: s.Frame, Views: views}
}

// BuildView draws every edge between projected endpoints and marks every
// vertex with its index.
func BuildView(vertices []geom.Point3D, edges []geom.Edge, center geom.Point2D) View {
	pts := geom.ProjectAll(vertices, center)
	v := View{
		Lines:  make([]Line, 0, len(edges)),
		Points: make([]LabeledPoint, 0, len(pts)),
	}
	for _, e := range edges {
		if e.A < 0 || e.A >= len(pts) || e.B < 0 || e.B >= len(pts) {
			continue
		}
		p1, p2 := pts[e.A], pts[e.B]
		v.Lines = append(v.Lines, Line{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y})
	}
	for i, p := range pts {
		v.Points = append(v.Points, LabeledPoint{X: p.X, Y: p.Y, Label: i})
	}
	return v
}
