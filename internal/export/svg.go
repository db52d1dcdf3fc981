package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/cubespin/internal/scene"
)

// LayoutSVG renders the primary view and every replica as one SVG document,
// each view on its own viewport-sized surface stacked top to bottom.
func LayoutSVG(l scene.Layout) string {
	vp := l.Viewport
	total := vp.Height * float64(len(l.Views))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, vp.Width, total, vp.Width, total))

	for i, v := range l.Views {
		sb.WriteString(fmt.Sprintf(`<svg x="0" y="%.0f" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, float64(i)*vp.Height, vp.Width, vp.Height, vp.Width, vp.Height))
		writeView(&sb, v)
		sb.WriteString("</svg>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeView(sb *strings.Builder, v scene.View) {
	sb.WriteString("<g>\n")
	for _, l := range v.Lines {
		sb.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="black"/>
`, num(l.X1), num(l.Y1), num(l.X2), num(l.Y2)))
	}
	for _, p := range v.Points {
		lp := p.LabelPos()
		sb.WriteString(fmt.Sprintf(`<text x="%s" y="%s">%d</text>
<circle cx="%s" cy="%s" r="%s"/>
`, num(lp.X), num(lp.Y), p.Label, num(p.X), num(p.Y), num(scene.PointRadius)))
	}
	sb.WriteString("</g>\n")
}

func num(f float64) string {
	return fmt.Sprintf("%.3f", f)
}
