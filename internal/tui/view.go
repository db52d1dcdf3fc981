package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cubespin/internal/engine"
	"github.com/san-kum/cubespin/internal/scene"
	"github.com/san-kum/cubespin/internal/viz"
)

const (
	sparkWidth  = 24
	chartHeight = 6
	chartWidth  = 30
	panelWidth  = 36
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(viz.GradientText("CUBE ROTATION", m.theme.Primary, m.theme.Accent))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("click a button or press its key"))
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n")

	snap := m.eng.Snapshot()
	layout := scene.Build(snap, m.viewport)

	cube := m.renderView(layout.Primary())
	panel := m.renderPanel(snap)
	if lipgloss.Width(cube)+lipgloss.Width(panel) > m.width {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cube, panel))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cube, panel))
	}
	b.WriteString("\n")

	// Replicas share the primary's state, so one render serves them all.
	for range layout.Replicas() {
		b.WriteString(cube)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("space pause · . step · t theme · g chart · l labels · q quit"))
	return b.String()
}

func (m model) renderView(v scene.View) string {
	c := viz.NewCanvas(m.cols, m.rows)
	c.DrawView(v, m.viewport, m.labels)
	return m.styles.Surface.Render(c.Render(m.styles.Wire, m.styles.Vertex))
}

func (m model) renderPanel(snap engine.Snapshot) string {
	row := func(label, value string) string {
		return m.styles.Label.Render(label) + m.styles.Value.Render(value)
	}

	direction := "forward"
	if !snap.Forward {
		direction = "reverse"
	}
	status := "running"
	if m.paused {
		status = "paused"
	}

	lines := []string{
		m.styles.Title.Render("STATE"),
		row("status", status),
		row("frame", fmt.Sprintf("%d", snap.Frame)),
		row("time", fmt.Sprintf("%.2fs", float64(snap.Frame)/engine.FrameRate)),
		row("ωx", fmt.Sprintf("%+.5f", snap.Velocity.XA)),
		row("ωy", fmt.Sprintf("%+.5f", snap.Velocity.YA)),
		row("ωz", fmt.Sprintf("%+.5f", snap.Velocity.ZA)),
		row("|ω|", fmt.Sprintf("%.5f rad/s", snap.Velocity.Norm())),
		row("direction", direction),
		row("multiplier", fmt.Sprintf("%g", snap.Multiplier)),
		row("cubes", fmt.Sprintf("%d", snap.Replicas+1)),
		row("fps", fmt.Sprintf("%.0f", m.fps)),
		viz.Separator(panelWidth, m.styles.Chart),
		row("x", m.styles.Chart.Render(viz.Sparkline(m.axes[0], sparkWidth))),
		row("y", m.styles.Chart.Render(viz.Sparkline(m.axes[1], sparkWidth))),
		row("z", m.styles.Chart.Render(viz.Sparkline(m.axes[2], sparkWidth))),
	}

	if m.showChart && len(m.speeds) > 1 {
		plot := asciigraph.Plot(m.speeds,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption("|ω| rad/s"))
		lines = append(lines, "", m.styles.Chart.Render(plot))
	}

	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}
