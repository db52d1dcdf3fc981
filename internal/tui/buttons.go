package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubespin/internal/engine"
)

const (
	// Title, subtitle and a blank line sit above the buttons.
	buttonTop    = 3
	buttonHeight = 3
	buttonGap    = " "
)

var buttonRows = [][]engine.Command{
	{engine.CmdRotateX, engine.CmdRotateY, engine.CmdRotateZ, engine.CmdReverse},
	{engine.CmdVelocityUp, engine.CmdVelocityDown, engine.CmdAddCube, engine.CmdRemoveCube},
}

func (m model) renderButton(cmd engine.Command) string {
	style := m.styles.Button
	if m.flashTicks > 0 && m.pressed == cmd {
		style = m.styles.Pressed
	}
	return style.Render(cmd.Label() + " " + m.styles.ButtonKey.Render(cmd.Key()))
}

func (m model) renderButtons() string {
	rows := make([]string, 0, len(buttonRows))
	for _, row := range buttonRows {
		cells := make([]string, 0, len(row)*2)
		for i, cmd := range row {
			if i > 0 {
				cells = append(cells, buttonGap)
			}
			cells = append(cells, m.renderButton(cmd))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// buttonAt maps a screen cell to the button drawn there.
func (m model) buttonAt(x, y int) (engine.Command, bool) {
	if y < buttonTop {
		return 0, false
	}
	r := (y - buttonTop) / buttonHeight
	if r >= len(buttonRows) {
		return 0, false
	}
	left := 0
	for _, cmd := range buttonRows[r] {
		w := lipgloss.Width(m.renderButton(cmd))
		if x >= left && x < left+w {
			return cmd, true
		}
		left += w + lipgloss.Width(buttonGap)
	}
	return 0, false
}
