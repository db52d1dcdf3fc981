package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubespin/internal/engine"
	"github.com/san-kum/cubespin/internal/scene"
)

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2800|0x80 {
		t.Errorf("expected dot 8 set, got %U", c.Grid[0][1])
	}

	c.Set(-1, 0)
	c.Set(100, 100)

	c.Text(0, 0, "7")
	if !strings.HasPrefix(c.String(), "7") {
		t.Errorf("overlay should win over dots: %q", c.String())
	}

	c.Clear()
	if c.Grid[0][0] != 0x2800 || c.Overlay[0][0] != 0 {
		t.Error("clear left marks behind")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []rune
	}{
		{"left to right", 0, 0, 7, 0, []rune{0x2809, 0x2809, 0x2809, 0x2809}},
		{"right to left", 7, 0, 0, 0, []rune{0x2809, 0x2809, 0x2809, 0x2809}},
		{"bottom to top", 0, 3, 0, 0, []rune{0x2847, 0x2800, 0x2800, 0x2800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 1)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1)
			for i, want := range tt.want {
				if c.Grid[0][i] != want {
					t.Errorf("cell %d = %U, want %U", i, c.Grid[0][i], want)
				}
			}
		})
	}
}

func TestCanvas_TextClipped(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Text(2, 0, "123")
	if c.Overlay[0][1] != '1' {
		t.Errorf("expected '1' in second cell, got %q", c.Overlay[0][1])
	}
	c.Text(0, 8, "x")
}

func TestCanvas_Scale(t *testing.T) {
	c := NewCanvas(100, 25)
	s := c.Scale(scene.DefaultViewport)
	// width: 200/1000 = 0.2, height: 100/475 = 0.21
	if s != 0.2 {
		t.Errorf("expected scale 0.2, got %v", s)
	}
	if NewCanvas(10, 10).Scale(scene.Viewport{}) != 0 {
		t.Error("empty viewport should scale to zero")
	}
}

func TestCanvas_DrawView(t *testing.T) {
	e := engine.New()
	l := scene.Build(e.Snapshot(), scene.DefaultViewport)

	c := NewCanvas(100, 25)
	c.DrawView(l.Primary(), l.Viewport, true)

	out := c.String()
	// front and back corners coincide under the z-drop; the later label wins
	for _, d := range []string{"4", "5", "6", "7"} {
		if !strings.Contains(out, d) {
			t.Errorf("expected label %s in output:\n%s", d, out)
		}
	}

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no wire dots drawn")
	}

	c.Clear()
	c.DrawView(l.Primary(), l.Viewport, false)
	if strings.ContainsAny(c.String(), "01234567") {
		t.Error("labels drawn while disabled")
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0)
	c.Text(2, 0, "5")
	plain := lipgloss.NewStyle()
	out := c.Render(plain, plain)
	if out != c.String() {
		t.Errorf("unstyled render %q differs from String %q", out, c.String())
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "minimal" {
		t.Error("unknown theme should fall back to minimal")
	}
	if !HasTheme("ocean") || HasTheme("nope") {
		t.Error("HasTheme mismatch")
	}
	names := ThemeNames()
	last := names[len(names)-1]
	if NextTheme(last).Name != names[0] {
		t.Error("NextTheme should wrap")
	}
	if NextTheme(names[0]).Name != names[1] {
		t.Error("NextTheme should advance")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1, -1, 0.5}, 10); got != "▁██▄" {
		t.Errorf("Sparkline = %q", got)
	}
	if got := Sparkline([]float64{1, 2, 3}, 2); len([]rune(got)) != 2 {
		t.Errorf("Sparkline should keep the latest values, got %q", got)
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty Sparkline = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	plain := lipgloss.NewStyle()
	if got := Separator(12, plain); got != "─── ◆ ───" {
		t.Errorf("Separator(12) = %q", got)
	}
	if got := Separator(4, plain); got != "────" {
		t.Errorf("Separator(4) = %q", got)
	}
}
