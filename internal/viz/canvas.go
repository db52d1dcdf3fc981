package viz

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/cubespin/internal/scene"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells with a text overlay for labels. Overlay
// runes win over dots when both occupy a cell.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Overlay       [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		Overlay: make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Overlay[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights the dot at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Overlay[i][j] = 0
		}
	}
}

// Text writes s into the overlay starting at sub-pixel (x, y).
func (c *Canvas) Text(x, y int, s string) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		c.Overlay[row][col] = r
		col++
	}
}

// Dot marks a small plus shape centered on (x, y).
func (c *Canvas) Dot(x, y int) {
	c.Set(x, y)
	c.Set(x-1, y)
	c.Set(x+1, y)
	c.Set(x, y-1)
	c.Set(x, y+1)
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Scale is the sub-pixels per drawing unit that fits vp inside the canvas.
// Braille dots are close to square, so one factor serves both axes.
func (c *Canvas) Scale(vp scene.Viewport) float64 {
	if vp.Width <= 0 || vp.Height <= 0 {
		return 0
	}
	return math.Min(float64(c.Width*2)/vp.Width, float64(c.Height*4)/vp.Height)
}

// DrawView rasterizes a view laid out on vp.
func (c *Canvas) DrawView(v scene.View, vp scene.Viewport, labels bool) {
	s := c.Scale(vp)
	px := func(f float64) int { return int(math.Round(f * s)) }
	for _, l := range v.Lines {
		c.DrawLine(px(l.X1), px(l.Y1), px(l.X2), px(l.Y2))
	}
	for _, p := range v.Points {
		c.Dot(px(p.X), px(p.Y))
	}
	if !labels {
		return
	}
	for _, p := range v.Points {
		lp := p.LabelPos()
		c.Text(px(lp.X), px(lp.Y), strconv.Itoa(p.Label))
	}
}

func (c *Canvas) cell(row, col int) (rune, bool) {
	if r := c.Overlay[row][col]; r != 0 {
		return r, true
	}
	return c.Grid[row][col], false
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			r, _ := c.cell(row, col)
			b.WriteRune(r)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Render is String with dots and labels styled separately. Runs of the same
// kind share one style call.
func (c *Canvas) Render(dots, text lipgloss.Style) string {
	var b, run strings.Builder
	for row := range c.Grid {
		runText := false
		for col := range c.Grid[row] {
			r, isText := c.cell(row, col)
			if col > 0 && isText != runText {
				b.WriteString(styleFor(runText, dots, text).Render(run.String()))
				run.Reset()
			}
			runText = isText
			run.WriteRune(r)
		}
		b.WriteString(styleFor(runText, dots, text).Render(run.String()))
		run.Reset()
		b.WriteString("\n")
	}
	return b.String()
}

func styleFor(isText bool, dots, text lipgloss.Style) lipgloss.Style {
	if isText {
		return text
	}
	return dots
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
