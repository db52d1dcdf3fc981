package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/cubespin/internal/config"
	"github.com/san-kum/cubespin/internal/engine"
	"github.com/san-kum/cubespin/internal/scene"
	"github.com/san-kum/cubespin/internal/viz"
)

const (
	// sampleEvery thins the velocity history so the chart spans a few seconds.
	sampleEvery  = 5
	pressFlashes = 20
)

// fpsSpring eases the fps readout toward the measured rate.
var fpsSpring = harmonica.NewSpring(harmonica.FPS(int(engine.FrameRate)), 4.0, 1.0)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(engine.TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	eng      *engine.Engine
	viewport scene.Viewport
	cols     int
	rows     int
	history  int

	theme     viz.Theme
	styles    viz.Styles
	labels    bool
	paused    bool
	showChart bool

	speeds []float64
	axes   [3][]float64

	pressed    engine.Command
	flashTicks int

	lastFrame time.Time
	fps       float64
	fpsVel    float64

	width  int
	height int
}

// newModel builds the host around a fresh engine configured by cfg.
func newModel(cfg *config.Config) model {
	theme := viz.GetTheme(cfg.Theme)
	return model{
		eng:       cfg.NewEngine(),
		viewport:  cfg.ViewportSize(),
		cols:      cfg.Canvas.Cols,
		rows:      cfg.Canvas.Rows,
		history:   cfg.History,
		theme:     theme,
		styles:    viz.NewStyles(theme),
		labels:    cfg.Labels,
		showChart: true,
		speeds:    make([]float64, 0, cfg.History),
		width:     120,
		height:    40,
	}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if cmd, ok := m.buttonAt(msg.X, msg.Y); ok {
				m.press(cmd)
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.flashTicks > 0 {
			m.flashTicks--
		}
		if !m.paused {
			now := time.Time(msg)
			if !m.lastFrame.IsZero() {
				if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
					m.fps, m.fpsVel = fpsSpring.Update(m.fps, m.fpsVel, 1.0/dt)
				}
			}
			m.lastFrame = now
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
		m.lastFrame = time.Time{}
		log.Printf("paused=%v at frame %d", m.paused, m.eng.Frame())
		return m, nil
	case ".":
		if m.paused {
			m.advance()
		}
		return m, nil
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.styles = viz.NewStyles(m.theme)
		return m, nil
	case "g":
		m.showChart = !m.showChart
		return m, nil
	case "l":
		m.labels = !m.labels
		return m, nil
	}

	cmd, err := engine.ParseCommand(msg.String())
	if err != nil || cmd == engine.CmdTick {
		return m, nil
	}
	m.press(cmd)
	return m, nil
}

func (m *model) press(cmd engine.Command) {
	m.eng.Apply(cmd)
	m.pressed = cmd
	m.flashTicks = pressFlashes
	log.Printf("%s: frame=%d velocity=%+v replicas=%d", cmd, m.eng.Frame(), m.eng.Controller().Velocity(), m.eng.Replicas())
}

// advance runs one engine tick and samples the velocity for the chart.
func (m *model) advance() {
	m.eng.Apply(engine.CmdTick)
	if m.eng.Frame()%sampleEvery != 0 {
		return
	}
	v := m.eng.Controller().Velocity()
	m.speeds = appendCapped(m.speeds, v.Norm(), m.history)
	m.axes[0] = appendCapped(m.axes[0], v.XA, m.history)
	m.axes[1] = appendCapped(m.axes[1], v.YA, m.history)
	m.axes[2] = appendCapped(m.axes[2], v.ZA, m.history)
}

func appendCapped(s []float64, v float64, limit int) []float64 {
	s = append(s, v)
	if len(s) > limit {
		s = s[len(s)-limit:]
	}
	return s
}

// Run starts the interactive host and blocks until the user quits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
