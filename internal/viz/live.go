package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pairsim/internal/sim"
)

const (
	canvasWidth     = 40
	canvasHeight    = 18
	historyCapacity = 600
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// LiveModel advances a simulator a few steps per frame and shows the box,
// thermo history and the latest sample.
type LiveModel struct {
	sim           *sim.Simulator
	title         string
	dt            float64
	totalSteps    int
	stepsPerFrame int
	canvas        *Canvas
	camera        *Camera
	running       bool
	done          bool
	err           error
	last          sim.Thermo
	etotal        []float64
	temp          []float64
	showHelp      bool
}

// NewLiveModel shows totalSteps steps of s at stepsPerFrame per frame.
func NewLiveModel(s *sim.Simulator, title string, dt float64, totalSteps, stepsPerFrame int) LiveModel {
	return LiveModel{
		sim:           s,
		title:         title,
		dt:            dt,
		totalSteps:    totalSteps,
		stepsPerFrame: max(stepsPerFrame, 1),
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		camera:        NewCamera(),
		running:       true,
		etotal:        make([]float64, 0, historyCapacity),
		temp:          make([]float64, 0, historyCapacity),
	}
}

func (m LiveModel) Init() tea.Cmd { return tick() }

// Err is the error that stopped the run, if any.
func (m LiveModel) Err() error { return m.err }

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			NextTheme()
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

// advance runs one frame worth of steps and records the final sample.
func (m *LiveModel) advance() {
	n := min(m.stepsPerFrame, m.totalSteps-m.sim.Step())
	if n <= 0 {
		m.done = true
		return
	}
	cfg := sim.Config{Steps: n, Dt: m.dt, ThermoEvery: n, ValidateState: true}
	err := m.sim.RunWithCallback(context.Background(), cfg, func(th sim.Thermo) bool {
		m.last = th
		return true
	})
	if err != nil {
		m.err = err
		m.done = true
		return
	}
	m.etotal = pushCapped(m.etotal, m.last.ETotal)
	m.temp = pushCapped(m.temp, m.last.Temp)
	if m.sim.Step() >= m.totalSteps {
		m.done = true
	}
}

func pushCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[1:]
	}
	return s
}

func (m LiveModel) status() string {
	switch {
	case m.err != nil:
		return StatusError.Render("ERROR")
	case m.done:
		return StatusDone.Render("DONE")
	case !m.running:
		return StatusPaused.Render("PAUSED")
	}
	return StatusRunning.Render("RUNNING")
}

func (m LiveModel) View() string {
	th := CurrentTheme
	m.canvas.Clear()
	DrawSystem(m.canvas, m.camera, m.sim.System())

	var s strings.Builder
	s.WriteString(th.title().Render(strings.ToUpper(m.title)) + "  " + m.status() + "\n\n")

	progress := float64(m.sim.Step()) / float64(max(m.totalSteps, 1))
	s.WriteString(ProgressBar(progress, 24) + fmt.Sprintf(" %d/%d\n\n", m.sim.Step(), m.totalSteps))

	row := func(label, value string) {
		s.WriteString(th.label().Render(label) + th.value().Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.4f", m.last.Time))
	row("Temp", fmt.Sprintf("%.5f", m.last.Temp))
	row("PE", fmt.Sprintf("%.5f", m.last.PE))
	row("E_vdwl", fmt.Sprintf("%.5f", m.last.EVdwl))
	row("E_coul", fmt.Sprintf("%.5f", m.last.ECoul))
	row("E_total", fmt.Sprintf("%.5f", m.last.ETotal))
	row("Press", fmt.Sprintf("%.5f", m.last.Press))
	row("Backend", m.sim.Field().Engine().Backend().Name())
	if m.err != nil {
		s.WriteString("\n" + StatusError.Render(m.err.Error()) + "\n")
	}

	if len(m.etotal) > 1 {
		chart := asciigraph.Plot(m.etotal, asciigraph.Height(5), asciigraph.Width(36), asciigraph.Caption("E_total"))
		s.WriteString("\n" + chart + "\n")
		s.WriteString(th.label().Render("Temp") + Sparkline(m.temp, 36) + "\n")
	}
	s.WriteString("\n" + KeyHint.Render("SP:Pause T:Theme X/Y:Rotate +/-:Zoom ?:Help Q:Quit"))

	canvasView := th.panel().Render(m.canvas.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, "  ", s.String())
	if m.showHelp {
		return liveHelp + "\n" + body
	}
	return body
}

const liveHelp = `Space  pause or resume
T      cycle themes
X / Y  rotate the box about x or y (shift reverses)
+ / -  zoom
Q      quit`
