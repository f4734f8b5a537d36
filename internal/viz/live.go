// Package viz renders a live terminal view of an orbit using Bubble Tea
// and a braille canvas.
package viz

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitlab/internal/nbody"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/sim"
)

const (
	canvasWidth  = 70
	canvasHeight = 22
	trailCap     = 2000
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the system in real time and draws the trajectory. Space
// pauses, r resets to the initial conditions, q quits.
type Model struct {
	el       orbit.Elements
	sys      *nbody.System
	dt       float64
	substeps int
	extent   float64

	t       float64
	e0      float64
	running bool
	fps     int

	canvas *Canvas
	trail  []nbody.Vec3
}

// NewModel builds the live view for the given orbit at the given timestep
// fraction.
func NewModel(el orbit.Elements, dtFraction float64, fps int) Model {
	sys := orbit.NewBinary(el)
	period := el.Period()
	dt := dtFraction * period

	// Advance about a tenth of an orbit per wall-clock second.
	substeps := int(period / (dt * 10 * float64(fps)))
	if substeps < 1 {
		substeps = 1
	}

	return Model{
		el:       el,
		sys:      sys,
		dt:       dt,
		substeps: substeps,
		extent:   el.SemiMajor * (1 + el.Eccentricity) * 1.25,
		e0:       sys.Energy(),
		running:  true,
		fps:      fps,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		trail:    make([]nbody.Vec3, 0, trailCap),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sys = orbit.NewBinary(m.el)
			m.t = 0
			m.e0 = m.sys.Energy()
			m.trail = m.trail[:0]
		}
		return m, nil

	case TickMsg:
		if m.running {
			for i := 0; i < m.substeps; i++ {
				m.sys.Step(m.dt)
				m.t += m.dt
			}
			for i := range m.sys.Bodies {
				m.trail = append(m.trail, m.sys.Bodies[i].Pos)
			}
			if len(m.trail) > trailCap {
				m.trail = m.trail[len(m.trail)-trailCap:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	for _, p := range m.trail {
		m.plot(p)
	}
	for i := range m.sys.Bodies {
		m.plot(m.sys.Bodies[i].Pos)
	}

	drift := math.Abs((m.sys.Energy() - m.e0) / m.e0)

	mom := m.sys.Momentum().Norm()
	ang := m.sys.AngularMomentum().Norm()

	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("T"), valueStyle.Render(fmt.Sprintf("%.3f yr", m.t/sim.YearInUnits)),
		labelStyle.Render("dE/E"), valueStyle.Render(fmt.Sprintf("%.3e", drift)),
		labelStyle.Render("|P|"), valueStyle.Render(fmt.Sprintf("%.3e", mom)),
		labelStyle.Render("|L|"), valueStyle.Render(fmt.Sprintf("%.4f", ang)),
	)
	if !m.sys.IsValid() {
		stats += "\n" + warnStyle.Render("state is non-finite")
	}
	status := "running"
	if !m.running {
		status = "paused"
	}

	header := headerStyle.Render(fmt.Sprintf(
		"orbitlab live  m1=%.3g m2=%.3g a=%.3g e=%.3g  [%s]",
		m.el.M1, m.el.M2, m.el.SemiMajor, m.el.Eccentricity, status,
	))
	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		lipgloss.NewStyle().Padding(1, 2).Render(stats),
	)
	help := helpStyle.Render("space pause · r reset · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, view, help)
}

// plot maps an (x, y) position in AU onto canvas sub-pixels; z is
// ignored (the pericenter construction keeps motion in the xy plane).
func (m Model) plot(p nbody.Vec3) {
	px := int((p.X/m.extent + 1) / 2 * float64(canvasWidth*2))
	py := int((1 - p.Y/m.extent) / 2 * float64(canvasHeight*4))
	m.canvas.Set(px, py)
}
