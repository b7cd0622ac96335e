package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/apogee/internal/forces"
	"github.com/san-kum/apogee/internal/ivp"
)

const (
	liveWidth       = 70
	liveHeight      = 12
	historyCapacity = 600
	stepsPerTick    = 25
)

type TickMsg time.Time

// Live is a Bubble Tea model that steps the ascent in real time and plots
// the recent velocity history. Displacement is accumulated by trapezoid
// so the live height tracks the eventual apogee estimate.
type Live struct {
	model   forces.Model
	integ   ivp.Integrator
	v, t    float64
	dt      float64
	height  float64
	history []float64
	running bool
	done    bool
}

func NewLive(model forces.Model, integ ivp.Integrator, dt float64) Live {
	return Live{
		model:   model,
		integ:   integ,
		v:       model.Params().V0,
		dt:      dt,
		history: make([]float64, 0, historyCapacity),
		running: true,
	}
}

func (m Live) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && !m.done {
			for i := 0; i < stepsPerTick && !m.done; i++ {
				next := m.integ.Step(m.model, m.v, m.t, m.dt)
				m.height += 0.5 * m.dt * (m.v + next)
				m.v = next
				m.t += m.dt
				if m.v <= 0 {
					m.done = true
				}
			}
			m.history = append(m.history, m.v)
			if len(m.history) > historyCapacity {
				m.history = m.history[len(m.history)-historyCapacity:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("live ascent: %s", m.model.Name())))
	b.WriteString("\n\n")

	if len(m.history) > 1 {
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(liveHeight),
			asciigraph.Width(liveWidth),
		))
		b.WriteString("\n\n")
	}

	row(&b, "t", fmt.Sprintf("%.3f s", m.t))
	row(&b, "velocity", fmt.Sprintf("%.2f m/s", m.v))
	row(&b, "height", fmt.Sprintf("%.2f m", m.height))

	switch {
	case m.done:
		b.WriteString(diffStyle.Render(fmt.Sprintf("apogee reached: %.2f m", m.height)))
		b.WriteString("\n")
	case !m.running:
		b.WriteString(valueStyle.Render("paused"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("space pause, q quit"))
	b.WriteString("\n")

	return b.String()
}
