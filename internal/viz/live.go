package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/swimz/internal/trajectory"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model replays a recorded swim sample by sample on a braille canvas.
type Model struct {
	result *trajectory.Result
	canvas *Canvas
	idx    int
	paused bool
	fps    int

	xMin, xMax float64
	zMin, zMax float64
}

func NewModel(result *trajectory.Result, fps int) *Model {
	m := &Model{
		result: result,
		canvas: NewCanvas(canvasWidth, canvasHeight),
		fps:    fps,
	}
	m.computeBounds()
	return m
}

func (m *Model) computeBounds() {
	traj := m.result.Traj
	if traj == nil || traj.Len() == 0 {
		m.xMin, m.xMax, m.zMin, m.zMax = -1, 1, 0, 1
		return
	}

	m.zMin, m.zMax = traj.Zs[0], traj.Zs[0]
	m.xMin, m.xMax = traj.States[0][0], traj.States[0][0]
	for i := range traj.Zs {
		z := traj.Zs[i]
		x := traj.States[i][0]
		if z < m.zMin {
			m.zMin = z
		}
		if z > m.zMax {
			m.zMax = z
		}
		if x < m.xMin {
			m.xMin = x
		}
		if x > m.xMax {
			m.xMax = x
		}
	}
	// pad so a flat track is still visible
	if m.xMax-m.xMin < 1e-9 {
		m.xMin--
		m.xMax++
	}
	if m.zMax-m.zMin < 1e-9 {
		m.zMin--
		m.zMax++
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.idx = 0
			m.canvas.Clear()
		}
	case TickMsg:
		if !m.paused && m.idx < m.result.Traj.Len()-1 {
			m.idx++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) View() string {
	traj := m.result.Traj
	m.canvas.Clear()

	zs := traj.Zs[:m.idx+1]
	xs := make([]float64, len(zs))
	for i := range zs {
		xs[i] = traj.States[i][0]
	}
	m.canvas.DrawPath(zs, xs, m.zMin, m.zMax, m.xMin, m.xMax)

	z := traj.Zs[m.idx]
	st := traj.States[m.idx]
	h := traj.Hs[m.idx]

	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("z"), valueStyle.Render(fmt.Sprintf("%10.3f", z)),
		labelStyle.Render("x, y"), valueStyle.Render(fmt.Sprintf("%10.3f %10.3f", st[0], st[1])),
		labelStyle.Render("tx, ty"), valueStyle.Render(fmt.Sprintf("%10.5f %10.5f", st[2], st[3])),
		labelStyle.Render("h"), valueStyle.Render(fmt.Sprintf("%10.4f", h)),
	)

	return headerStyle.Render("swimz live  (x vs z)") + "\n" +
		canvasStyle.Render(m.canvas.String()) + "\n" +
		stats + "\n" +
		helpStyle.Render("space pause · r restart · q quit")
}

// Run replays a swim result until the user quits.
func Run(result *trajectory.Result, fps int) error {
	if result.Traj == nil || result.Traj.Len() == 0 {
		return fmt.Errorf("viz: result has no trajectory to display")
	}
	if fps <= 0 {
		fps = 30
	}
	p := tea.NewProgram(NewModel(result, fps))
	_, err := p.Run()
	return err
}
