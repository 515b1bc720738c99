package progress

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

type tickMsg time.Time

// Model is the bubbletea dashboard `vpsolve watch` renders in place of log
// lines.
// view.
type Model struct {
	tracker  *Tracker
	bar      progress.Model
	interval time.Duration
	done     bool
}

// NewModel returns a Model that polls tracker every interval.
func NewModel(tracker *Tracker, interval time.Duration) Model {
	return Model{
		tracker:  tracker,
		bar:      progress.New(progress.WithDefaultGradient()),
		interval: interval,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case tickMsg:
		s := m.tracker.Snapshot()
		if s.HandsTotal > 0 && s.HandsDone >= s.HandsTotal {
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	s := m.tracker.Snapshot()
	pct := 0.0
	if s.HandsTotal > 0 {
		pct = float64(s.HandsDone) / float64(s.HandsTotal)
	}

	title := titleStyle.Render(fmt.Sprintf("compiling %s", s.PaytableID))
	bar := m.bar.ViewAs(pct)
	status := statStyle.Render(fmt.Sprintf("%d/%d hands  best so far: %.5f", s.HandsDone, s.HandsTotal, s.BestSoFar))
	if m.done {
		status = doneStyle.Render(fmt.Sprintf("done — %d hands  best: %.5f", s.HandsDone, s.BestSoFar))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, bar, status)
}
