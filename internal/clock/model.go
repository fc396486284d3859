package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// TickMsg refreshes a running Model.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Model is the Bubble Tea clock display. Start schedules the first tick;
// Stop invalidates every tick already in flight, so nothing keeps
// re-arming after the view is gone.
type Model struct {
	Interval time.Duration

	id      int
	tag     int
	running bool
	now     time.Time
}

func New() Model {
	return Model{Interval: time.Second, id: nextID()}
}

func (m Model) ID() int        { return m.id }
func (m Model) Running() bool  { return m.running }
func (m Model) Now() time.Time { return m.now }

// Start marks the clock running and returns the first tick command.
func (m *Model) Start() tea.Cmd {
	m.running = true
	m.tag++
	m.now = time.Now()
	return m.tick()
}

// Stop cancels the pending tick.
func (m *Model) Stop() {
	m.running = false
	m.tag++
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || t.ID != m.id || t.tag != m.tag || !m.running {
		return m, nil
	}
	m.now = t.Time
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}

// Date and Time render the last observed instant.
func (m Model) Date() string { return FormatDate(m.now) }
func (m Model) Time() string { return FormatTime(m.now) }

func (m Model) View() string {
	if m.now.IsZero() {
		return ""
	}
	return m.Date() + "  " + m.Time()
}
