package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasklist/internal/app"
	"github.com/idilsaglam/tasklist/internal/clock"
	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/profile"
	"github.com/idilsaglam/tasklist/internal/tasks"
	"github.com/idilsaglam/tasklist/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeProfile
	modeConfirmClear
)

// Model is the Bubble Tea program state. Task and profile state live in
// the app container; the list is rebuilt from it after every mutation.
type Model struct {
	app   *app.App
	keys  keyMap
	list  list.Model
	clock clock.Model

	mode    mode
	add     form
	prof    form
	confirm confirmFocus
	status  string

	width, height int
	startCmd      tea.Cmd
}

// New builds the model and, when the profile is incomplete, opens the
// profile form straight away.
func New(a *app.App) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	t := ui.Current()
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	m := Model{
		app:   a,
		keys:  newKeyMap(),
		list:  l,
		clock: clock.New(),
		add:   newAddForm(),
		prof:  newProfileForm(),
	}
	m.list.AdditionalShortHelpKeys = m.keys.short
	m.list.AdditionalFullHelpKeys = m.keys.full
	m.setSize(80, 24)
	m.refresh(-1)

	cmds := []tea.Cmd{m.clock.Start()}
	if a.Profile.NeedsPrompt() {
		cmds = append(cmds, m.openProfile())
	}
	m.startCmd = tea.Batch(cmds...)
	return m
}

func (m Model) Init() tea.Cmd { return m.startCmd }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case clock.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.clock.Stop()
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeProfile:
		return m.updateProfile(msg)
	case modeConfirmClear:
		return m.updateConfirm(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.status = ""

	switch {
	case key.Matches(km, m.keys.Quit):
		if km.String() == "esc" && m.list.FilterState() != list.Unfiltered {
			break
		}
		m.clock.Stop()
		return m, tea.Quit
	case key.Matches(km, m.keys.Add):
		m.mode = modeAdd
		cmd := m.add.open()
		return m, cmd
	case key.Matches(km, m.keys.Profile):
		cmd := m.openProfile()
		return m, cmd
	case key.Matches(km, m.keys.Clear):
		if m.app.Tasks.Len() == 0 {
			return m, nil
		}
		m.mode = modeConfirmClear
		m.confirm = confirmFocusCancel
		return m, nil
	case key.Matches(km, m.keys.Toggle):
		if pos, ok := m.selected(); ok {
			m.apply(m.app.Tasks.ToggleComplete(pos), pos)
		}
		return m, nil
	case key.Matches(km, m.keys.Delete):
		if pos, ok := m.selected(); ok {
			m.apply(m.app.Tasks.Delete(pos), -1)
		}
		return m, nil
	case key.Matches(km, m.keys.MoveUp):
		if pos, ok := m.selected(); ok {
			m.move(pos, pos-1, m.app.Tasks.MoveUp)
		}
		return m, nil
	case key.Matches(km, m.keys.MoveDown):
		if pos, ok := m.selected(); ok {
			m.move(pos, pos+1, m.app.Tasks.MoveDown)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.add.close()
			m.mode = modeList
			return m, nil
		case "tab", "down":
			cmd := m.add.next()
			return m, cmd
		case "shift+tab", "up":
			cmd := m.add.prev()
			return m, cmd
		case "enter":
			err := m.app.Tasks.Add(m.add.value(0), m.add.value(1))
			switch {
			case errors.Is(err, tasks.ErrBlank):
				// Nothing to add yet; keep the form as it is.
				return m, nil
			case errors.Is(err, tasks.ErrInvalidDeadline):
				m.add.err = "Deadline must be YYYY-MM-DD"
				return m, nil
			case err != nil:
				m.add.err = err.Error()
				m.app.Logger.Error("add task", "err", err)
				return m, nil
			}
			m.add.close()
			m.mode = modeList
			m.refresh(m.app.Tasks.Len() - 1)
			return m, nil
		}
	}
	cmd := m.add.update(msg)
	return m, cmd
}

func (m *Model) openProfile() tea.Cmd {
	p := m.app.Profile.Get()
	m.mode = modeProfile
	return m.prof.open(p.Username, p.Job)
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.prof.close()
			m.mode = modeList
			return m, nil
		case "tab", "down":
			cmd := m.prof.next()
			return m, cmd
		case "shift+tab", "up":
			cmd := m.prof.prev()
			return m, cmd
		case "enter":
			err := m.app.Profile.Edit(m.prof.value(0), m.prof.value(1))
			switch {
			case errors.Is(err, profile.ErrIncomplete):
				m.prof.err = "Both fields are required"
				return m, nil
			case err != nil:
				m.prof.err = err.Error()
				m.app.Logger.Error("save profile", "err", err)
				return m, nil
			}
			m.prof.close()
			m.mode = modeList
			m.status = "profile saved"
			return m, nil
		}
	}
	cmd := m.prof.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.confirm == confirmFocusConfirm {
			m.confirm = confirmFocusCancel
		} else {
			m.confirm = confirmFocusConfirm
		}
	case "y":
		return m.finishConfirm(true)
	case "n", "esc", "ctrl+g":
		return m.finishConfirm(false)
	case "enter":
		return m.finishConfirm(m.confirm == confirmFocusConfirm)
	}
	return m, nil
}

func (m Model) finishConfirm(ok bool) (tea.Model, tea.Cmd) {
	m.mode = modeList
	if !ok {
		return m, nil
	}
	n := m.app.Tasks.Len()
	if err := m.app.Tasks.DeleteAll(); err != nil {
		m.status = err.Error()
		m.app.Logger.Error("delete all", "err", err)
		return m, nil
	}
	m.status = fmt.Sprintf("deleted %d tasks", n)
	m.refresh(-1)
	return m, nil
}

// apply refreshes the list after a mutation. Validation errors are dropped
// silently; storage failures surface in the status line.
func (m *Model) apply(err error, selectPos int) {
	switch {
	case err == nil:
	case errors.Is(err, tasks.ErrBoundary), errors.Is(err, tasks.ErrOutOfRange):
		return
	default:
		m.status = err.Error()
		m.app.Logger.Error("update tasks", "err", err)
		return
	}
	m.refresh(selectPos)
}

// move swaps the task at pos with its stored neighbour. A neighbour from the
// other section leaves the list looking unchanged, so say what happened.
func (m *Model) move(pos, neighbour int, fn func(int) error) {
	cur, _ := m.app.Tasks.Get(pos)
	other, ok := m.app.Tasks.Get(neighbour)
	err := fn(pos)
	m.apply(err, neighbour)
	if err != nil || !ok || cur.IsComplete == other.IsComplete {
		return
	}
	section := "pending"
	if other.IsComplete {
		section = "completed"
	}
	m.status = fmt.Sprintf("swapped with %s task %q", section, other.Message)
}

// selected returns the stored position of the highlighted task.
func (m Model) selected() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.entry.Position, true
}

// refresh rebuilds the list as pending tasks followed by completed ones and
// highlights the task now at selectPos (or keeps the cursor where it was).
func (m *Model) refresh(selectPos int) {
	pending, completed := tasks.Partition(m.app.Tasks.Tasks())
	items := make([]list.Item, 0, len(pending)+len(completed))
	target := -1
	for _, e := range append(pending, completed...) {
		if e.Position == selectPos {
			target = len(items)
		}
		items = append(items, listItem{entry: e})
	}
	cur := m.list.Index()
	m.list.SetItems(items)
	m.list.Title = m.title(len(completed), len(pending))

	switch {
	case target >= 0:
		m.list.Select(target)
	case cur >= len(items) && len(items) > 0:
		m.list.Select(len(items) - 1)
	case len(items) > 0:
		m.list.Select(cur)
	}
}

func (m Model) title(done, pending int) string {
	t := ui.Current()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		"To Do List",
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)
}

func (m *Model) setSize(w, h int) {
	m.width, m.height = w, h
	m.list.SetSize(max(w-4, 20), max(h-m.chromeHeight(), 3))
}

// chromeHeight is the space taken by the header, status line and panel border.
func (m Model) chromeHeight() int { return 7 }

func (m Model) View() string {
	t := ui.Current()

	parts := []string{m.header(), m.list.View()}
	switch m.mode {
	case modeAdd:
		parts = append(parts, m.formBox("Add task", m.add))
	case modeProfile:
		parts = append(parts, m.formBox("Edit profile", m.prof))
	case modeConfirmClear:
		body := fmt.Sprintf("Delete all %d tasks? This cannot be undone.", m.app.Tasks.Len())
		parts = append(parts, renderConfirm("Delete all", body, "Delete", "Cancel", m.confirm))
	}
	if m.status != "" {
		parts = append(parts, t.Muted.Render(m.status))
	}
	return ui.Panel([]string{lipgloss.JoinVertical(lipgloss.Left, parts...)})
}

func (m Model) header() string {
	t := ui.Current()
	left := t.Title.Render(profileLine(m.app.Profile.Get()))
	right := t.Accent.Render(m.clock.View())
	gap := max(m.width-6-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func profileLine(p model.Profile) string {
	switch {
	case p.Complete():
		return p.Username + " · " + p.Job
	case p.Username != "":
		return p.Username
	}
	return "no profile (p to edit)"
}

func (m Model) formBox(title string, f form) string {
	t := ui.Current()
	head := t.Title.Render(title)
	if f.err != "" {
		head += " " + t.Error.Render(f.err)
	}
	help := t.Help.Render("tab: next field   enter: save   esc: cancel")
	return ui.Panel([]string{head, f.view(), help})
}
