package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tasklist/internal/tasks"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// listItem adapts a view entry to bubbles/list.Item.
type listItem struct {
	entry tasks.Entry
}

func (i listItem) Title() string       { return i.entry.Task.Message }
func (i listItem) Description() string { return "due " + i.entry.Task.Deadline }
func (i listItem) FilterValue() string { return i.entry.Task.Message }

// itemDelegate renders one task per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	task := it.entry.Task

	text := task.Message
	if task.IsComplete {
		text = t.Done.Render(text)
	}
	meta := t.Muted.Render(fmt.Sprintf("due %s · added %s", task.Deadline, task.CreatedAt))

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, ui.Checkbox(task.IsComplete), text, meta)
}
