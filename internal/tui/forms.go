package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a small stack of text inputs with tab focus cycling.
type form struct {
	inputs []textinput.Model
	focus  int
	err    string
}

func newForm(fields ...field) form {
	f := form{}
	for _, fd := range fields {
		ti := textinput.New()
		ti.Prompt = fd.label
		ti.Placeholder = fd.placeholder
		ti.CharLimit = fd.limit
		f.inputs = append(f.inputs, ti)
	}
	return f
}

type field struct {
	label, placeholder string
	limit              int
}

// open resets the form with the given values and focuses the first input.
func (f *form) open(values ...string) tea.Cmd {
	f.err = ""
	f.focus = 0
	for i := range f.inputs {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		f.inputs[i].SetValue(v)
		f.inputs[i].CursorEnd()
		f.inputs[i].Blur()
	}
	return f.inputs[0].Focus()
}

func (f *form) close() {
	f.err = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
}

func (f *form) next() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *form) prev() tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *form) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view() string {
	lines := make([]string, 0, len(f.inputs))
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	return strings.Join(lines, "\n")
}

func newAddForm() form {
	return newForm(
		field{label: "task      > ", placeholder: "Enter a task...", limit: 200},
		field{label: "deadline  > ", placeholder: "YYYY-MM-DD", limit: 10},
	)
}

func newProfileForm() form {
	return newForm(
		field{label: "username  > ", placeholder: "Your name", limit: 80},
		field{label: "job       > ", placeholder: "Your job title", limit: 80},
	)
}
