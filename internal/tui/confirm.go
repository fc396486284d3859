package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tasklist/internal/ui"
)

type confirmFocus int

const (
	confirmFocusCancel confirmFocus = iota
	confirmFocusConfirm
)

func renderConfirm(title, body, confirmLabel, cancelLabel string, focus confirmFocus) string {
	t := ui.Current()
	btn := lipgloss.NewStyle().Padding(0, 1)
	active := btn.Inherit(t.Selected)

	confirm := btn.Render(confirmLabel)
	cancel := btn.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = active.Render(confirmLabel)
	} else {
		cancel = active.Render(cancelLabel)
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)

	content := strings.Join([]string{
		t.Title.Render(title),
		"",
		body,
		"",
		controls,
		"",
		t.Help.Render("tab: focus   enter: select   y/n   esc: cancel"),
	}, "\n")
	return ui.Panel([]string{content})
}
