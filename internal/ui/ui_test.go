package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░░░░░░   0%", ProgressBar(0, 0, 10))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 1), "width clamps to 5")
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	assert.Equal(t, "neon", SetTheme("NEON").Name)
	assert.Equal(t, "mono", SetTheme("mono").Name)
	assert.Equal(t, "[x]", Current().BoxChecked)
	assert.Equal(t, "classic", SetTheme("whatever").Name)
}

func TestPanel_ContainsLines(t *testing.T) {
	defer SetTheme("classic")
	SetTheme("mono")

	out := Panel([]string{"one", "two"})
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.True(t, strings.HasPrefix(out, "┌"))
}

func TestOKFail(t *testing.T) {
	defer SetTheme("classic")
	SetTheme("mono")

	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "nope")
	assert.Equal(t, "x saved\n✖ nope\n", buf.String())
}

func TestCheckbox(t *testing.T) {
	defer SetTheme("classic")
	SetTheme("mono")
	assert.Equal(t, "[x]", Checkbox(true))
	assert.Equal(t, "[ ]", Checkbox(false))
}
