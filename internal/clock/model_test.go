package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_TickUpdatesWhileRunning(t *testing.T) {
	m := New()
	cmd := m.Start()
	require.NotNil(t, cmd)
	assert.True(t, m.Running())

	at := time.Date(2024, time.May, 5, 9, 4, 5, 0, time.UTC)
	m, next := m.Update(TickMsg{ID: m.ID(), Time: at, tag: m.tag})
	assert.NotNil(t, next, "running clock re-arms")
	assert.Equal(t, "5 May 2024  09:04:05", m.View())
}

func TestModel_StopDropsInflightTicks(t *testing.T) {
	m := New()
	m.Start()
	stale := TickMsg{ID: m.ID(), Time: time.Now(), tag: m.tag}

	m.Stop()
	before := m.Now()
	m, next := m.Update(stale)
	assert.Nil(t, next)
	assert.Equal(t, before, m.Now())
	assert.False(t, m.Running())
}

func TestModel_IgnoresOtherClocks(t *testing.T) {
	a, b := New(), New()
	a.Start()
	b.Start()

	_, next := a.Update(TickMsg{ID: b.ID(), Time: time.Now(), tag: b.tag})
	assert.Nil(t, next)
}

func TestModel_RestartInvalidatesOldTag(t *testing.T) {
	m := New()
	m.Start()
	old := TickMsg{ID: m.ID(), Time: time.Now(), tag: m.tag}
	m.Stop()
	m.Start()

	_, next := m.Update(old)
	assert.Nil(t, next)
}
