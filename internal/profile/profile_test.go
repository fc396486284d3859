package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/store/memstore"
)

func TestLoad_DefaultsToEmpty(t *testing.T) {
	s, err := Load(memstore.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.Profile{}, s.Get())
	assert.True(t, s.NeedsPrompt())
}

func TestEdit_CommitsAndPersists(t *testing.T) {
	mem := memstore.New()
	s, err := Load(mem, nil)
	require.NoError(t, err)

	require.NoError(t, s.Edit(" Ada ", "Engineer"))
	assert.Equal(t, model.Profile{Username: "Ada", Job: "Engineer"}, s.Get())
	assert.False(t, s.NeedsPrompt())

	b, err := mem.Get(store.KeyProfile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"Ada","job":"Engineer"}`, string(b))
}

func TestEdit_BlankFieldRejected_SurvivesReload(t *testing.T) {
	mem := memstore.New()
	s, err := Load(mem, nil)
	require.NoError(t, err)
	require.NoError(t, s.Edit("Ada", "Engineer"))

	assert.ErrorIs(t, s.Edit("", "Chef"), ErrIncomplete)
	assert.ErrorIs(t, s.Edit("Bob", "   "), ErrIncomplete)
	assert.Equal(t, model.Profile{Username: "Ada", Job: "Engineer"}, s.Get())

	reloaded, err := Load(mem, nil)
	require.NoError(t, err)
	assert.Equal(t, model.Profile{Username: "Ada", Job: "Engineer"}, reloaded.Get())
}

func TestEdit_FailedWriteKeepsPrevious(t *testing.T) {
	mem := memstore.New()
	s, err := Load(mem, nil)
	require.NoError(t, err)
	require.NoError(t, s.Edit("Ada", "Engineer"))

	mem.FailWrites = true
	assert.ErrorIs(t, s.Edit("Bob", "Chef"), memstore.ErrWriteFailed)
	assert.Equal(t, "Ada", s.Get().Username)
}

func TestLoad_PartialProfileForcesPrompt(t *testing.T) {
	mem := memstore.New()
	require.NoError(t, mem.Set(store.KeyProfile, []byte(`{"username":"Ada","job":""}`)))

	s, err := Load(mem, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", s.Get().Username)
	assert.True(t, s.NeedsPrompt())
}

func TestLoad_CorruptProfileTreatedAsAbsent(t *testing.T) {
	mem := memstore.New()
	require.NoError(t, mem.Set(store.KeyProfile, []byte(`"just a string"`)))

	s, err := Load(mem, nil)
	require.NoError(t, err)
	assert.Equal(t, model.Profile{}, s.Get())
}

func TestLoad_WhitespaceFieldForcesPrompt(t *testing.T) {
	mem := memstore.New()
	require.NoError(t, mem.Set(store.KeyProfile, []byte(`{"username":"   ","job":"Engineer"}`)))

	s, err := Load(mem, nil)
	require.NoError(t, err)
	assert.True(t, s.NeedsPrompt())
}
