package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/store"
)

func TestStore_CopiesValues(t *testing.T) {
	s := New()
	v := []byte(`[]`)
	require.NoError(t, s.Set(store.KeyTasks, v))
	v[0] = 'x'

	got, err := s.Get(store.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestStore_FailWrites(t *testing.T) {
	s := New()
	s.FailWrites = true
	assert.ErrorIs(t, s.Set(store.KeyTasks, []byte(`[]`)), ErrWriteFailed)
	_, err := s.Get(store.KeyTasks)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
