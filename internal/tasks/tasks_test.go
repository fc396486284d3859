package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store"
	"github.com/idilsaglam/tasklist/internal/store/memstore"
)

var fixedNow = time.Date(2024, time.April, 7, 10, 30, 0, 0, time.UTC)

func newStore(t *testing.T, seed ...model.Task) (*Store, *memstore.Store) {
	t.Helper()
	mem := memstore.New()
	if len(seed) > 0 {
		b, err := json.Marshal(seed)
		require.NoError(t, err)
		require.NoError(t, mem.Set(store.KeyTasks, b))
	}
	s, err := Load(mem, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return s, mem
}

func task(msg string, complete bool) model.Task {
	return model.Task{Message: msg, Deadline: "01-05-2024", CreatedAt: "07-04-2024", IsComplete: complete}
}

func messages(s *Store) []string {
	var out []string
	for _, t := range s.Tasks() {
		out = append(out, t.Message)
	}
	return out
}

func persisted(t *testing.T, mem *memstore.Store) []model.Task {
	t.Helper()
	b, err := mem.Get(store.KeyTasks)
	require.NoError(t, err)
	ts, err := model.DecodeTasks(b)
	require.NoError(t, err)
	return ts
}

func TestAdd_AppendsInCallOrder(t *testing.T) {
	s, mem := newStore(t)

	require.NoError(t, s.Add("Buy milk", "2024-05-01"))
	require.NoError(t, s.Add("Call mom", "2024-05-02"))

	want := []model.Task{
		{Message: "Buy milk", Deadline: "01-05-2024", CreatedAt: "07-04-2024", IsComplete: false},
		{Message: "Call mom", Deadline: "02-05-2024", CreatedAt: "07-04-2024", IsComplete: false},
	}
	assert.Equal(t, want, s.Tasks())
	assert.Equal(t, want, persisted(t, mem))
}

func TestAdd_TrimsInput(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Add("  Buy milk  ", " 2024-05-01 "))
	got, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", got.Message)
}

func TestAdd_BlankInputIsNoOp(t *testing.T) {
	s, mem := newStore(t, task("A", false))

	cases := [][2]string{
		{"", "2024-05-01"},
		{"   ", "2024-05-01"},
		{"Buy milk", ""},
		{"Buy milk", "  "},
		{"", ""},
	}
	for _, c := range cases {
		err := s.Add(c[0], c[1])
		assert.ErrorIs(t, err, ErrBlank, "Add(%q, %q)", c[0], c[1])
		assert.Equal(t, 1, s.Len())
	}
	assert.Len(t, persisted(t, mem), 1)
}

func TestAdd_InvalidDeadlineIsNoOp(t *testing.T) {
	s, _ := newStore(t)
	err := s.Add("Buy milk", "next tuesday")
	assert.ErrorIs(t, err, ErrInvalidDeadline)
	assert.Equal(t, 0, s.Len())
}

func TestAdd_AcceptsCanonicalDeadline(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Add("Buy milk", "01-05-2024"))
	got, _ := s.Get(0)
	assert.Equal(t, "01-05-2024", got.Deadline)
}

func TestDelete_ShiftsLaterPositions(t *testing.T) {
	s, mem := newStore(t, task("A", false), task("B", false), task("C", false))

	require.NoError(t, s.Delete(1))
	assert.Equal(t, []string{"A", "C"}, messages(s))
	assert.Len(t, persisted(t, mem), 2)
}

func TestDelete_OutOfRangeIsNoOp(t *testing.T) {
	s, _ := newStore(t, task("A", false))
	for _, pos := range []int{-1, 1, 5} {
		assert.ErrorIs(t, s.Delete(pos), ErrOutOfRange)
	}
	assert.Equal(t, []string{"A"}, messages(s))
}

func TestMove_Boundaries(t *testing.T) {
	s, _ := newStore(t, task("A", false), task("B", false), task("C", false))

	assert.ErrorIs(t, s.MoveUp(0), ErrBoundary)
	assert.ErrorIs(t, s.MoveDown(2), ErrBoundary)
	assert.ErrorIs(t, s.MoveUp(3), ErrOutOfRange)
	assert.ErrorIs(t, s.MoveDown(-1), ErrOutOfRange)
	assert.Equal(t, []string{"A", "B", "C"}, messages(s))
}

func TestMove_SwapsNeighbours(t *testing.T) {
	s, mem := newStore(t, task("A", false), task("B", false), task("C", false))

	require.NoError(t, s.MoveUp(2))
	assert.Equal(t, []string{"A", "C", "B"}, messages(s))

	require.NoError(t, s.MoveDown(0))
	assert.Equal(t, []string{"C", "A", "B"}, messages(s))

	got := persisted(t, mem)
	assert.Equal(t, "C", got[0].Message)
}

func TestMove_UpThenDownIsInverse(t *testing.T) {
	for i := 1; i <= 3; i++ {
		s, _ := newStore(t, task("A", false), task("B", true), task("C", false), task("D", false))
		before := s.Tasks()

		require.NoError(t, s.MoveUp(i))
		require.NoError(t, s.MoveDown(i-1))
		assert.Equal(t, before, s.Tasks(), "position %d", i)
	}
}

func TestToggleComplete_TwiceRestores(t *testing.T) {
	s, _ := newStore(t, task("A", false), task("B", true))
	before := s.Tasks()

	require.NoError(t, s.ToggleComplete(0))
	got, _ := s.Get(0)
	assert.True(t, got.IsComplete)
	assert.Equal(t, before[0].Message, got.Message)
	assert.Equal(t, before[0].Deadline, got.Deadline)
	assert.Equal(t, before[0].CreatedAt, got.CreatedAt)

	require.NoError(t, s.ToggleComplete(0))
	assert.Equal(t, before, s.Tasks())

	assert.ErrorIs(t, s.ToggleComplete(2), ErrOutOfRange)
}

func TestDeleteAll(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		var seed []model.Task
		for i := 0; i < n; i++ {
			seed = append(seed, task("x", i%2 == 0))
		}
		s, mem := newStore(t, seed...)

		require.NoError(t, s.DeleteAll())
		assert.Equal(t, 0, s.Len())

		b, err := mem.Get(store.KeyTasks)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	}
}

func TestLoad_CorruptDocumentYieldsEmptyList(t *testing.T) {
	mem := memstore.New()
	require.NoError(t, mem.Set(store.KeyTasks, []byte(`{not json`)))

	s, err := Load(mem)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, mem.Set(store.KeyTasks, []byte(`[{"taskMessage":"","deadline":"01-05-2024","createdAt":"01-05-2024","isComplete":false}]`)))
	s, err = Load(mem)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_RestoresAfterReload(t *testing.T) {
	s, mem := newStore(t)
	require.NoError(t, s.Add("Buy milk", "2024-05-01"))
	require.NoError(t, s.ToggleComplete(0))

	reloaded, err := Load(mem)
	require.NoError(t, err)
	assert.Equal(t, s.Tasks(), reloaded.Tasks())
}

func TestFailedWrite_RollsBack(t *testing.T) {
	s, mem := newStore(t, task("A", false), task("B", false))
	before := s.Tasks()
	mem.FailWrites = true

	assert.ErrorIs(t, s.Add("C", "2024-05-01"), memstore.ErrWriteFailed)
	assert.ErrorIs(t, s.Delete(0), memstore.ErrWriteFailed)
	assert.ErrorIs(t, s.MoveUp(1), memstore.ErrWriteFailed)
	assert.ErrorIs(t, s.MoveDown(0), memstore.ErrWriteFailed)
	assert.ErrorIs(t, s.ToggleComplete(0), memstore.ErrWriteFailed)
	assert.ErrorIs(t, s.DeleteAll(), memstore.ErrWriteFailed)

	assert.Equal(t, before, s.Tasks())
}

func TestTasks_ReturnsCopy(t *testing.T) {
	s, _ := newStore(t, task("A", false))
	got := s.Tasks()
	got[0].Message = "mutated"
	again, _ := s.Get(0)
	assert.Equal(t, "A", again.Message)
}
