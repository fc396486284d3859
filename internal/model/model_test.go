package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate_ZeroPads(t *testing.T) {
	d := time.Date(2024, time.May, 1, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, "01-05-2024", FormatDate(d))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-05-01", "01-05-2024", false},
		{" 2024-12-31 ", "31-12-2024", false},
		{"01-05-2024", "01-05-2024", false},
		{"2024/05/01", "", true},
		{"tomorrow", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTasks(t *testing.T) {
	b := []byte(`[{"taskMessage":"Buy milk","deadline":"01-05-2024","createdAt":"30-04-2024","isComplete":true}]`)
	got, err := DecodeTasks(b)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Task{Message: "Buy milk", Deadline: "01-05-2024", CreatedAt: "30-04-2024", IsComplete: true}, got[0])
}

func TestDecodeTasks_RejectsInvalidDocuments(t *testing.T) {
	bad := map[string]string{
		"not json":        `[{`,
		"object":          `{"taskMessage":"x"}`,
		"empty message":   `[{"taskMessage":"","deadline":"01-05-2024","createdAt":"30-04-2024","isComplete":false}]`,
		"missing field":   `[{"taskMessage":"x","createdAt":"30-04-2024","isComplete":false}]`,
		"iso deadline":    `[{"taskMessage":"x","deadline":"2024-05-01","createdAt":"30-04-2024","isComplete":false}]`,
		"string complete": `[{"taskMessage":"x","deadline":"01-05-2024","createdAt":"30-04-2024","isComplete":"no"}]`,
	}
	for name, doc := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTasks([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestDecodeTasks_EmptyArray(t *testing.T) {
	got, err := DecodeTasks([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDecodeProfile(t *testing.T) {
	p, err := DecodeProfile([]byte(`{"username":"ada","job":"engineer"}`))
	require.NoError(t, err)
	assert.Equal(t, Profile{Username: "ada", Job: "engineer"}, p)
	assert.True(t, p.Complete())

	_, err = DecodeProfile([]byte(`{"username":"ada"}`))
	assert.Error(t, err)

	_, err = DecodeProfile([]byte(`["ada"]`))
	assert.Error(t, err)
}

func TestProfileComplete(t *testing.T) {
	assert.False(t, Profile{}.Complete())
	assert.False(t, Profile{Username: "ada"}.Complete())
	assert.False(t, Profile{Job: "engineer"}.Complete())
	assert.False(t, Profile{Username: " \t", Job: "engineer"}.Complete())
}
