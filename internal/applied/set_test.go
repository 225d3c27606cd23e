package applied

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddIsIdempotent(t *testing.T) {
	once := NewSet()
	once.Add(3)

	twice := NewSet()
	assert.True(t, twice.Add(3))
	assert.False(t, twice.Add(3), "second Add should not change the set")

	assert.True(t, once.Equal(twice))
	assert.Equal(t, 1, twice.Len())
}

func TestSet_AddThenRemoveRestoresPriorState(t *testing.T) {
	s := NewSet(1, 4)
	before := s.Clone()

	s.Add(7)
	s.Remove(7)

	assert.True(t, before.Equal(s))
}

func TestSet_RemoveMissing(t *testing.T) {
	s := NewSet(1)
	assert.False(t, s.Remove(2))
	assert.Equal(t, []int{1}, s.IDs())
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := NewSet(1)
	c := s.Clone()
	c.Add(2)

	assert.False(t, s.Contains(2))
	assert.True(t, c.Contains(2))
}

func TestEncode_AscendingArray(t *testing.T) {
	raw, err := Encode(NewSet(9, 2, 5))
	require.NoError(t, err)
	assert.Equal(t, "[2,5,9]", raw)

	raw, err = Encode(NewSet())
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{name: "empty string", raw: "", want: []int{}},
		{name: "null", raw: "null", want: []int{}},
		{name: "empty array", raw: "[]", want: []int{}},
		{name: "ids", raw: "[2,5,9]", want: []int{2, 5, 9}},
		{name: "duplicates collapse", raw: "[5,5,2]", want: []int{2, 5}},
		{name: "not json", raw: "{broken", wantErr: true},
		{name: "object", raw: `{"a":1}`, wantErr: true},
		{name: "strings", raw: `["1"]`, wantErr: true},
		{name: "fractions", raw: `[1.5]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IDs())
		})
	}
}
