package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSet_Put(t *testing.T) {
	s := NewStateSet(2)
	assert.True(t, s.Put(3))
	assert.True(t, s.Put(1))
	assert.False(t, s.Put(3))
	assert.True(t, s.Put(2))

	assert.Equal(t, []int{1, 2, 3}, s.States())
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(0))
	assert.Equal(t, "{1, 2, 3}", s.String())
}

func TestStateSet_Equals(t *testing.T) {
	tests := []struct {
		name     string
		s        *StateSet
		other    Hashable
		expected bool
	}{
		{
			name:     "insertion order does not matter",
			s:        NewStateSetOf(1, 2, 3),
			other:    NewStateSetOf(3, 1, 2),
			expected: true,
		},
		{
			name:     "duplicates collapse",
			s:        NewStateSetOf(1, 1, 2),
			other:    NewStateSetOf(2, 1),
			expected: true,
		},
		{
			name:     "different members",
			s:        NewStateSetOf(1, 2, 3),
			other:    NewStateSetOf(1, 2),
			expected: false,
		},
		{
			name:     "both empty",
			s:        NewStateSet(0),
			other:    NewStateSet(4),
			expected: true,
		},
		{
			name:     "different type",
			s:        NewStateSetOf(2),
			other:    AnotherKey(2),
			expected: false,
		},
		{
			name:     "nil other",
			s:        NewStateSetOf(2),
			other:    (*StateSet)(nil),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.s.Equals(tt.other))
			if tt.expected {
				assert.Equal(t, tt.s.Hash(), tt.other.Hash())
			}
		})
	}
}

func TestStateSet_HashTracksChanges(t *testing.T) {
	s := NewStateSetOf(1, 2)
	h := s.Hash()
	s.Put(5)
	assert.NotEqual(t, h, s.Hash())
	assert.Equal(t, NewStateSetOf(5, 2, 1).Hash(), s.Hash())
}

func TestStateSet_Copy(t *testing.T) {
	s := NewStateSetOf(1, 2)
	c := s.Copy()
	c.Put(7)
	assert.False(t, s.Contains(7))
	assert.True(t, c.Contains(7))
}

func TestStateSetList(t *testing.T) {
	l := NewStateSetList()

	i, added := l.Add(NewStateSetOf(0))
	assert.True(t, added)
	assert.Equal(t, 0, i)

	i, added = l.Add(NewStateSetOf(1, 2))
	assert.True(t, added)
	assert.Equal(t, 1, i)

	i, added = l.Add(NewStateSetOf(2, 1))
	assert.False(t, added)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, l.Len())

	// Append duplicates, lookups keep the first occurrence
	j := l.Append(NewStateSetOf(0))
	assert.Equal(t, 2, j)
	assert.Equal(t, 3, l.Len())
	i, ok := l.Index(NewStateSetOf(0))
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	// the list owns a copy
	s := NewStateSetOf(4)
	i, _ = l.Add(s)
	s.Put(5)
	assert.Equal(t, []int{4}, l.Get(i).States())

	assert.Equal(t, "0: {0}\n1: {1, 2}\n2: {0}\n3: {4}\n", l.String())
}

func TestStateSetList_Many(t *testing.T) {
	l := NewStateSetList()
	for i := 0; i < 200; i++ {
		idx, added := l.Add(NewStateSetOf(i, i+1))
		assert.True(t, added)
		assert.Equal(t, i, idx)
	}
	for i := 199; i >= 0; i-- {
		idx, added := l.Add(NewStateSetOf(i+1, i))
		assert.False(t, added)
		assert.Equal(t, i, idx)
	}
}
