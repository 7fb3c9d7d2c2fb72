package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStronglyConnectedComponents(t *testing.T) {
	// {0,1} cycle -> {2} -> {3,4} cycle, 5 isolated with a self loop
	a := build(t, 2, 0, nil,
		[]int{1, -1},
		[]int{0, 2},
		[]int{3, -1},
		[]int{4, -1},
		[]int{3, -1},
		[]int{5, -1},
	)
	count, comp := StronglyConnectedComponents(a)
	assert.Equal(t, 4, count)
	assert.Equal(t, comp[0], comp[1])
	assert.Equal(t, comp[3], comp[4])
	assert.NotEqual(t, comp[0], comp[2])
	assert.NotEqual(t, comp[2], comp[3])

	// reverse topological numbering
	assert.Greater(t, comp[0], comp[2])
	assert.Greater(t, comp[2], comp[3])
}

func TestStronglyConnectedComponents_ReverseTopological(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a := randomAutomaton(rng, 10, 2, 0.4)
		count, comp := StronglyConnectedComponents(a)
		for s := 0; s < a.NumStates(); s++ {
			assert.True(t, comp[s] >= 0 && comp[s] < count)
			a.successors(s, func(_, d int) {
				assert.GreaterOrEqual(t, comp[s], comp[d], "edge %d -> %d", s, d)
			})
		}
	}
}

func TestStronglyConnectedComponents_Empty(t *testing.T) {
	count, comp := StronglyConnectedComponents(NewAutomaton(0, 2))
	assert.Equal(t, 0, count)
	assert.Empty(t, comp)
}

func TestTrimInfinite(t *testing.T) {
	t.Run("chain into a cycle", func(t *testing.T) {
		// 0 -> 1 -> 2 <-> 3, 2 -> 4 (dead end), 5 -> 4
		a := build(t, 2, 0, []int{4},
			[]int{1, -1},
			[]int{2, -1},
			[]int{3, 4},
			[]int{2, -1},
			[]int{-1, -1},
			[]int{4, -1},
		)
		r := TrimInfinite(a)
		want := build(t, 2, 0, nil,
			[]int{1, -1},
			[]int{2, -1},
			[]int{3, -1},
			[]int{2, -1},
		)
		assert.True(t, want.Equals(r), "got %v", r)
	})

	t.Run("self loop counts as a cycle", func(t *testing.T) {
		a := build(t, 1, 1, nil,
			[]int{0},
			[]int{2},
			[]int{-1},
		)
		r := TrimInfinite(a)
		assert.Equal(t, 1, r.NumStates())
		_, ok := r.Initial()
		assert.False(t, ok)
		dest, ok := r.Step(0, 0)
		assert.True(t, ok)
		assert.Equal(t, 0, dest)
	})

	t.Run("acyclic", func(t *testing.T) {
		a, err := defaultAutomata.MakeWord(2, []int{0, 1, 1})
		assert.NoError(t, err)
		assert.Equal(t, 0, TrimInfinite(a).NumStates())
	})

	t.Run("every kept state has an infinite path", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 30; i++ {
			a := randomAutomaton(rng, 8, 2, 0.35)
			r := TrimInfinite(a)
			// in a finite graph where every state has a successor, paths never end
			for s := 0; s < r.NumStates(); s++ {
				has := false
				r.successors(s, func(int, int) { has = true })
				assert.True(t, has)
			}
		}
	})
}
