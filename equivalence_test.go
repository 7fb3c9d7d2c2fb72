package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualsLanguages(t *testing.T) {
	// (01)*
	a := build(t, 2, 0, []int{0},
		[]int{1, -1},
		[]int{-1, 0},
	)

	t.Run("same language, different shape", func(t *testing.T) {
		b := build(t, 2, 0, []int{0, 2},
			[]int{1, 3},
			[]int{3, 2},
			[]int{1, -1},
			[]int{3, 3},
		)
		for _, minimized := range []bool{false, true} {
			eq, err := EqualsLanguages(a, b, nil, minimized)
			require.NoError(t, err)
			assert.True(t, eq)
		}
	})

	t.Run("different languages", func(t *testing.T) {
		b := build(t, 2, 0, []int{1},
			[]int{1, -1},
			[]int{-1, 0},
		)
		eq, err := EqualsLanguages(a, b, IdentityDict(2), false)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("renamed letters", func(t *testing.T) {
		// (10)* over {0,1,2}
		b := build(t, 3, 0, []int{0},
			[]int{-1, 1, -1},
			[]int{0, -1, -1},
		)
		eq, err := EqualsLanguages(a, b, NewDictFrom([]int{1, 0}), false)
		require.NoError(t, err)
		assert.True(t, eq)

		// letter 2 of b is used: b accepts more words
		require.NoError(t, b.SetTransition(0, 2, 0))
		eq, err = EqualsLanguages(a, b, NewDictFrom([]int{1, 0}), false)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("unmapped letter used by a1", func(t *testing.T) {
		b := build(t, 1, 0, []int{0},
			[]int{1},
			[]int{-1},
		)
		// a needs letter 1, which has no image
		eq, err := EqualsLanguages(a, b, NewDictFrom([]int{0, -1}), false)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("unmapped letter unused", func(t *testing.T) {
		c := build(t, 2, 0, []int{1},
			[]int{1, -1},
			[]int{-1, -1},
		)
		b := build(t, 1, 0, []int{1},
			[]int{1},
			[]int{-1},
		)
		eq, err := EqualsLanguages(c, b, NewDictFrom([]int{0, -1}), false)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("dictionary checks", func(t *testing.T) {
		_, err := EqualsLanguages(a, a, NewDictFrom([]int{0, 0}), false)
		assert.ErrorIs(t, err, ErrDictNotInvertible)
		_, err = EqualsLanguages(a, a, IdentityDict(3), false)
		assert.ErrorIs(t, err, ErrDictLength)
		_, err = EqualsLanguages(a, a, NewDictFrom([]int{0, 2}), false)
		assert.ErrorIs(t, err, ErrLetterOutOfRange)
	})

	t.Run("both empty", func(t *testing.T) {
		eq, err := EqualsLanguages(NewAutomaton(0, 2), defaultAutomata.MakeEmpty(2), nil, false)
		require.NoError(t, err)
		assert.True(t, eq)
	})
}

func TestEqualsLanguages_Emptiness(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 60; i++ {
		a := randomAutomaton(rng, 1+rng.Intn(6), 2, 0.4)
		eq, err := EqualsLanguages(a, defaultAutomata.MakeEmpty(2), IdentityDict(2), false)
		require.NoError(t, err)
		assert.Equal(t, IsEmptyAutomaton(a), eq)
	}
}

func TestEqualsLanguages_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 40; i++ {
		a := randomAutomaton(rng, 4, 2, 0.6)
		b := randomAutomaton(rng, 4, 2, 0.6)

		want := true
		for _, w := range words(2, 8) {
			if Run(a, w) != Run(b, w) {
				want = false
				break
			}
		}
		eq, err := EqualsLanguages(a, b, nil, false)
		require.NoError(t, err)
		if want {
			// equal up to length 8 implies equal for automata this small
			assert.True(t, eq)
		} else {
			assert.False(t, eq)
		}

		eq, err = EqualsLanguages(a, a.Copy(), nil, true)
		require.NoError(t, err)
		assert.True(t, eq)
	}
}
