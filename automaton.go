package automaton

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// none marks an undefined transition or a missing initial state in the packed storage.
const none = -1

// Automaton Represents a finite automaton over the alphabet {0, ..., NumLetters()-1}. States are
// integers 0..NumStates()-1. Each (state, letter) pair has at most one transition; a missing
// transition is an implicit non-accepting dead end. The initial state is optional.
//
// Operations named like Go methods on *Automaton mutate the receiver; the package-level function
// of the same name works on a copy and leaves its argument untouched.
type Automaton struct {
	numStates  int
	numLetters int

	// delta[s*numLetters+l] is the target of (s, l), or none.
	delta []int

	isFinal *bitset.BitSet

	initial int
}

// NewAutomaton returns an automaton with n states over na letters, without transitions,
// final states or initial state. It panics if n or na is negative.
func NewAutomaton(n, na int) *Automaton {
	if n < 0 || na < 0 {
		panic(fmt.Sprintf("automaton: negative size (%d states, %d letters)", n, na))
	}
	delta := make([]int, n*na)
	for i := range delta {
		delta[i] = none
	}
	return &Automaton{
		numStates:  n,
		numLetters: na,
		delta:      delta,
		isFinal:    bitset.New(uint(n)),
		initial:    none,
	}
}

// Copy Returns a deep copy sharing no storage with a.
func (a *Automaton) Copy() *Automaton {
	return &Automaton{
		numStates:  a.numStates,
		numLetters: a.numLetters,
		delta:      slices.Clone(a.delta),
		isFinal:    a.isFinal.Clone(),
		initial:    a.initial,
	}
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return a.numStates
}

// NumLetters Size of the alphabet.
func (a *Automaton) NumLetters() int {
	return a.numLetters
}

func (a *Automaton) validState(s int) bool {
	return s >= 0 && s < a.numStates
}

func (a *Automaton) validLetter(l int) bool {
	return l >= 0 && l < a.numLetters
}

func (a *Automaton) checkState(s int) error {
	if !a.validState(s) {
		return fmt.Errorf("state %d of %d: %w", s, a.numStates, ErrStateOutOfRange)
	}
	return nil
}

func (a *Automaton) checkLetter(l int) error {
	if !a.validLetter(l) {
		return fmt.Errorf("letter %d of %d: %w", l, a.numLetters, ErrLetterOutOfRange)
	}
	return nil
}

// Initial Returns the initial state, ok is false when none is set.
func (a *Automaton) Initial() (int, bool) {
	if a.initial == none {
		return 0, false
	}
	return a.initial, true
}

func (a *Automaton) SetInitial(s int) error {
	if err := a.checkState(s); err != nil {
		return err
	}
	a.initial = s
	return nil
}

func (a *Automaton) ClearInitial() {
	a.initial = none
}

// IsFinal Returns true if this state is a final state. Out of range states are not final.
func (a *Automaton) IsFinal(s int) bool {
	return a.validState(s) && a.isFinal.Test(uint(s))
}

// SetFinal Set or clear this state as a final state.
func (a *Automaton) SetFinal(s int, final bool) error {
	if err := a.checkState(s); err != nil {
		return err
	}
	a.isFinal.SetTo(uint(s), final)
	return nil
}

// Finals Returns the final states in ascending order.
func (a *Automaton) Finals() []int {
	finals := make([]int, 0, a.isFinal.Count())
	for s, ok := a.isFinal.NextSet(0); ok && int(s) < a.numStates; s, ok = a.isFinal.NextSet(s + 1) {
		finals = append(finals, int(s))
	}
	return finals
}

// Step Performs lookup in transitions.
// ok is false if no transition is defined or if state or letter is out of range.
func (a *Automaton) Step(state, letter int) (int, bool) {
	if !a.validState(state) || !a.validLetter(letter) {
		return 0, false
	}
	t := a.delta[state*a.numLetters+letter]
	if t == none {
		return 0, false
	}
	return t, true
}

// SetTransition Defines (or redefines) the transition of source on letter.
func (a *Automaton) SetTransition(source, letter, dest int) error {
	if err := a.checkState(source); err != nil {
		return err
	}
	if err := a.checkLetter(letter); err != nil {
		return err
	}
	if err := a.checkState(dest); err != nil {
		return err
	}
	a.delta[source*a.numLetters+letter] = dest
	return nil
}

func (a *Automaton) RemoveTransition(source, letter int) error {
	if err := a.checkState(source); err != nil {
		return err
	}
	if err := a.checkLetter(letter); err != nil {
		return err
	}
	a.delta[source*a.numLetters+letter] = none
	return nil
}

// NumTransitions How many transitions are defined.
func (a *Automaton) NumTransitions() int {
	count := 0
	for _, t := range a.delta {
		if t != none {
			count++
		}
	}
	return count
}

// AddState Appends a new state without transitions and returns its index.
func (a *Automaton) AddState(final bool) int {
	s := a.numStates
	a.delta = grow(a.delta, len(a.delta)+a.numLetters, none)
	a.isFinal.SetTo(uint(s), final)
	a.numStates++
	return s
}

// IsComplete Returns true if every (state, letter) pair has a transition.
func (a *Automaton) IsComplete() bool {
	return !slices.Contains(a.delta, none)
}

// Equals Returns true if both automata have the same states, letters, transitions, final states
// and initial state. Automata equal up to a renumbering of states are different.
func (a *Automaton) Equals(b *Automaton) bool {
	if a.numStates != b.numStates || a.numLetters != b.numLetters || a.initial != b.initial {
		return false
	}
	if !slices.Equal(a.delta, b.delta) {
		return false
	}
	for s := 0; s < a.numStates; s++ {
		if a.IsFinal(s) != b.IsFinal(s) {
			return false
		}
	}
	return true
}

// successors iterates over the defined transitions leaving s.
func (a *Automaton) successors(s int, fn func(letter, dest int)) {
	row := a.delta[s*a.numLetters : (s+1)*a.numLetters]
	for l, t := range row {
		if t != none {
			fn(l, t)
		}
	}
}

func (a *Automaton) String() string {
	return fmt.Sprintf("Automaton(%d states, %d letters)", a.numStates, a.numLetters)
}
