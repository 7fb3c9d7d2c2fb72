package automaton

import (
	"fmt"
)

// Permute Relabels the transitions in place: the new alphabet has len(l) letters and new letter
// i reads old letter l[i]. A negative l[i] gives a letter without transitions.
func (a *Automaton) Permute(l []int) error {
	for i, old := range l {
		if old >= a.numLetters {
			return fmt.Errorf("permute: new letter %d reads %d: %w", i, old, ErrLetterOutOfRange)
		}
	}
	na := len(l)
	delta := make([]int, a.numStates*na)
	for s := 0; s < a.numStates; s++ {
		for i, old := range l {
			if old < 0 {
				delta[s*na+i] = none
				continue
			}
			delta[s*na+i] = a.delta[s*a.numLetters+old]
		}
	}
	a.delta = delta
	a.numLetters = na
	return nil
}

// Permute
// Returns a copy of a with relabeled transitions. See Automaton.Permute.
func Permute(a *Automaton, l []int) (*Automaton, error) {
	r := a.Copy()
	if err := r.Permute(l); err != nil {
		return nil, err
	}
	return r, nil
}

// BiggerAlphabet
// Returns a copy of a over nna letters where old letter i becomes letter d(i). Letters of the
// new alphabet that are no image have no transitions; unmapped old letters are dropped.
func BiggerAlphabet(a *Automaton, d *Dict, nna int) (*Automaton, error) {
	if d.Len() != a.NumLetters() {
		return nil, fmt.Errorf("bigger alphabet: %d entries for %d letters: %w", d.Len(), a.NumLetters(), ErrDictLength)
	}
	if !d.IsInvertible() {
		return nil, fmt.Errorf("bigger alphabet: %w", ErrDictNotInvertible)
	}
	if ts := d.TargetSize(); ts > nna {
		return nil, fmt.Errorf("bigger alphabet: image %d with %d letters: %w", ts-1, nna, ErrLetterOutOfRange)
	}

	l := make([]int, nna)
	for i := range l {
		l[i] = none
	}
	for old := 0; old < d.Len(); old++ {
		if img, ok := d.Image(old); ok {
			l[img] = old
		}
	}
	return Permute(a, l)
}

// Duplicate
// Returns a copy of a over na2 letters where target letter t carries the transitions of every
// source letter in id.Preimages(t); a source letter may thus be duplicated onto several target
// letters. It fails with ErrNotDeterministic when two preimages of a letter lead a state to
// different states.
func Duplicate(a *Automaton, id *InvertDict, na2 int, opts ...Option) (*Automaton, error) {
	o := newOptions(opts...)
	if id.Len() > na2 {
		return nil, fmt.Errorf("duplicate: %d target letters for an alphabet of %d: %w", id.Len(), na2, ErrLetterOutOfRange)
	}
	for t := 0; t < id.Len(); t++ {
		for _, l := range id.Preimages(t) {
			if !a.validLetter(l) {
				return nil, fmt.Errorf("duplicate: preimage %d of %d: %w", l, t, ErrLetterOutOfRange)
			}
		}
	}

	r := NewAutomaton(a.NumStates(), na2)
	r.isFinal = a.isFinal.Clone()
	r.initial = a.initial
	for s := 0; s < a.NumStates(); s++ {
		for t := 0; t < id.Len(); t++ {
			for _, l := range id.Preimages(t) {
				dest, ok := a.Step(s, l)
				if !ok {
					continue
				}
				k := s*na2 + t
				if r.delta[k] != none && r.delta[k] != dest {
					return nil, fmt.Errorf("duplicate: state %d on letter %d goes to %d and %d: %w", s, t, r.delta[k], dest, ErrNotDeterministic)
				}
				r.delta[k] = dest
			}
		}
	}
	o.logger.Logf("duplicate: %d -> %d letters", a.NumLetters(), na2)
	return r, nil
}

// Complete Adds a non-final hole state looping on every letter and sends every missing
// transition to it. It reports whether the hole was added; a complete automaton is unchanged.
func (a *Automaton) Complete() bool {
	if a.IsComplete() {
		return false
	}
	hole := a.AddState(false)
	for i, t := range a.delta {
		if t == none {
			a.delta[i] = hole
		}
	}
	return true
}

// CompleteAutomaton
// Returns a completed copy of a and whether a hole state was needed.
func CompleteAutomaton(a *Automaton) (*Automaton, bool) {
	r := a.Copy()
	return r, r.Complete()
}

// IsCompleteAutomaton
// Returns true if every state of a has a transition on every letter.
func IsCompleteAutomaton(a *Automaton) bool {
	return a.IsComplete()
}
