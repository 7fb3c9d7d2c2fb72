package automaton

import (
	"fmt"
)

// Product
// Returns the synchronized product of a1 and a2. The pair of states (s1, s2) is state
// s1 + n1*s2 and the pair of letters (l1, l2) is read through d at index l1 + na1*l2; pairs that
// d leaves unmapped produce no transition. A state is final when both components are final.
// d must be invertible, otherwise two pairs would compete for the same letter.
func Product(a1, a2 *Automaton, d *Dict, opts ...Option) (*Automaton, error) {
	o := newOptions(opts...)
	n1, n2 := a1.NumStates(), a2.NumStates()
	na1, na2 := a1.NumLetters(), a2.NumLetters()
	if d.Len() != na1*na2 {
		return nil, fmt.Errorf("product: %d entries for %d letter pairs: %w", d.Len(), na1*na2, ErrDictLength)
	}
	if !d.IsInvertible() {
		return nil, fmt.Errorf("product: %w", ErrDictNotInvertible)
	}

	na := d.TargetSize()
	r := NewAutomaton(n1*n2, na)
	for s2 := 0; s2 < n2; s2++ {
		for s1 := 0; s1 < n1; s1++ {
			s := s1 + n1*s2
			r.isFinal.SetTo(uint(s), a1.IsFinal(s1) && a2.IsFinal(s2))
			for l2 := 0; l2 < na2; l2++ {
				t2, ok := a2.Step(s2, l2)
				if !ok {
					continue
				}
				for l1 := 0; l1 < na1; l1++ {
					l, ok := d.Image(l1 + na1*l2)
					if !ok {
						continue
					}
					if t1, ok := a1.Step(s1, l1); ok {
						r.delta[s*na+l] = t1 + n1*t2
					}
				}
			}
		}
	}

	i1, ok1 := a1.Initial()
	i2, ok2 := a2.Initial()
	if ok1 && ok2 {
		r.initial = i1 + n1*i2
	}
	o.logger.Logf("product: %d x %d states over %d letters", n1, n2, na)
	return r, nil
}

// Intersection
// Returns the product of two automata over the same alphabet, recognizing the intersection of
// their languages. Only the states accessible from the initial pair are kept.
func Intersection(a1, a2 *Automaton, opts ...Option) (*Automaton, error) {
	na := a1.NumLetters()
	if a2.NumLetters() != na {
		return nil, fmt.Errorf("intersection: %d and %d letters: %w", na, a2.NumLetters(), ErrDictLength)
	}
	images := make([]int, na*na)
	for i := range images {
		images[i] = none
	}
	for l := 0; l < na; l++ {
		images[l+na*l] = l
	}
	r, err := Product(a1, a2, NewDictFrom(images), opts...)
	if err != nil {
		return nil, err
	}
	return TrimAccessible(r, opts...), nil
}
