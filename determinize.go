package automaton

import (
	"fmt"
)

// Determinize
// Runs the subset construction on a, reading its letters through d: the letters of the result
// are the images of d, and a target letter follows every source letter mapped to it. A nil d is
// the identity. Subsets are numbered breadth-first, the subset of the initial state being 0.
// A subset is final if it contains a final state.
//
// Without options the result is deterministic and complete over d's target alphabet, the empty
// subset acting as dead state. See WithNoEmpty, WithNoUnmapped, WithOnlyFinals and WithWorkLimit.
// Worst case complexity: exponential in the number of states.
func Determinize(a *Automaton, d *Dict, opts ...Option) (*Automaton, error) {
	o := newOptions(opts...)
	if d == nil {
		d = IdentityDict(a.NumLetters())
	}
	if d.Len() != a.NumLetters() {
		return nil, fmt.Errorf("determinize: %d entries for %d letters: %w", d.Len(), a.NumLetters(), ErrDictLength)
	}

	id := d.Invert()
	nt := id.Len()
	r := NewAutomaton(0, nt)
	initial, ok := a.Initial()
	if !ok {
		return r, nil
	}

	list := NewStateSetList()
	start := NewStateSetOf(initial)
	list.Add(start)
	r.AddState(containsFinal(a, start))
	r.initial = 0

	// The list order is the work queue.
	for i := 0; i < list.Len(); i++ {
		current := list.Get(i)
		for t := 0; t < nt; t++ {
			pre := id.Preimages(t)
			if len(pre) == 0 && o.noUnmapped {
				continue
			}

			next := NewStateSet(current.Size())
			for _, s := range current.States() {
				for _, l := range pre {
					if dest, ok := a.Step(s, l); ok {
						next.Put(dest)
					}
				}
			}
			if next.Size() == 0 && o.noEmpty {
				continue
			}

			j, added := list.Add(next)
			if added {
				if o.workLimit > 0 && list.Len() > o.workLimit {
					return nil, fmt.Errorf("determinize: more than %d subsets: %w", o.workLimit, ErrTooComplex)
				}
				r.AddState(containsFinal(a, next))
			}
			r.delta[i*nt+t] = j
		}
		if (i+1)%1000 == 0 {
			o.logger.Logf("determinize: %d subsets processed, %d discovered", i+1, list.Len())
		}
	}
	o.logger.Logf("determinize: %d states -> %d subsets", a.NumStates(), r.NumStates())

	if o.onlyFinals {
		r = Trim(r, WithLogger(o.logger))
	}
	return r, nil
}

func containsFinal(a *Automaton, s *StateSet) bool {
	for _, e := range s.States() {
		if a.IsFinal(e) {
			return true
		}
	}
	return false
}
