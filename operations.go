package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// IsEmptyAutomaton
// Returns true if the given automaton accepts no word.
func IsEmptyAutomaton(a *Automaton) bool {
	initial, ok := a.Initial()
	if !ok || a.NumStates() == 0 {
		// Common case: no states
		return true
	}
	if a.IsFinal(initial) {
		// Common case: it accepts the empty word
		return false
	}

	workList := make([]int, 0)
	seen := bitset.New(uint(a.NumStates()))
	workList = append(workList, initial)
	seen.Set(uint(initial))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.IsFinal(state) {
			return false
		}
		a.successors(state, func(_, dest int) {
			if !seen.Test(uint(dest)) {
				workList = append(workList, dest)
				seen.Set(uint(dest))
			}
		})
	}
	return true
}

// getLiveStatesFromInitial returns the states reachable from the initial state.
func getLiveStatesFromInitial(a *Automaton) *bitset.BitSet {
	live := bitset.New(uint(a.NumStates()))
	initial, ok := a.Initial()
	if !ok {
		return live
	}
	workList := []int{initial}
	live.Set(uint(initial))

	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		a.successors(s, func(_, dest int) {
			if !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		})
	}
	return live
}

// getLiveStatesToAccept returns the states from which a final state is reachable.
func getLiveStatesToAccept(a *Automaton) *bitset.BitSet {
	live := bitset.New(uint(a.NumStates()))
	offsets, sources := predecessors(a)

	workList := a.Finals()
	for _, s := range workList {
		live.Set(uint(s))
	}
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		for _, p := range sources[offsets[s]:offsets[s+1]] {
			if !live.Test(uint(p)) {
				live.Set(uint(p))
				workList = append(workList, p)
			}
		}
	}
	return live
}

// predecessors lists, for every state t, the sources of the transitions entering t:
// sources[offsets[t]:offsets[t+1]], ascending, one entry per transition.
func predecessors(a *Automaton) (offsets, sources []int) {
	n := a.NumStates()
	offsets = make([]int, n+1)
	for _, t := range a.delta {
		if t != none {
			offsets[t+1]++
		}
	}
	for i := 0; i < n; i++ {
		offsets[i+1] += offsets[i]
	}
	sources = make([]int, offsets[n])
	fill := make([]int, n)
	copy(fill, offsets[:n])
	for s := 0; s < n; s++ {
		a.successors(s, func(_, t int) {
			sources[fill[t]] = s
			fill[t]++
		})
	}
	return offsets, sources
}

func statesOf(set *bitset.BitSet, n int) []int {
	states := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok && int(s) < n; s, ok = set.NextSet(s + 1) {
		states = append(states, int(s))
	}
	return states
}

// Trim
// Removes every state that is not accessible from the initial state or from which no final
// state can be reached. Surviving states keep their relative order.
func Trim(a *Automaton, opts ...Option) *Automaton {
	o := newOptions(opts...)
	live := getLiveStatesFromInitial(a)
	live.InPlaceIntersection(getLiveStatesToAccept(a))
	r := subAutomaton(a, statesOf(live, a.NumStates()))
	o.logger.Logf("trim: %d -> %d states", a.NumStates(), r.NumStates())
	return r
}

// TrimAccessible
// Removes every state that is not accessible from the initial state.
func TrimAccessible(a *Automaton, opts ...Option) *Automaton {
	o := newOptions(opts...)
	r := subAutomaton(a, statesOf(getLiveStatesFromInitial(a), a.NumStates()))
	o.logger.Logf("trim accessible: %d -> %d states", a.NumStates(), r.NumStates())
	return r
}

// SubAutomaton
// Returns the automaton induced by the given states: new state i is old state states[i].
// Transitions leading outside the selection are dropped, as is the initial state when it is
// not selected.
func SubAutomaton(a *Automaton, states []int) (*Automaton, error) {
	seen := bitset.New(uint(a.NumStates()))
	for _, s := range states {
		if err := a.checkState(s); err != nil {
			return nil, fmt.Errorf("sub automaton: %w", err)
		}
		if seen.Test(uint(s)) {
			return nil, fmt.Errorf("sub automaton: state %d selected twice", s)
		}
		seen.Set(uint(s))
	}
	return subAutomaton(a, states), nil
}

func subAutomaton(a *Automaton, states []int) *Automaton {
	mp := make([]int, a.NumStates())
	for i := range mp {
		mp[i] = none
	}
	for i, s := range states {
		mp[s] = i
	}

	na := a.NumLetters()
	r := NewAutomaton(len(states), na)
	for i, s := range states {
		r.isFinal.SetTo(uint(i), a.IsFinal(s))
		a.successors(s, func(l, t int) {
			r.delta[i*na+l] = mp[t]
		})
	}
	if initial, ok := a.Initial(); ok {
		r.initial = mp[initial]
	}
	return r
}

// DeleteVertex Removes state e. States above e are renumbered one lower and transitions entering
// e disappear. The initial state is cleared when it is e.
func (a *Automaton) DeleteVertex(e int) error {
	if err := a.checkState(e); err != nil {
		return fmt.Errorf("delete vertex: %w", err)
	}
	n, na := a.numStates, a.numLetters
	shift := func(t int) int {
		switch {
		case t == none || t == e:
			return none
		case t > e:
			return t - 1
		}
		return t
	}

	delta := make([]int, 0, (n-1)*na)
	isFinal := bitset.New(uint(n - 1))
	for s := 0; s < n; s++ {
		if s == e {
			continue
		}
		for _, t := range a.delta[s*na : (s+1)*na] {
			delta = append(delta, shift(t))
		}
		if a.IsFinal(s) {
			isFinal.Set(uint(shift(s)))
		}
	}

	a.delta = delta
	a.isFinal = isFinal
	a.initial = shift(a.initial)
	a.numStates--
	return nil
}

// DeleteVertex
// Returns a copy of a without state e. See Automaton.DeleteVertex.
func DeleteVertex(a *Automaton, e int) (*Automaton, error) {
	r := a.Copy()
	if err := r.DeleteVertex(e); err != nil {
		return nil, err
	}
	return r, nil
}

// Transpose
// Returns a with every transition reversed; final states and initial state are kept. Since a
// state holds one transition per letter, when several edges would leave the same state with
// the same letter only the one coming from the lowest state is kept.
func Transpose(a *Automaton, opts ...Option) *Automaton {
	o := newOptions(opts...)
	n, na := a.NumStates(), a.NumLetters()
	r := NewAutomaton(n, na)
	r.isFinal = a.isFinal.Clone()
	r.initial = a.initial

	collisions := 0
	for s := 0; s < n; s++ {
		a.successors(s, func(l, t int) {
			if r.delta[t*na+l] != none {
				collisions++
				return
			}
			r.delta[t*na+l] = s
		})
	}
	if collisions > 0 {
		o.logger.Logf("transpose: %d transitions dropped, the transposed automaton is not deterministic", collisions)
	}
	return r
}
