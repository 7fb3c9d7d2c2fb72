package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// tarjan holds the state of one run of Tarjan's algorithm.
type tarjan struct {
	a       *Automaton
	index   int
	indices []int // discovery order, none if unvisited
	lowlink []int
	onStack *bitset.BitSet
	stack   []int
	comp    []int
	count   int
}

// StronglyConnectedComponents
// Computes the strongly connected components with Tarjan's algorithm. It returns the number of
// components and the component of every state. Components are numbered in the order they are
// completed, which is a reverse topological order: a transition between two different
// components always goes from the higher number to the lower one.
func StronglyConnectedComponents(a *Automaton) (int, []int) {
	n := a.NumStates()
	t := &tarjan{
		a:       a,
		indices: make([]int, n),
		lowlink: make([]int, n),
		onStack: bitset.New(uint(n)),
		comp:    make([]int, n),
	}
	for i := range t.indices {
		t.indices[i] = none
	}
	for s := 0; s < n; s++ {
		if t.indices[s] == none {
			t.strongConnect(s)
		}
	}
	return t.count, t.comp
}

func (t *tarjan) strongConnect(v int) {
	t.indices[v] = t.index
	t.lowlink[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.onStack.Set(uint(v))

	t.a.successors(v, func(_, w int) {
		if t.indices[w] == none {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if t.onStack.Test(uint(w)) {
			t.lowlink[v] = min(t.lowlink[v], t.indices[w])
		}
	})

	// v is the root of a component
	if t.lowlink[v] == t.indices[v] {
		for {
			w := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack.Clear(uint(w))
			t.comp[w] = t.count
			if w == v {
				break
			}
		}
		t.count++
	}
}

// TrimInfinite
// Removes every state from which there is no infinite path, that is every state that neither
// belongs to a cycle nor leads to one. Surviving states keep their relative order.
func TrimInfinite(a *Automaton, opts ...Option) *Automaton {
	o := newOptions(opts...)
	n := a.NumStates()
	count, comp := StronglyConnectedComponents(a)

	size := make([]int, count)
	members := make([][]int, count)
	for s := 0; s < n; s++ {
		size[comp[s]]++
		members[comp[s]] = append(members[comp[s]], s)
	}

	// Successor components have lower numbers, so one ascending pass settles every component.
	good := bitset.New(uint(count))
	for c := 0; c < count; c++ {
		if size[c] > 1 {
			good.Set(uint(c))
			continue
		}
		for _, s := range members[c] {
			a.successors(s, func(_, t int) {
				if t == s || (comp[t] != c && good.Test(uint(comp[t]))) {
					good.Set(uint(c))
				}
			})
		}
	}

	keep := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if good.Test(uint(comp[s])) {
			keep = append(keep, s)
		}
	}
	r := subAutomaton(a, keep)
	o.logger.Logf("trim infinite: %d components, %d -> %d states", count, n, r.NumStates())
	return r
}
