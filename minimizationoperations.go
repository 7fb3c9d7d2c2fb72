package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// Minimize
// Returns the minimal deterministic automaton of the language of a, using Hopcroft's algorithm
// (see "Around Hopcroft's Algorithm", M. Baclet and C. Pagetti).
//
// Unreachable states are dropped first and a partial a is completed with a hole state. The class
// of dead states (no final state reachable) is always removed from the result, so the result is
// trim and an empty language gives an automaton without states. States are numbered breadth-first from the initial state (0),
// letters in ascending order, which makes the result canonical: two minimal automata of the same
// language over the same alphabet are Equals.
func Minimize(a *Automaton, opts ...Option) *Automaton {
	o := newOptions(opts...)
	na := a.NumLetters()
	if _, ok := a.Initial(); !ok {
		return NewAutomaton(0, na)
	}

	b := TrimAccessible(a)
	b.Complete()

	h := newHopcroft(b)
	h.refine()
	o.logger.Logf("minimize: %d states, %d classes", a.NumStates(), len(h.first))

	// in a complete automaton all dead states are equivalent
	deadClass := none
	live := getLiveStatesToAccept(b)
	if s, ok := live.NextClear(0); ok && int(s) < b.NumStates() {
		deadClass = h.blk[s]
	}

	initial, _ := b.Initial()
	if h.blk[initial] == deadClass {
		return NewAutomaton(0, na)
	}

	// canonical numbering of the classes
	order := make([]int, len(h.first))
	for i := range order {
		order[i] = none
	}
	queue := []int{h.blk[initial]}
	order[h.blk[initial]] = 0
	for qi := 0; qi < len(queue); qi++ {
		s := h.elems[h.first[queue[qi]]]
		b.successors(s, func(_, t int) {
			c := h.blk[t]
			if c != deadClass && order[c] == none {
				order[c] = len(queue)
				queue = append(queue, c)
			}
		})
	}

	r := NewAutomaton(len(queue), na)
	r.initial = 0
	for i, c := range queue {
		s := h.elems[h.first[c]]
		r.isFinal.SetTo(uint(i), b.IsFinal(s))
		b.successors(s, func(l, t int) {
			if ct := h.blk[t]; ct != deadClass {
				r.delta[i*na+l] = order[ct]
			}
		})
	}
	return r
}

// hopcroft is a refinable partition of the states of a complete deterministic automaton.
// The members of block b are elems[first[b]:end[b]]; the marked ones are moved to the front.
type hopcroft struct {
	a      *Automaton
	elems  []int
	loc    []int // position of each state in elems
	blk    []int // block of each state
	first  []int
	end    []int
	marked []int

	// sources of the transitions entering t with letter l:
	// src[off[t*na+l]:off[t*na+l+1]]
	off []int
	src []int
}

func newHopcroft(a *Automaton) *hopcroft {
	n, na := a.NumStates(), a.NumLetters()
	h := &hopcroft{
		a:     a,
		elems: make([]int, 0, n),
		loc:   make([]int, n),
		blk:   make([]int, n),
	}

	// initial partition: final states, then the others
	for pass := 0; pass < 2; pass++ {
		start := len(h.elems)
		for s := 0; s < n; s++ {
			if a.IsFinal(s) == (pass == 0) {
				h.loc[s] = len(h.elems)
				h.blk[s] = len(h.first)
				h.elems = append(h.elems, s)
			}
		}
		if len(h.elems) > start {
			h.first = append(h.first, start)
			h.end = append(h.end, len(h.elems))
			h.marked = append(h.marked, 0)
		}
	}

	h.off = make([]int, n*na+1)
	for s := 0; s < n; s++ {
		a.successors(s, func(l, t int) {
			h.off[t*na+l+1]++
		})
	}
	for i := 0; i < n*na; i++ {
		h.off[i+1] += h.off[i]
	}
	h.src = make([]int, h.off[n*na])
	fill := make([]int, n*na)
	copy(fill, h.off[:n*na])
	for s := 0; s < n; s++ {
		a.successors(s, func(l, t int) {
			k := t*na + l
			h.src[fill[k]] = s
			fill[k]++
		})
	}
	return h
}

func (h *hopcroft) size(b int) int {
	return h.end[b] - h.first[b]
}

// mark moves s to the marked front of its block and reports whether the block was untouched.
func (h *hopcroft) mark(s int) bool {
	b := h.blk[s]
	j := h.first[b] + h.marked[b]
	i := h.loc[s]
	if i < j {
		return false
	}
	h.elems[i], h.elems[j] = h.elems[j], h.elems[i]
	h.loc[h.elems[i]] = i
	h.loc[h.elems[j]] = j
	h.marked[b]++
	return h.marked[b] == 1
}

// split separates the marked states of b into a new block, returned, or none when every
// state of b is marked.
func (h *hopcroft) split(b int) int {
	m := h.marked[b]
	h.marked[b] = 0
	if m == h.size(b) {
		return none
	}
	nb := len(h.first)
	h.first = append(h.first, h.first[b])
	h.end = append(h.end, h.first[b]+m)
	h.marked = append(h.marked, 0)
	h.first[b] += m
	for i := h.first[nb]; i < h.end[nb]; i++ {
		h.blk[h.elems[i]] = nb
	}
	return nb
}

func (h *hopcroft) refine() {
	if len(h.first) < 2 {
		return
	}
	n, na := h.a.NumStates(), h.a.NumLetters()
	inWork := bitset.New(uint(n * na))
	work := make([]int, 0, na)
	push := func(b, l int) {
		k := b*na + l
		if !inWork.Test(uint(k)) {
			inWork.Set(uint(k))
			work = append(work, k)
		}
	}

	// One of the two initial blocks is enough; take the smaller.
	smaller := 0
	if h.size(1) < h.size(0) {
		smaller = 1
	}
	for l := 0; l < na; l++ {
		push(smaller, l)
	}

	var splitter, touched []int
	for len(work) > 0 {
		k := work[len(work)-1]
		work = work[:len(work)-1]
		inWork.Clear(uint(k))
		b, l := k/na, k%na

		splitter = append(splitter[:0], h.elems[h.first[b]:h.end[b]]...)
		touched = touched[:0]
		for _, t := range splitter {
			for _, s := range h.src[h.off[t*na+l]:h.off[t*na+l+1]] {
				if h.mark(s) {
					touched = append(touched, h.blk[s])
				}
			}
		}

		for _, c := range touched {
			nb := h.split(c)
			if nb == none {
				continue
			}
			for x := 0; x < na; x++ {
				if inWork.Test(uint(c*na+x)) || h.size(nb) <= h.size(c) {
					push(nb, x)
				} else {
					push(c, x)
				}
			}
		}
	}
}
