package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// EqualsLanguages
// Returns true if a1 and a2 recognize the same language once the letters of a1 are read through
// d (d gives the letter of a2 for each letter of a1; a nil d is the identity). d must be
// invertible. When minimized is true both automata are taken as already minimal and are not
// minimized again; the answer does not depend on it, only the amount of work does.
//
// Words of a1 using a letter without image, and words of a2 using a letter without preimage,
// belong to one side only.
func EqualsLanguages(a1, a2 *Automaton, d *Dict, minimized bool, opts ...Option) (bool, error) {
	o := newOptions(opts...)
	if d == nil {
		d = IdentityDict(a1.NumLetters())
	}
	na1, na2 := a1.NumLetters(), a2.NumLetters()
	if d.Len() != na1 {
		return false, fmt.Errorf("equals languages: %d entries for %d letters: %w", d.Len(), na1, ErrDictLength)
	}
	if !d.IsInvertible() {
		return false, fmt.Errorf("equals languages: %w", ErrDictNotInvertible)
	}
	if ts := d.TargetSize(); ts > na2 {
		return false, fmt.Errorf("equals languages: image %d with %d letters: %w", ts-1, na2, ErrLetterOutOfRange)
	}

	if !minimized {
		a1 = Minimize(a1, opts...)
		a2 = Minimize(a2, opts...)
	}

	// letters of a2 that no letter of a1 reaches
	orphans := make([]int, 0)
	hasPreimage := bitset.New(uint(na2))
	for l1 := 0; l1 < na1; l1++ {
		if l2, ok := d.Image(l1); ok {
			hasPreimage.Set(uint(l2))
		}
	}
	for l2 := 0; l2 < na2; l2++ {
		if !hasPreimage.Test(uint(l2)) {
			orphans = append(orphans, l2)
		}
	}

	// Pairs of states, none standing for the dead state on its side. Pair (p, q) is encoded as
	// (p+1)*(n2+1) + q+1.
	n1, n2 := a1.NumStates(), a2.NumStates()
	width := n2 + 1
	visited := bitset.New(uint((n1 + 1) * width))
	workList := make([]int, 0)
	visit := func(p, q int) {
		if p == none && q == none {
			return
		}
		k := (p+1)*width + q + 1
		if !visited.Test(uint(k)) {
			visited.Set(uint(k))
			workList = append(workList, k)
		}
	}
	step := func(a *Automaton, s, l int) int {
		if t, ok := a.Step(s, l); ok {
			return t
		}
		return none
	}

	visit(initialOrNone(a1), initialOrNone(a2))
	for len(workList) > 0 {
		k := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		p, q := k/width-1, k%width-1

		if a1.IsFinal(p) != a2.IsFinal(q) {
			o.logger.Logf("equals languages: states %d and %d disagree", p, q)
			return false, nil
		}
		for l1 := 0; l1 < na1; l1++ {
			q2 := none
			if l2, ok := d.Image(l1); ok {
				q2 = step(a2, q, l2)
			}
			visit(step(a1, p, l1), q2)
		}
		for _, l2 := range orphans {
			visit(none, step(a2, q, l2))
		}
	}
	o.logger.Logf("equals languages: %d pairs visited", visited.Count())
	return true, nil
}

func initialOrNone(a *Automaton) int {
	if s, ok := a.Initial(); ok {
		return s
	}
	return none
}
