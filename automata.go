package automaton

// Automata builds common automata.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new automaton over na letters with the empty language. It has no states.
func (*Automata) MakeEmpty(na int) *Automaton {
	return NewAutomaton(0, na)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty word.
func (*Automata) MakeEmptyString(na int) *Automaton {
	a := NewAutomaton(1, na)
	a.isFinal.Set(0)
	a.initial = 0
	return a
}

// MakeAnyString
// Returns a new (deterministic, complete) automaton that accepts all words.
func (*Automata) MakeAnyString(na int) *Automaton {
	a := NewAutomaton(1, na)
	a.isFinal.Set(0)
	a.initial = 0
	for l := 0; l < na; l++ {
		a.delta[l] = 0
	}
	return a
}

// MakeWord
// Returns a new (deterministic) automaton that accepts exactly word.
func (*Automata) MakeWord(na int, word []int) (*Automaton, error) {
	a := NewAutomaton(len(word)+1, na)
	a.initial = 0
	for i, l := range word {
		if err := a.SetTransition(i, l, i+1); err != nil {
			return nil, err
		}
	}
	a.isFinal.Set(uint(len(word)))
	return a, nil
}
