package automaton

// Run Returns true if a accepts word.
func Run(a *Automaton, word []int) bool {
	state, ok := a.Initial()
	if !ok {
		return false
	}
	for _, l := range word {
		state, ok = a.Step(state, l)
		if !ok {
			return false
		}
	}
	return a.IsFinal(state)
}

// RunPath Returns the states visited while reading word, starting with the initial state.
// The path stops early where a transition is missing.
func RunPath(a *Automaton, word []int) []int {
	state, ok := a.Initial()
	if !ok {
		return nil
	}
	path := make([]int, 1, len(word)+1)
	path[0] = state
	for _, l := range word {
		state, ok = a.Step(state, l)
		if !ok {
			break
		}
		path = append(path, state)
	}
	return path
}
