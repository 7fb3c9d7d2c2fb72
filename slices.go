package automaton

// grow extends s to size, filling new slots with fill.
func grow[T any](s []T, size int, fill T) []T {
	old := len(s)
	if old >= size {
		return s
	}
	s = append(s, make([]T, size-old)...)
	for i := old; i < size; i++ {
		s[i] = fill
	}
	return s
}
