package automaton

import "errors"

var (
	ErrStateOutOfRange   = errors.New("state out of range")
	ErrLetterOutOfRange  = errors.New("letter out of range")
	ErrDictLength        = errors.New("dictionary length does not match the alphabet")
	ErrDictNotInvertible = errors.New("dictionary is not invertible")
	ErrNotDeterministic  = errors.New("result would not be deterministic")

	// ErrTooComplex is returned when the subset construction discovers more states than the
	// configured work limit.
	ErrTooComplex = errors.New("automaton too complex to determinize")
)
