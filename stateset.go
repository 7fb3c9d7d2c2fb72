package automaton

import (
	"fmt"
	"slices"
	"strings"
)

var _ Hashable = &StateSet{}

// StateSet is a set of states. Equality only depends on membership, never on insertion order.
type StateSet struct {
	// ascending, no duplicates
	states      []int
	hashUpdated bool
	hashCode    uint64
}

// NewStateSet returns an empty set with room for capacity states.
func NewStateSet(capacity int) *StateSet {
	return &StateSet{states: make([]int, 0, capacity)}
}

// NewStateSetOf returns the set of the given states.
func NewStateSetOf(states ...int) *StateSet {
	s := NewStateSet(len(states))
	for _, e := range states {
		s.Put(e)
	}
	return s
}

// Put adds state to the set. It reports whether the set changed.
func (s *StateSet) Put(state int) bool {
	i, found := slices.BinarySearch(s.states, state)
	if found {
		return false
	}
	s.states = slices.Insert(s.states, i, state)
	s.hashUpdated = false
	return true
}

func (s *StateSet) Contains(state int) bool {
	_, found := slices.BinarySearch(s.states, state)
	return found
}

func (s *StateSet) Size() int {
	return len(s.states)
}

// States Members in ascending order. The slice must not be modified.
func (s *StateSet) States() []int {
	return s.states
}

func (s *StateSet) Copy() *StateSet {
	return &StateSet{
		states:      slices.Clone(s.states),
		hashUpdated: s.hashUpdated,
		hashCode:    s.hashCode,
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.states))
	for _, e := range s.states {
		s.hashCode += mix32(e)
	}
	s.hashCode = mix64(s.hashCode)
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	o, ok := other.(*StateSet)
	if !ok || o == nil || s == nil {
		return ok && s == o
	}
	return slices.Equal(s.states, o.states)
}

func (s *StateSet) String() string {
	b := new(strings.Builder)
	b.WriteByte('{')
	for i, e := range s.states {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%d", e)
	}
	b.WriteByte('}')
	return b.String()
}

// StateSetList numbers distinct state sets in order of insertion.
type StateSetList struct {
	sets  []*StateSet
	index *HashMap[int]
}

func NewStateSetList() *StateSetList {
	return &StateSetList{
		index: NewHashMap[int](WithCapacity(16)),
	}
}

// Add inserts s unless an equal set is already present. It returns the position of the set
// and whether it was added by this call. The list keeps its own copy of s.
func (l *StateSetList) Add(s *StateSet) (int, bool) {
	if i, ok := l.index.Get(s); ok {
		return i, false
	}
	return l.Append(s), true
}

// Append inserts s at the end even if an equal set is already present. Lookups through Add keep
// returning the first occurrence.
func (l *StateSetList) Append(s *StateSet) int {
	c := s.Copy()
	i := len(l.sets)
	l.sets = append(l.sets, c)
	l.index.SetIfAbsent(c, i)
	return i
}

// Index Position of the first set equal to s.
func (l *StateSetList) Index(s *StateSet) (int, bool) {
	return l.index.Get(s)
}

func (l *StateSetList) Get(i int) *StateSet {
	return l.sets[i]
}

func (l *StateSetList) Len() int {
	return len(l.sets)
}

func (l *StateSetList) String() string {
	b := new(strings.Builder)
	for i, s := range l.sets {
		fmt.Fprintf(b, "%d: %s\n", i, s)
	}
	return b.String()
}
