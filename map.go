package automaton

// Hashable is a key usable in HashMap. Keys with Equals true must have the same Hash.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

const loadFactor = 0.75

// HashMap is a chained hash table keyed by Hashable values. Entries are never removed.
type HashMap[T any] struct {
	buckets []*entry[T]
	size    int
	mask    uint64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity int
}

type OptionsHashMap func(*optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	o := &optionsHashMap{
		capacity: 4,
	}
	for _, fn := range opts {
		fn(o)
	}

	// bucket count is a power of two
	realCap := 1
	for realCap < o.capacity {
		realCap <<= 1
	}
	o.capacity = realCap
	return o
}

// NewHashMap creates a hash table. The capacity is rounded up to a power of two.
func NewHashMap[T any](opts ...OptionsHashMap) *HashMap[T] {
	o := newOptionsHashMap(opts...)
	return &HashMap[T]{
		buckets: make([]*entry[T], o.capacity),
		mask:    uint64(o.capacity - 1),
	}
}

func (m *HashMap[T]) find(key Hashable) *entry[T] {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// SetIfAbsent stores value only when key is missing. It returns the value held for key
// afterwards and whether it was inserted by this call.
func (m *HashMap[T]) SetIfAbsent(key Hashable, value T) (T, bool) {
	if e := m.find(key); e != nil {
		return e.value, false
	}
	m.insert(key, value)
	return value, true
}

func (m *HashMap[T]) insert(key Hashable, value T) {
	index := key.Hash() & m.mask
	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > loadFactor {
		m.resize()
	}
}

// Get returns the value stored for key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	var empty T
	return empty, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & newMask
			e.next = newBuckets[index]
			newBuckets[index] = e
			e = next
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}
