package virtual

// Memo caches the results of a computation by key. Both policies return the
// same value for the same key; they differ only in how much they retain.
type Memo[K comparable, V any] interface {
	GetOrCompute(key K, compute func() V) V
	Len() int
	Reset()
}

// NewMemo picks the policy: unbounded when perfMode is set, single slot otherwise.
func NewMemo[K comparable, V any](perfMode bool) Memo[K, V] {
	if perfMode {
		return NewUnboundedMemo[K, V]()
	}
	return NewSingleSlotMemo[K, V]()
}

type unboundedMemo[K comparable, V any] struct {
	entries map[K]V
}

// NewUnboundedMemo keeps every result it has computed.
func NewUnboundedMemo[K comparable, V any]() Memo[K, V] {
	return &unboundedMemo[K, V]{entries: make(map[K]V)}
}

func (m *unboundedMemo[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := m.entries[key]; ok {
		return v
	}
	v := compute()
	m.entries[key] = v
	return v
}

func (m *unboundedMemo[K, V]) Len() int { return len(m.entries) }
func (m *unboundedMemo[K, V]) Reset()   { clear(m.entries) }

type singleSlotMemo[K comparable, V any] struct {
	key   K
	value V
	ok    bool
}

// NewSingleSlotMemo keeps only the most recent result.
func NewSingleSlotMemo[K comparable, V any]() Memo[K, V] {
	return &singleSlotMemo[K, V]{}
}

func (m *singleSlotMemo[K, V]) GetOrCompute(key K, compute func() V) V {
	if m.ok && m.key == key {
		return m.value
	}
	m.key, m.value, m.ok = key, compute(), true
	return m.value
}

func (m *singleSlotMemo[K, V]) Len() int {
	if m.ok {
		return 1
	}
	return 0
}

func (m *singleSlotMemo[K, V]) Reset() {
	var zero singleSlotMemo[K, V]
	*m = zero
}
