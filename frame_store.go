package vgui

import "sync"

// Cleanable is a store that drops entries not used in the previous frame.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the frame counter and cleans every registered store.
// Context.Reset calls it once per frame.
func NextFrame() {
	registryMu.Lock()
	currentFrame++
	frame := currentFrame
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(frame)
	}
}

// CurrentFrameCount returns the global frame counter.
func CurrentFrameCount() uint64 {
	registryMu.Lock()
	defer registryMu.Unlock()
	return currentFrame
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore holds per-widget state of type T. An entry that is not
// touched with Get or Set for a whole frame is evicted, and the store's
// evict hook, when set, runs for it. Widgets that mount engines use the hook
// to unmount them:
//
//	var gridStore = vgui.NewFrameStoreWithEvict(func(_ vgui.ID, s *gridState) {
//	    s.close()
//	})
type FrameStore[T any] struct {
	mu     sync.RWMutex
	states map[ID]*stateEntry[T]
	evict  func(ID, *T)
}

// NewFrameStore creates and registers a store. Call it from a package-level var.
func NewFrameStore[T any]() *FrameStore[T] {
	return NewFrameStoreWithEvict[T](nil)
}

// NewFrameStoreWithEvict creates and registers a store whose evicted entries
// are passed to evict.
func NewFrameStoreWithEvict[T any](evict func(ID, *T)) *FrameStore[T] {
	s := &FrameStore[T]{states: make(map[ID]*stateEntry[T]), evict: evict}
	registerStore(s)
	return s
}

// Get returns the state of id, creating it from def on first use, and marks
// it as used this frame.
func (s *FrameStore[T]) Get(id ID, def T) *T {
	v, _ := s.GetOrInit(id, func() T { return def })
	return v
}

// GetOrInit is Get with a lazily built default. created reports whether
// init ran, which is the frame the widget mounts.
func (s *FrameStore[T]) GetOrInit(id ID, init func() T) (v *T, created bool) {
	frame := CurrentFrameCount()
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.states[id]; ok {
		e.lastFrame = frame
		return &e.value, false
	}
	e := &stateEntry[T]{value: init(), lastFrame: frame}
	s.states[id] = e
	return &e.value, true
}

// GetIfExists returns the state of id without creating it or marking it used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.states[id]; ok {
		return &e.value
	}
	return nil
}

// Set stores value for id and marks it used.
func (s *FrameStore[T]) Set(id ID, value T) {
	frame := CurrentFrameCount()
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.states[id]; ok {
		e.value, e.lastFrame = value, frame
		return
	}
	s.states[id] = &stateEntry[T]{value: value, lastFrame: frame}
}

// Delete removes id and runs the evict hook for it.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	e, ok := s.states[id]
	delete(s.states, id)
	s.mu.Unlock()
	if ok && s.evict != nil {
		s.evict(id, &e.value)
	}
}

// Cleanup evicts entries not used in the frame before frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	if frame == 0 {
		return
	}
	threshold := frame - 1
	var stale map[ID]*stateEntry[T]
	s.mu.Lock()
	for id, e := range s.states {
		if e.lastFrame < threshold {
			if stale == nil {
				stale = make(map[ID]*stateEntry[T])
			}
			stale[id] = e
			delete(s.states, id)
		}
	}
	s.mu.Unlock()
	if s.evict == nil {
		return
	}
	for id, e := range stale {
		s.evict(id, &e.value)
	}
}

func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear evicts every entry.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	old := s.states
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
	if s.evict == nil {
		return
	}
	for id, e := range old {
		s.evict(id, &e.value)
	}
}
