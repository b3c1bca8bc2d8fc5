package arena

import "fmt"

// H addresses one slot of the arena that issued it. Handles are small, copy
// freely, and outliving the slot is fine: a handle whose slot was freed or
// reused just stops resolving. The zero H resolves to nothing.
type H[V any] struct {
	t   *T[V]
	idx uint32
	gen uint64
}

// Raw reconstructs a handle into t from parts saved off Index and Generation
// calls. Handles built from made up parts fail validation like any other
// stale handle.
func Raw[V any](t *T[V], idx uint32, gen uint64) H[V] {
	return H[V]{t: t, idx: idx, gen: gen}
}

func (h H[V]) Index() uint32      { return h.idx }
func (h H[V]) Generation() uint64 { return h.gen }

// Get resolves h against the arena that issued it.
func (h H[V]) Get() (*V, bool) {
	if h.t == nil {
		return nil, false
	}
	return h.t.Get(h)
}

// Free releases the slot addressed by h.
func (h H[V]) Free() error {
	if h.t == nil {
		return ErrInvalidHandle
	}
	return h.t.Free(h)
}

// Alive reports whether h still resolves.
func (h H[V]) Alive() bool {
	_, ok := h.Get()
	return ok
}

func (h H[V]) String() string { return fmt.Sprintf("(handle %d@%d)", h.idx, h.gen) }
