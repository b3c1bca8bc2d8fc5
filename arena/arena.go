package arena

import (
	"math"

	"github.com/genarena/genarena/bitmap"
	"github.com/genarena/genarena/sizeof"
)

// DefaultCapacity is used by New when the requested capacity is not positive.
const DefaultCapacity = 16

type slot[V any] struct {
	gen uint64
	val V
}

// T is a fixed capacity pool of V slots addressed by generational handles.
// Freed slots are reused in LIFO order, and a reused slot's generation bump
// keeps handles issued before the free from resolving.
//
// None of the methods are safe to be called concurrently.
type T[V any] struct {
	_ [0]func() // no equality

	slots []slot[V]
	occ   []bitmap.T64
	free  []uint32
	live  int
}

// New returns an arena with room for capacity values. Capacities that are
// not positive get DefaultCapacity. Slot storage is allocated up front and
// never grows or moves.
func New[V any](capacity int) *T[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	} else if uint64(capacity) > math.MaxUint32 {
		capacity = math.MaxUint32
	}

	t := &T[V]{
		slots: make([]slot[V], capacity),
		occ:   make([]bitmap.T64, (capacity+63)/64),
		free:  make([]uint32, capacity),
	}

	// seeded so that the first pops come off in index order
	for i := range t.free {
		t.free[i] = uint32(capacity - 1 - i)
	}

	return t
}

// Allocate moves v into a free slot and returns its handle, failing with
// ErrCapacityExhausted when every slot is live. Freeing any handle makes the
// next Allocate succeed again.
func (t *T[V]) Allocate(v V) (H[V], error) {
	n := len(t.free)
	if n == 0 {
		return H[V]{}, ErrCapacityExhausted
	}

	idx := t.free[n-1]
	t.free = t.free[:n-1]

	s := &t.slots[idx]
	s.val = v
	t.occ[idx>>6].SetIdx(uint(idx))
	t.live++

	return H[V]{t: t, idx: idx, gen: s.gen}, nil
}

// Get returns a pointer to the value addressed by h. The pointer stays valid
// until the slot is freed. Get returns false when h was not issued by this
// arena, when its slot was freed, and when the slot was reused by a later
// Allocate.
func (t *T[V]) Get(h H[V]) (*V, bool) {
	if h.t != t || uint(h.idx) >= uint(len(t.slots)) {
		return nil, false
	}
	if !t.occ[h.idx>>6].HasIdx(uint(h.idx)) {
		return nil, false
	}
	if s := &t.slots[h.idx]; s.gen == h.gen {
		return &s.val, true
	}
	return nil, false
}

// Free releases the slot addressed by h, zeroes the value so the arena does
// not pin whatever it referenced, and bumps the generation so outstanding
// handles to the slot stop resolving. Handles that do not resolve, freed
// ones included, fail with ErrInvalidHandle.
func (t *T[V]) Free(h H[V]) error {
	if h.t != t || uint(h.idx) >= uint(len(t.slots)) {
		return ErrInvalidHandle
	}
	if !t.occ[h.idx>>6].HasIdx(uint(h.idx)) {
		return ErrInvalidHandle
	}

	s := &t.slots[h.idx]
	if s.gen != h.gen {
		return ErrInvalidHandle
	}

	var zero V
	s.val = zero
	s.gen++

	t.occ[h.idx>>6].ClearIdx(uint(h.idx))
	t.free = append(t.free, h.idx)
	t.live--

	return nil
}

// Len returns the number of live slots.
func (t *T[V]) Len() int { return t.live }

// Cap returns the total number of slots.
func (t *T[V]) Cap() int { return len(t.slots) }

func (t *T[V]) Size() uint64 {
	return 0 +
		/* slots */ sizeof.Slice(t.slots) +
		/* occ   */ sizeof.Slice(t.occ) +
		/* free  */ 24 + 4*uint64(cap(t.free)) +
		/* live  */ 8 +
		0
}
