package state

import (
	"iter"

	"github.com/genarena/genarena/arena"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/xxh3"
)

// G is the typed face of one registered kind: it allocates values into the
// kind's arena and resolves addresses back to them.
type G[V any] struct {
	t  *T
	k  K
	nm string
	ar *arena.T[V]
}

// Register adds a kind named name to t, backed by an arena with the given
// capacity (capacities that are not positive get arena.DefaultCapacity),
// and returns its typed group. Registering a name twice fails.
func Register[V any](t *T, name string, capacity int) (*G[V], error) {
	tg := xxh3.HashString(name)
	if k, ok := t.byTag[tg]; ok {
		return nil, errs.Errorf("state: kind %q already registered as %d", name, k)
	}
	if t.byTag == nil {
		t.byTag = make(map[uint64]K)
	}

	g := &G[V]{
		t:  t,
		k:  K(len(t.groups)),
		nm: name,
		ar: arena.New[V](capacity),
	}
	t.groups = append(t.groups, g)
	t.byTag[tg] = g.k

	return g, nil
}

// Kind returns the kind this group was registered as.
func (g *G[V]) Kind() K { return g.k }

// Name returns the name this group was registered under.
func (g *G[V]) Name() string { return g.nm }

// Len returns the number of live slots of the kind.
func (g *G[V]) Len() int { return g.ar.Len() }

// Cap returns the total number of slots of the kind.
func (g *G[V]) Cap() int { return g.ar.Cap() }

// Allocate moves v into a free slot of the kind and returns its address,
// failing with arena.ErrCapacityExhausted when every slot is live.
func (g *G[V]) Allocate(v V) (A, error) {
	h, err := g.ar.Allocate(v)
	if err != nil {
		return A{}, err
	}
	return A{t: g.t, k: g.k, idx: h.Index(), gen: h.Generation()}, nil
}

// Get returns a pointer to the value a addresses. It returns false when a
// addresses another state or kind, and when its slot was freed or reused.
func (g *G[V]) Get(a A) (*V, bool) {
	if a.t != g.t || a.k != g.k {
		return nil, false
	}
	return g.ar.Get(arena.Raw(g.ar, a.idx, a.gen))
}

// Free releases the slot a addresses, like the state's Free.
func (g *G[V]) Free(a A) error {
	if a.t != g.t || a.k != g.k {
		return arena.ErrInvalidHandle
	}
	return g.ar.Free(arena.Raw(g.ar, a.idx, a.gen))
}

// All yields the index and a pointer to the value of every live slot of the
// kind in index order. The kind must not be mutated during the walk.
func (g *G[V]) All() iter.Seq2[uint32, *V] { return g.ar.All() }

// Addresses yields a live address for every live slot of the kind in index
// order. The kind must not be mutated during the walk.
func (g *G[V]) Addresses() iter.Seq[A] {
	return func(yield func(A) bool) {
		for h := range g.ar.Handles() {
			if !yield(A{t: g.t, k: g.k, idx: h.Index(), gen: h.Generation()}) {
				return
			}
		}
	}
}

func (g *G[V]) name() string  { return g.nm }
func (g *G[V]) count() int    { return g.ar.Len() }
func (g *G[V]) capacity() int { return g.ar.Cap() }
func (g *G[V]) audit() error  { return g.ar.Audit() }

func (g *G[V]) size() uint64 {
	return 0 +
		/* t  */ 8 +
		/* k  */ 4 +
		/* nm */ 16 + uint64(len(g.nm)) +
		/* ar */ 8 + g.ar.Size() +
		0
}

func (g *G[V]) alive(idx uint32, gen uint64) bool {
	_, ok := g.ar.Get(arena.Raw(g.ar, idx, gen))
	return ok
}

func (g *G[V]) release(idx uint32, gen uint64) error {
	return g.ar.Free(arena.Raw(g.ar, idx, gen))
}
