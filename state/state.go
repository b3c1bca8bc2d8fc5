package state

import (
	"github.com/genarena/genarena/arena"
	"github.com/genarena/genarena/sizeof"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/xxh3"
)

// K identifies one registered kind of a state.
type K uint32

// T is a collection of generational arenas, one per registered kind, with
// kind-tagged addresses that can be stored, checked, and freed without
// knowing the slot type. The zero value is ready for Register.
//
// None of the methods are safe to be called concurrently.
type T struct {
	_ [0]func() // no equality

	groups []group
	byTag  map[uint64]K
}

type group interface {
	name() string
	count() int
	capacity() int
	size() uint64
	alive(idx uint32, gen uint64) bool
	release(idx uint32, gen uint64) error
	audit() error
}

// Kinds returns how many kinds are registered.
func (t *T) Kinds() int { return len(t.groups) }

// Name returns the name a kind was registered under.
func (t *T) Name(k K) string {
	if uint(k) < uint(len(t.groups)) {
		return t.groups[k].name()
	}
	return ""
}

// Lookup returns the kind registered under name.
func (t *T) Lookup(name string) (K, bool) {
	k, ok := t.byTag[xxh3.HashString(name)]
	return k, ok
}

// Len returns the number of live slots across every kind.
func (t *T) Len() (n int) {
	for _, g := range t.groups {
		n += g.count()
	}
	return n
}

// Cap returns the total number of slots across every kind.
func (t *T) Cap() (n int) {
	for _, g := range t.groups {
		n += g.capacity()
	}
	return n
}

func (t *T) Size() uint64 {
	gs := uint64(0)
	for _, g := range t.groups {
		gs += g.size()
	}
	return 0 +
		/* groups */ sizeof.Slice(t.groups) + gs +
		/* byTag  */ sizeof.Map(t.byTag) +
		0
}

// Alive reports whether a still resolves.
func (t *T) Alive(a A) bool {
	return a.t == t && uint(a.k) < uint(len(t.groups)) && t.groups[a.k].alive(a.idx, a.gen)
}

// Free releases the slot a addresses, dispatching on its kind tag. Addresses
// from another state and addresses that no longer resolve fail with
// arena.ErrInvalidHandle.
func (t *T) Free(a A) error {
	if a.t != t || uint(a.k) >= uint(len(t.groups)) {
		return arena.ErrInvalidHandle
	}
	return t.groups[a.k].release(a.idx, a.gen)
}

// Audit checks the bookkeeping of every kind's arena.
func (t *T) Audit() error {
	for _, g := range t.groups {
		if err := g.audit(); err != nil {
			return errs.Errorf("kind %q: %w", g.name(), err)
		}
	}
	return nil
}
