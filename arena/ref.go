package arena

// R owns a slot through its handle and frees it when the last clone is
// released. Clones share one count, so the slot lives exactly as long as
// some clone does.
type R[V any] struct {
	h    H[V]
	refs *int32
}

// Own wraps h in an owning reference with a count of one. Call it once per
// allocation: two owners built from the same handle count independently and
// the second release of the slot fails.
func Own[V any](h H[V]) R[V] {
	refs := int32(1)
	return R[V]{h: h, refs: &refs}
}

// Clone returns r with the shared count raised by one. Clones of a dead
// reference stay dead.
func (r R[V]) Clone() R[V] {
	if r.refs != nil && *r.refs > 0 {
		*r.refs++
	}
	return r
}

// Release drops one reference and frees the slot when the count reaches
// zero. Releasing a dead reference fails with ErrInvalidHandle.
func (r R[V]) Release() error {
	if r.refs == nil || *r.refs <= 0 {
		return ErrInvalidHandle
	}
	*r.refs--
	if *r.refs > 0 {
		return nil
	}
	return r.h.Free()
}

// Remove frees the slot now, no matter how many clones remain, and poisons
// the count so their releases fail instead of double freeing.
func (r R[V]) Remove() error {
	if r.refs == nil || *r.refs <= 0 {
		return ErrInvalidHandle
	}
	*r.refs = -1
	return r.h.Free()
}

// Handle returns the handle r owns.
func (r R[V]) Handle() H[V] { return r.h }

// Get resolves the owned slot.
func (r R[V]) Get() (*V, bool) { return r.h.Get() }

// Alive reports whether the owned slot still resolves.
func (r R[V]) Alive() bool { return r.h.Alive() }
