package arena

import "iter"

// All yields the index and a pointer to the value of every live slot in
// index order. The arena must not be mutated during the walk.
func (t *T[V]) All() iter.Seq2[uint32, *V] {
	return func(yield func(uint32, *V) bool) {
		for w := range t.occ {
			for bm := t.occ[w]; !bm.Empty(); bm.ClearLowest() {
				idx := uint32(w)<<6 | uint32(bm.Lowest())
				if !yield(idx, &t.slots[idx].val) {
					return
				}
			}
		}
	}
}

// Handles yields a live handle for every live slot in index order. The
// arena must not be mutated during the walk.
func (t *T[V]) Handles() iter.Seq[H[V]] {
	return func(yield func(H[V]) bool) {
		for w := range t.occ {
			for bm := t.occ[w]; !bm.Empty(); bm.ClearLowest() {
				idx := uint32(w)<<6 | uint32(bm.Lowest())
				if !yield(H[V]{t: t, idx: idx, gen: t.slots[idx].gen}) {
					return
				}
			}
		}
	}
}
