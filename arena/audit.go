package arena

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"
)

// Audit checks the arena's bookkeeping: every index must be exactly one of
// free or occupied, the free list must not repeat, and the live count must
// match the occupancy words. It exists for tests and debugging and costs a
// pass over every slot.
func (t *T[V]) Audit() error {
	free := roaring.New()
	for _, idx := range t.free {
		if uint(idx) >= uint(len(t.slots)) {
			return errs.Errorf("free list holds out of range index %d (cap %d)", idx, len(t.slots))
		}
		if free.Contains(idx) {
			return errs.Errorf("free list holds index %d twice", idx)
		}
		free.Add(idx)
	}

	occ, count := roaring.New(), 0
	for w, bm := range t.occ {
		count += bm.Count()
		for ; !bm.Empty(); bm.ClearLowest() {
			occ.Add(uint32(w)<<6 | uint32(bm.Lowest()))
		}
	}

	if !occ.IsEmpty() && uint(occ.Maximum()) >= uint(len(t.slots)) {
		return errs.Errorf("occupancy holds out of range index %d (cap %d)", occ.Maximum(), len(t.slots))
	}
	if both := roaring.And(free, occ); !both.IsEmpty() {
		return errs.Errorf("index %d is both free and occupied", both.Minimum())
	}
	if all := roaring.Or(free, occ); all.GetCardinality() != uint64(len(t.slots)) {
		return errs.Errorf("free and occupied cover %d of %d slots", all.GetCardinality(), len(t.slots))
	}
	if t.live != count {
		return errs.Errorf("live count %d does not match %d occupied slots", t.live, count)
	}

	return nil
}
