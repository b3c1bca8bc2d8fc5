package state

import (
	"fmt"

	"github.com/genarena/genarena/arena"
)

// A addresses one slot of one kind within the state that issued it. It is
// kind-tagged but untyped: typed access goes through the kind's G. The zero
// A resolves to nothing.
type A struct {
	t   *T
	k   K
	idx uint32
	gen uint64
}

func (a A) Kind() K            { return a.k }
func (a A) Index() uint32      { return a.idx }
func (a A) Generation() uint64 { return a.gen }

// Alive reports whether a still resolves.
func (a A) Alive() bool { return a.t != nil && a.t.Alive(a) }

// Free releases the slot a addresses.
func (a A) Free() error {
	if a.t == nil {
		return arena.ErrInvalidHandle
	}
	return a.t.Free(a)
}

func (a A) String() string {
	if a.t == nil {
		return "(addr nil)"
	}
	return fmt.Sprintf("(addr %s %d@%d)", a.t.Name(a.k), a.idx, a.gen)
}
