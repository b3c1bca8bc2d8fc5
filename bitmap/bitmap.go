package bitmap

import (
	"fmt"
	"math/bits"
)

type T64 struct{ b uint64 }

func New64(v uint64) T64 { return T64{v} }

func (b *T64) SetIdx(idx uint)     { b.b |= 1 << (idx & 63) }
func (b *T64) ClearIdx(idx uint)   { b.b &^= 1 << (idx & 63) }
func (b *T64) ClearLowest()        { b.b &= b.b - 1 }
func (b T64) HasIdx(idx uint) bool { return b.b&(1<<(idx&63)) > 0 }
func (b T64) Uint64() uint64       { return b.b }
func (b T64) Empty() bool          { return b.b == 0 }
func (b T64) Count() int           { return bits.OnesCount64(b.b) }
func (b T64) Lowest() uint         { return uint(bits.TrailingZeros64(b.b)) % 64 }
func (b T64) String() string       { return fmt.Sprintf("%064b", b.b) }
