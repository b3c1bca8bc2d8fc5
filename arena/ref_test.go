package arena

import (
	"errors"
	"testing"

	"github.com/zeebo/assert"
)

func TestHandle(t *testing.T) {
	a := New[int](4)

	h, err := a.Allocate(7)
	assert.NoError(t, err)
	assert.Equal(t, h.String(), "(handle 0@0)")

	v, ok := h.Get()
	assert.That(t, ok)
	assert.Equal(t, *v, 7)
	*v = 8

	v, ok = a.Get(h)
	assert.That(t, ok)
	assert.Equal(t, *v, 8)

	assert.That(t, h.Alive())
	assert.NoError(t, h.Free())
	assert.That(t, !h.Alive())
	assert.That(t, errors.Is(h.Free(), ErrInvalidHandle))

	var zero H[int]
	_, ok = zero.Get()
	assert.That(t, !ok)
	assert.That(t, !zero.Alive())
	assert.That(t, errors.Is(zero.Free(), ErrInvalidHandle))
}

func TestHandleRaw(t *testing.T) {
	a := New[int](4)

	h, err := a.Allocate(7)
	assert.NoError(t, err)

	v, ok := Raw(a, h.Index(), h.Generation()).Get()
	assert.That(t, ok)
	assert.Equal(t, *v, 7)

	_, ok = Raw(a, h.Index(), h.Generation()+1).Get()
	assert.That(t, !ok)

	_, ok = Raw(a, 1000, 0).Get()
	assert.That(t, !ok)
	assert.That(t, errors.Is(Raw(a, 1000, 0).Free(), ErrInvalidHandle))
}

func TestRef(t *testing.T) {
	t.Run("ReleaseLast", func(t *testing.T) {
		a := New[int](4)

		h, err := a.Allocate(1)
		assert.NoError(t, err)

		r := Own(h)
		v, ok := r.Get()
		assert.That(t, ok)
		assert.Equal(t, *v, 1)
		assert.Equal(t, r.Handle().Index(), h.Index())

		assert.NoError(t, r.Release())
		assert.That(t, !h.Alive())
		assert.Equal(t, a.Len(), 0)

		assert.That(t, errors.Is(r.Release(), ErrInvalidHandle))
	})

	t.Run("CloneKeepsAlive", func(t *testing.T) {
		a := New[int](4)

		h, err := a.Allocate(2)
		assert.NoError(t, err)

		r1 := Own(h)
		r2 := r1.Clone()
		r3 := r2.Clone()

		assert.NoError(t, r1.Release())
		assert.That(t, h.Alive())
		assert.NoError(t, r3.Release())
		assert.That(t, h.Alive())

		assert.NoError(t, r2.Release())
		assert.That(t, !h.Alive())
		assert.That(t, !r2.Alive())
	})

	t.Run("Remove", func(t *testing.T) {
		a := New[int](4)

		h, err := a.Allocate(3)
		assert.NoError(t, err)

		r1 := Own(h)
		r2 := r1.Clone()

		assert.NoError(t, r1.Remove())
		assert.That(t, !h.Alive())
		assert.Equal(t, a.Len(), 0)

		assert.That(t, errors.Is(r2.Release(), ErrInvalidHandle))
		assert.That(t, errors.Is(r2.Remove(), ErrInvalidHandle))
		assert.That(t, errors.Is(r2.Clone().Release(), ErrInvalidHandle))
	})

	t.Run("Dead", func(t *testing.T) {
		a := New[int](4)

		h, err := a.Allocate(4)
		assert.NoError(t, err)

		r := Own(h)
		assert.NoError(t, r.Release())

		c := r.Clone()
		assert.That(t, errors.Is(c.Release(), ErrInvalidHandle))

		var zero R[int]
		assert.That(t, errors.Is(zero.Release(), ErrInvalidHandle))
		assert.That(t, errors.Is(zero.Remove(), ErrInvalidHandle))
		assert.That(t, !zero.Clone().Alive())
	})
}
