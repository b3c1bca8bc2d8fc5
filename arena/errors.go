package arena

import "errors"

var (
	// ErrCapacityExhausted is returned by Allocate when no free slot remains.
	ErrCapacityExhausted = errors.New("arena: capacity exhausted")

	// ErrInvalidHandle is returned by Free for handles that do not resolve:
	// zero handles, handles from another arena, and handles whose slot was
	// already freed or reused.
	ErrInvalidHandle = errors.New("arena: invalid handle")
)
