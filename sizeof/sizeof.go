package sizeof

import "unsafe"

func Slice[T any](v []T) uint64 {
	return 24 + uint64(unsafe.Sizeof(*new(T)))*uint64(len(v))
}

func Map[K comparable, V any](m map[K]V) uint64 {
	return 8 + (uint64(unsafe.Sizeof(*new(K)))+uint64(unsafe.Sizeof(*new(V))))*uint64(len(m))
}
