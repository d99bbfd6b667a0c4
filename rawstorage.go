package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// RawStorage owns a slab of element slots and knows nothing about which
// of them hold live values. It is the allocation half of Vector: it
// allocates, addresses, swaps, and releases storage, while all element
// lifetime bookkeeping lives in Vector.
//
// A RawStorage must have a single owner. Copying one would alias the
// same slab under two owners, so ownership moves only through Swap or
// Release. The zero value is the null storage: no slab, capacity 0.
type RawStorage[T any] struct {
	base     unsafe.Pointer // first slot, nil when capacity is 0
	capacity int
	elemSize uintptr
}

// NewRawStorage allocates storage for exactly capacity elements of T.
// A capacity of 0 performs no allocation and returns the null storage.
// Negative capacities and capacities whose byte size cannot be
// addressed panic; a genuine allocation failure inside the runtime is
// propagated as the runtime's own fatal error.
func NewRawStorage[T any](capacity int) RawStorage[T] {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if capacity < 0 {
		panic(fmt.Sprintf("vector: negative capacity %d", capacity))
	}
	if capacity == 0 {
		return RawStorage[T]{elemSize: elemSize}
	}
	if elemSize > 0 && uintptr(capacity) > uintptr(math.MaxInt)/elemSize {
		panic(fmt.Sprintf("vector: capacity %d exceeds addressable memory", capacity))
	}
	slab := make([]T, capacity)
	return RawStorage[T]{
		base:     unsafe.Pointer(&slab[0]),
		capacity: capacity,
		elemSize: elemSize,
	}
}

// At returns the address of slot i. The slot may be dead: reading a
// dead slot yields meaningless data. Panics unless 0 <= i < Cap().
func (s *RawStorage[T]) At(i int) *T {
	if i < 0 || i >= s.capacity {
		panic(fmt.Sprintf("vector: slot %d out of range [0, %d)", i, s.capacity))
	}
	return (*T)(unsafe.Add(s.base, uintptr(i)*s.elemSize))
}

// Slice returns a view over slots [i, j). Like At, the view does not
// distinguish live slots from dead ones; callers bound their own reads.
// Panics unless 0 <= i <= j <= Cap().
func (s *RawStorage[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > s.capacity {
		panic(fmt.Sprintf("vector: slot range [%d, %d) out of range [0, %d]", i, j, s.capacity))
	}
	if i == j {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Add(s.base, uintptr(i)*s.elemSize)), j-i)
}

// Cap returns the number of element slots the slab can hold.
func (s *RawStorage[T]) Cap() int {
	return s.capacity
}

// IsNull reports whether the storage holds no slab.
func (s *RawStorage[T]) IsNull() bool {
	return s.base == nil
}

// Swap exchanges the slabs and capacities of two storages. This is the
// only way ownership moves between instances. Never fails.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.base, other.base = other.base, s.base
	s.capacity, other.capacity = other.capacity, s.capacity
	s.elemSize, other.elemSize = other.elemSize, s.elemSize
}

// Release drops the slab and returns the storage to the null state.
// The memory is reclaimed by the garbage collector once no outside
// pointers into it remain. Safe to call on the null storage.
func (s *RawStorage[T]) Release() {
	s.base = nil
	s.capacity = 0
}

// moveSlots moves n elements between slabs: src slots [si, si+n) are
// copied into dst slots [di, di+n) and the vacated source slots are
// zeroed so the collector can reclaim anything they referenced.
func moveSlots[T any](dst, src *RawStorage[T], di, si, n int) {
	if n == 0 {
		return
	}
	from := src.Slice(si, si+n)
	copy(dst.Slice(di, di+n), from)
	clear(from)
}
