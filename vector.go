package vector

import (
	"fmt"
	"iter"
)

// Vector is a growable array of T built on one owned RawStorage slab.
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are dead
// and their contents are meaningless. Not goroutine-safe: callers
// serialize access themselves.
type Vector[T any] struct {
	data RawStorage[T]
	size int

	// reallocation counters, see metrics.go
	grows int
	moved int
}

// Cloner is implemented by element types whose values need deep copies.
// When the element type implements Cloner over itself, Clone and
// CopyFrom duplicate each element through Clone instead of assignment.
// The method must be on the value receiver to be picked up.
type Cloner[T any] interface {
	Clone() T
}

// cloneFunc resolves the per-element copy for T once per operation:
// Clone when T implements Cloner[T], nil (plain assignment) otherwise.
func cloneFunc[T any]() func(T) T {
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		return func(x T) T { return any(x).(Cloner[T]).Clone() }
	}
	return nil
}

// assignSlots copies elements from src into dst, deep-copying through
// clone when the element type provides one.
func assignSlots[T any](dst, src []T, clone func(T) T) {
	if clone == nil {
		copy(dst, src)
		return
	}
	for i := range src {
		dst[i] = clone(src[i])
	}
}

// New creates an empty vector with no storage. The first growing
// operation allocates.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize creates a vector holding n live zero values of T, with
// capacity exactly n.
func NewWithSize[T any](n int) *Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	// a fresh slab is zero-initialized by allocation, so the n
	// elements are already constructed
	return &Vector[T]{data: NewRawStorage[T](n), size: n}
}

// NewWithCapacity creates an empty vector with storage for n elements
// already allocated.
func NewWithCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{data: NewRawStorage[T](n)}
}

// Of creates a vector holding the given items, with capacity exactly
// len(items). The items are copied; the caller's slice is not adopted.
func Of[T any](items ...T) *Vector[T] {
	v := &Vector[T]{data: NewRawStorage[T](len(items)), size: len(items)}
	copy(v.data.Slice(0, len(items)), items)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of elements the vector can hold before the
// next reallocation.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns the address of element i. The address stays valid only
// until the next reallocating or shifting operation. Panics unless
// 0 <= i < Len().
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
	return v.data.At(i)
}

// Slice returns the live elements [0, Len()) as a contiguous view into
// the vector's storage. The view is valid until the next mutating
// operation; writing through it writes the vector's elements.
func (v *Vector[T]) Slice() []T {
	return v.data.Slice(0, v.size)
}

// All returns an iterator over index/element pairs of the live prefix,
// in order. The vector must not be mutated while iterating.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data.Slice(0, v.size) {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Clone returns a deep copy with its own storage, sized to the live
// element count rather than the source capacity. Elements are copied
// through Cloner when T implements it.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{data: NewRawStorage[T](v.size), size: v.size}
	assignSlots(c.data.Slice(0, v.size), v.data.Slice(0, v.size), cloneFunc[T]())
	return c
}

// CopyFrom makes v an element-wise copy of src. When src does not fit
// in the current slab a complete copy is built first and swapped in,
// so a failure while copying leaves v unchanged. Otherwise the slab is
// reused: the common prefix is assigned over, then the excess tail is
// destroyed or the missing tail constructed. Capacity never shrinks.
// Self-copy is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	if src.size > v.data.Cap() {
		v.Swap(src.Clone())
		return
	}
	clone := cloneFunc[T]()
	n := min(v.size, src.size)
	assignSlots(v.data.Slice(0, n), src.data.Slice(0, n), clone)
	switch {
	case src.size < v.size:
		clear(v.data.Slice(src.size, v.size))
	case src.size > v.size:
		assignSlots(v.data.Slice(v.size, src.size), src.data.Slice(v.size, src.size), clone)
	}
	v.size = src.size
}

// MoveFrom adopts src's storage, elements, and counters without any
// per-element work, and leaves src empty with no storage. src remains
// a valid vector. Self-move is a no-op. Never fails.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
	src.Release()
}

// Swap exchanges the storage, size, and counters of two vectors.
// Never fails; self-swap is harmless.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.grows, other.grows = other.grows, v.grows
	v.moved, other.moved = other.moved, v.moved
}

// Clear destroys all live elements but keeps the storage for reuse.
func (v *Vector[T]) Clear() {
	clear(v.data.Slice(0, v.size))
	v.size = 0
}

// Release destroys all live elements and drops the storage entirely,
// returning the vector to the empty zero-capacity state. The vector
// stays usable; the next growing operation allocates fresh storage.
func (v *Vector[T]) Release() {
	v.data.Release()
	v.size = 0
	v.grows = 0
	v.moved = 0
}

// clearSlot zeroes storage slot i so the collector can reclaim
// anything the old value referenced.
func (v *Vector[T]) clearSlot(i int) {
	var zero T
	*v.data.At(i) = zero
}
