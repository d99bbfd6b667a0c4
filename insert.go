package vector

import "fmt"

// PushBack appends x. Amortized O(1): with room in the slab the value
// is placed straight into the next dead slot; when the slab is full a
// doubled slab is allocated, x is placed there first, and only then
// are the existing elements moved across, so a failed allocation
// leaves the vector untouched.
func (v *Vector[T]) PushBack(x T) {
	if v.size == v.data.Cap() {
		newData := NewRawStorage[T](v.grownCapacity())
		*newData.At(v.size) = x
		v.install(&newData, v.size, 1)
	} else {
		*v.data.At(v.size) = x
	}
	v.size++
}

// PopBack removes and returns the last element, zeroing its slot.
// Panics on an empty vector.
func (v *Vector[T]) PopBack() T {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	x := *v.data.At(v.size - 1)
	v.clearSlot(v.size - 1)
	v.size--
	return x
}

// EmplaceBack appends an element constructed in place by build and
// returns the live slot's address. A nil build constructs the zero
// value. When build fails the vector is observably unchanged and the
// error is returned as-is: on the growth path the element is built
// into the new slab before any existing element is touched, and the
// new slab is discarded on error; on the in-place path the target slot
// is re-zeroed.
func (v *Vector[T]) EmplaceBack(build func(*T) error) (*T, error) {
	if v.size == v.data.Cap() {
		newData := NewRawStorage[T](v.grownCapacity())
		if build != nil {
			if err := build(newData.At(v.size)); err != nil {
				newData.Release()
				return nil, err
			}
		}
		v.install(&newData, v.size, 1)
	} else {
		slot := v.data.At(v.size)
		var zero T
		*slot = zero // the slot was dead; construct before building
		if build != nil {
			if err := build(slot); err != nil {
				*slot = zero
				return nil, err
			}
		}
	}
	v.size++
	return v.data.At(v.size - 1), nil
}

// Insert places x before position i (i may equal Len() to append) and
// returns the live slot's address. Elements from i on shift right one
// slot; their addresses, and all addresses on the growth path, are
// invalidated.
func (v *Vector[T]) Insert(i int, x T) *T {
	slot, _ := v.Emplace(i, func(p *T) error {
		*p = x
		return nil
	})
	return slot
}

// Emplace inserts an element constructed by build before position i
// and returns the live slot's address. A nil build constructs the zero
// value. Position Len() appends. When build fails the vector is
// observably unchanged: on the reallocating path the element is built
// into the new slab first and the slab is discarded on error; on the
// in-place path the element is built into a temporary before any slot
// is shifted.
func (v *Vector[T]) Emplace(i int, build func(*T) error) (*T, error) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", i, v.size))
	}
	if v.size == v.data.Cap() {
		newData := NewRawStorage[T](v.grownCapacity())
		if build != nil {
			if err := build(newData.At(i)); err != nil {
				newData.Release()
				return nil, err
			}
		}
		v.install(&newData, i, 1)
	} else {
		var tmp T
		if build != nil {
			if err := build(&tmp); err != nil {
				return nil, err
			}
		}
		s := v.data.Slice(0, v.size+1)
		copy(s[i+1:], s[i:v.size]) // shift the tail right one slot
		s[i] = tmp
	}
	v.size++
	return v.data.At(i), nil
}

// Remove deletes and returns the element at position i. Elements after
// i shift left one slot by move-assignment and the vacated last slot
// is zeroed. The element previously at i+1 now occupies i. Panics
// unless 0 <= i < Len().
func (v *Vector[T]) Remove(i int) T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
	s := v.data.Slice(0, v.size)
	x := s[i]
	copy(s[i:], s[i+1:]) // shift the tail left one slot
	v.clearSlot(v.size - 1)
	v.size--
	return x
}
