package vector

import "unsafe"

// ElemSize returns the size of one element slot in bytes.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.ElemSize()
}

// ReservedBytes returns the total size of the owned slab in bytes,
// including dead slots.
func (v *Vector[T]) ReservedBytes() int {
	return v.data.Cap() * v.ElemSize()
}

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Grows returns the number of reallocations this vector has performed.
func (v *Vector[T]) Grows() int {
	return v.grows
}

// Moved returns the number of elements transferred across reallocations.
// Over n appends it stays O(n), which is the amortized-growth guarantee
// in countable form.
func (v *Vector[T]) Moved() int {
	return v.moved
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.data.Cap(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		ReservedBytes: v.ReservedBytes(),
		Utilization:   v.Utilization(),
		Grows:         v.grows,
		Moved:         v.moved,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Slot capacity of the owned slab
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes occupied by live elements
	ReservedBytes int     // Total slab size in bytes
	Utilization   float64 // Ratio of live slots to capacity (0.0-1.0)
	Grows         int     // Reallocations performed
	Moved         int     // Elements transferred across reallocations
}
