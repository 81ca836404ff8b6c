package vector

import "unsafe"

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BytesInUse returns the number of bytes occupied by the live region.
func (v *Vector[T]) BytesInUse() int {
	return v.size * v.ElemSize()
}

// BytesReserved returns the number of bytes held by the storage block,
// live or not.
func (v *Vector[T]) BytesReserved() int {
	return v.data.Cap() * v.ElemSize()
}

// Utilization returns the ratio of live slots to reserved slots (0.0 to
// 1.0). Returns 0.0 for a vector with no storage.
func (v *Vector[T]) Utilization() float64 {
	if v.data.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.data.Cap())
}

// Grows returns how many times the vector has replaced its storage block.
func (v *Vector[T]) Grows() uint64 {
	return v.grows
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.data.Cap(),
		ElemSize:      v.ElemSize(),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
		Grows:         v.grows,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Slot capacity of the storage block
	ElemSize      int     // Bytes per element slot
	BytesInUse    int     // Bytes occupied by the live region
	BytesReserved int     // Bytes held by the whole storage block
	Utilization   float64 // Ratio of live to reserved slots (0.0-1.0)
	Grows         uint64  // Storage reallocations performed so far
}
