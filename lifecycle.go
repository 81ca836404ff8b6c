package vector

// Cloner is implemented by element types whose duplication is non-trivial
// and may fail. Every operation that duplicates elements (Clone, CopyFrom,
// copy-based growth transfer) goes through it. Types that do not implement
// Cloner are duplicated with a plain shallow copy, which cannot fail.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Disposer is implemented by element types that own resources. Dispose is
// invoked exactly once for every live element that leaves the container:
// on Erase, PopBack, shrinking Resize, Clear, Release and when an element
// is overwritten by CopyFrom. Dispose must be safe on a zero value, since
// Resize and NewWithSize create elements by value initialization.
type Disposer interface {
	Dispose()
}

// Relocatable marks a Cloner type whose values may nevertheless be moved
// between storage blocks with a plain shallow copy. Growth then skips
// per-element duplication and takes the fast relocation path.
type Relocatable interface {
	TrivialRelocate()
}

// hooks is the capability set of an element type, resolved once per
// container. Detection asserts on *T so that value- and pointer-receiver
// implementations are both honored.
type hooks[T any] struct {
	clone    func(T) (T, error) // nil for trivially copyable types
	dispose  func(*T)           // nil when T has no destructor hook
	relocate bool               // growth may transfer elements by shallow copy
}

func resolveHooks[T any]() hooks[T] {
	var h hooks[T]
	probe := new(T)
	if _, ok := any(probe).(Cloner[T]); ok {
		h.clone = func(v T) (T, error) { return any(&v).(Cloner[T]).Clone() }
	}
	if _, ok := any(probe).(Disposer); ok {
		h.dispose = func(p *T) { any(p).(Disposer).Dispose() }
	}
	_, marked := any(probe).(Relocatable)
	h.relocate = h.clone == nil || marked
	return h
}

// disposeOne runs the destructor hook on one element, if any.
func (h *hooks[T]) disposeOne(p *T) {
	if h.dispose != nil {
		h.dispose(p)
	}
}

// disposeRange runs the destructor hook on the elements in slots
// [i, i+n) of s, in index order.
func (h *hooks[T]) disposeRange(s *RawStorage[T], i, n int) {
	if h.dispose == nil {
		return
	}
	for k := i; k < i+n; k++ {
		h.dispose(s.Slot(k))
	}
}
