package maxheap

// Less reports whether a has strictly lower priority than b — for a
// max-heap ordered by ascending f-cost, Less(a, b) should be true when
// a's f-cost is greater than b's (so the "maximum" the heap surfaces
// is the lowest f-cost element).
type Less[T any] func(a, b T) bool

// Equal reports whether a and b are the same logical element, for
// UpdateValue's scan. This is independent of Less: two elements can
// be Equal (same board) while differing in priority (different g).
type Equal[T any] func(a, b T) bool

// Heap is a binary max-heap over a contiguous slice of T.
type Heap[T any] struct {
	data  []T
	less  Less[T]
	equal Equal[T]
}

// New returns an empty Heap using less for ordering and equal for
// UpdateValue's element lookup.
func New[T any](less Less[T], equal Equal[T]) *Heap[T] {
	return &Heap[T]{less: less, equal: equal}
}

// NewWithCapacity pre-sizes the backing slice, avoiding growth churn
// when the caller knows an approximate upper bound on heap size (the
// search drivers pre-size to roughly 65k entries per their doc
// comments).
func NewWithCapacity[T any](capacity int, less Less[T], equal Equal[T]) *Heap[T] {
	return &Heap[T]{data: make([]T, 0, capacity), less: less, equal: equal}
}

// Len returns the number of elements currently held.
func (h *Heap[T]) Len() int { return len(h.data) }

// Push inserts v and sifts it up to its heap-ordered position.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the maximum element. ok is false on an
// empty heap; no panic.
func (h *Heap[T]) Pop() (v T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return v, false
	}
	top := h.data[0]
	last := h.data[n-1]
	h.data = h.data[:n-1]
	if len(h.data) > 0 {
		h.data[0] = last
		h.siftDown(0)
	}
	return top, true
}

// Peek returns the maximum element without removing it. ok is false
// on an empty heap.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}
	return h.data[0], true
}

// PeekHandle is a scoped mutable handle to the heap's root, returned
// by PeekMut. Go has no destructors, so callers must call Release
// (typically via defer) once done mutating the root through Set,
// unless they instead call PopPeek to remove it outright.
type PeekHandle[T any] struct {
	h        *Heap[T]
	consumed bool
}

// PeekMut returns a handle to the root. ok is false on an empty heap.
func (h *Heap[T]) PeekMut() (*PeekHandle[T], bool) {
	if len(h.data) == 0 {
		return nil, false
	}
	return &PeekHandle[T]{h: h}, true
}

// Value returns the current root value.
func (p *PeekHandle[T]) Value() T { return p.h.data[0] }

// Set overwrites the root value; the new priority takes effect once
// Release runs the resift.
func (p *PeekHandle[T]) Set(v T) { p.h.data[0] = v }

// Release re-sifts the (possibly modified) root down to its correct
// position. A no-op if PopPeek already consumed the handle.
func (p *PeekHandle[T]) Release() {
	if p.consumed {
		return
	}
	p.h.siftDown(0)
}

// PopPeek removes and returns the root, short-circuiting the Release
// resift since the element is leaving the heap entirely.
func (p *PeekHandle[T]) PopPeek() T {
	p.consumed = true
	v, _ := p.h.Pop()
	return v
}

// Iter exposes the underlying storage in heap-internal (arbitrary,
// not priority-sorted) order, for callers that need to scan for an
// existing element — the A* decrease-key protocol locates a board's
// prior record this way before calling UpdateValue. The returned
// slice aliases Heap's storage; mutate the heap only through Heap's
// own methods while holding it.
func (h *Heap[T]) Iter() []T { return h.data }

// UpdateValue scans for the first element equal to x (via Equal),
// overwrites it with x, then restores heap order by sifting that
// index all the way to the bottom of its subtree and back up. The
// two-phase resift is correct regardless of whether x's priority rose
// or fell relative to the element it replaced. Reports whether a
// matching element was found.
func (h *Heap[T]) UpdateValue(x T) bool {
	idx := -1
	for i, v := range h.data {
		if h.equal(v, x) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	h.data[idx] = x
	bottom := h.siftDownToBottom(idx)
	h.siftUp(bottom)
	return true
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[parent], h.data[i]) {
			break
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		largest := left
		if right := left + 1; right < n && h.less(h.data[largest], h.data[right]) {
			largest = right
		}
		if !h.less(h.data[i], h.data[largest]) {
			break
		}
		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}

// siftDownToBottom always descends to a leaf along the larger-child
// path, never comparing the moving element against its children — it
// treats position i as a hole that sinks to the bottom, returning the
// leaf index reached. UpdateValue follows it with siftUp, since the
// element may belong anywhere back up that path.
func (h *Heap[T]) siftDownToBottom(i int) int {
	n := len(h.data)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.less(h.data[child], h.data[right]) {
			child = right
		}
		h.data[i], h.data[child] = h.data[child], h.data[i]
		i = child
	}
	return i
}
