package container

// MinHeap is a binary min-heap over a dense slice. Items that compare equal
// under less come out in no particular order.
type MinHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func NewMinHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return &MinHeap[T]{less: less}
}

func (h *MinHeap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Push inserts item and sifts it up.
func (h *MinHeap[T]) Push(item T) {
	h.data = append(h.data, item)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the smallest item.
func (h *MinHeap[T]) Pop() (T, error) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, ErrEmpty
	}
	h.swap(0, n-1)
	item := h.data[n-1]
	h.data[n-1] = zero
	h.data = h.data[:n-1]
	h.siftDown(0)
	return item, nil
}

func (h *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}
