package engine

// maxOrderHeap implements heap.Interface for resting buy orders (highest
// price on top). Ordering is by price only: arrival order among equal-priced
// entries is deliberately left undefined. Entries are not removed when an
// order is canceled or modified away; stale entries are discarded lazily when
// they surface at the top (see sideBook.peekLive).
// Use container/heap to manipulate (Init, Push, Pop).
type maxOrderHeap []*Order

func (h maxOrderHeap) Len() int           { return len(h) }
func (h maxOrderHeap) Less(i, j int) bool { return h[i].Price > h[j].Price }
func (h maxOrderHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxOrderHeap) Push(x interface{}) {
	*h = append(*h, x.(*Order))
}

func (h *maxOrderHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// Peek returns the top entry without removing it.
func (h maxOrderHeap) Peek() *Order {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// minOrderHeap implements heap.Interface for resting sell orders (lowest
// price on top).
type minOrderHeap []*Order

func (h minOrderHeap) Len() int           { return len(h) }
func (h minOrderHeap) Less(i, j int) bool { return h[i].Price < h[j].Price }
func (h minOrderHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minOrderHeap) Push(x interface{}) {
	*h = append(*h, x.(*Order))
}

func (h *minOrderHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// Peek returns the top entry without removing it.
func (h minOrderHeap) Peek() *Order {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// orderHeap lets sideBook treat both heaps uniformly.
type orderHeap interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
	Push(x interface{})
	Pop() interface{}
	top() *Order
}

func (h *maxOrderHeap) top() *Order { return h.Peek() }
func (h *minOrderHeap) top() *Order { return h.Peek() }
