package engine

import (
	"container/heap"
	"sort"
)

// sideBook holds one side of the book. Four structures share *Order handles,
// so a fill is visible everywhere without copies:
//
//   - orders: identity index; holding this exact handle means live and
//     matchable
//   - levels: price -> FIFO of orders at that price, used only to aggregate
//     resting quantity for Print (matching priority at equal price is not FIFO)
//   - queue: price-ordered heap, lazily deleted
//   - seqs: arrival sequence, for maker/taker attribution when two resting
//     orders cross
type sideBook struct {
	side   Side
	orders map[string]*Order
	levels map[uint64][]*Order
	queue  orderHeap
	seqs   map[string]uint64
}

func newSideBook(side Side) *sideBook {
	var q orderHeap
	if side == Buy {
		h := &maxOrderHeap{}
		heap.Init(h)
		q = h
	} else {
		h := &minOrderHeap{}
		heap.Init(h)
		q = h
	}
	return &sideBook{
		side:   side,
		orders: make(map[string]*Order),
		levels: make(map[uint64][]*Order),
		queue:  q,
		seqs:   make(map[string]uint64),
	}
}

// insert installs a resting order into all four structures. seq is the
// order's arrival sequence, assigned once per insertion.
func (b *sideBook) insert(o *Order, seq uint64) {
	b.orders[o.ID] = o
	b.levels[o.Price] = append(b.levels[o.Price], o)
	heap.Push(b.queue, o)
	b.seqs[o.ID] = seq
}

// remove deletes the order from the identity index, price ledger and
// sequence index. The heap entry is deliberately left in place; peekLive
// discards it when it surfaces.
func (b *sideBook) remove(o *Order) {
	lvl := b.levels[o.Price]
	for i, other := range lvl {
		if other.ID == o.ID {
			b.levels[o.Price] = append(lvl[:i], lvl[i+1:]...)
			break
		}
	}
	if len(b.levels[o.Price]) == 0 {
		delete(b.levels, o.Price)
	}
	delete(b.orders, o.ID)
	delete(b.seqs, o.ID)
}

// lookup returns the live order for id, if any.
func (b *sideBook) lookup(id string) (*Order, bool) {
	o, ok := b.orders[id]
	return o, ok
}

// stale reports whether a heap entry must be discarded instead of matched.
// Liveness is exact handle identity: the identity index holds this entry.
// A canceled order's id is absent; an order superseded by a modify (possibly
// several times over) maps to the reinserted handle, so every earlier
// incarnation's entry fails the check no matter what values it carries.
func (b *sideBook) stale(e *Order) bool {
	return b.orders[e.ID] != e
}

// peekLive returns the best live order on this side, discarding stale heap
// entries until one surfaces or the heap is empty.
func (b *sideBook) peekLive() (*Order, bool) {
	for b.queue.Len() > 0 {
		e := b.queue.top()
		if !b.stale(e) {
			return e, true
		}
		heap.Pop(b.queue)
	}
	return nil, false
}

// purge removes a fully filled order. The caller guarantees o is the current
// heap top (it came out of peekLive and the heap has not moved since).
func (b *sideBook) purge(o *Order) {
	b.remove(o)
	heap.Pop(b.queue)
}

// aggregate returns one entry per price level with at least one live order,
// summing remaining quantities, sorted by descending price. Empty levels are
// removed eagerly by remove, so they never appear.
func (b *sideBook) aggregate() []Level {
	levels := make([]Level, 0, len(b.levels))
	for price, lvl := range b.levels {
		var qty uint64
		for _, o := range lvl {
			qty += o.Qty
		}
		levels = append(levels, Level{Price: price, Qty: qty})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Price > levels[j].Price })
	return levels
}
