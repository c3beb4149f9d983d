package engine

type Side int8

const (
	Buy  Side = 1
	Sell Side = -1
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side { return -s }

// TimeInForce controls what happens to the unfilled part of an order.
type TimeInForce int8

const (
	// GFD rests in the book until filled or canceled/modified away.
	GFD TimeInForce = iota
	// IOC fills what it can immediately; the remainder is discarded.
	IOC
)

func (t TimeInForce) String() string {
	if t == IOC {
		return "IOC"
	}
	return "GFD"
}

// Order is the book's mutable view of an accepted order. Qty only ever
// decreases; an order at Qty 0 is terminal and purged from every index.
type Order struct {
	ID    string
	Side  Side
	TIF   TimeInForce
	Price uint64 // integer ticks
	Qty   uint64 // integer lots
}
