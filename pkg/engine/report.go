package engine

import (
	"fmt"
	"strings"
)

// Report is one engine output event. String renders the exact wire line(s);
// the engine itself never writes anywhere.
type Report interface {
	String() string
}

// Trade reports one execution. First is the order with the earlier arrival
// sequence when two resting orders cross; for an IOC fill the resting order
// is First and the IOC Second. Each side carries its own limit price, not a
// single clearing price.
type Trade struct {
	First       string
	FirstPrice  uint64
	Second      string
	SecondPrice uint64
	Qty         uint64
}

func (t Trade) String() string {
	return fmt.Sprintf("TRADE %s %d %d %s %d %d",
		t.First, t.FirstPrice, t.Qty, t.Second, t.SecondPrice, t.Qty)
}

// Level is one aggregated price level.
type Level struct {
	Price uint64
	Qty   uint64
}

// BookSnapshot is the Print report: sell levels then buy levels, descending
// price on both sides.
type BookSnapshot struct {
	Sells []Level
	Buys  []Level
}

func (s BookSnapshot) String() string {
	var sb strings.Builder
	sb.WriteString("SELL:")
	for _, l := range s.Sells {
		fmt.Fprintf(&sb, "\n%d %d", l.Price, l.Qty)
	}
	sb.WriteString("\nBUY:")
	for _, l := range s.Buys {
		fmt.Fprintf(&sb, "\n%d %d", l.Price, l.Qty)
	}
	return sb.String()
}
