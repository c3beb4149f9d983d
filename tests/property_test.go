package tests

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/quantrove/matchbook/pkg/engine"
)

// refOrder is the reference model's view of a resting order: enough to
// recompute what Print must report.
type refOrder struct {
	side  engine.Side
	price uint64
	qty   uint64
}

type refBook map[string]*refOrder

func (m refBook) applyTrades(reports []engine.Report) {
	for _, rep := range reports {
		tr, ok := rep.(engine.Trade)
		if !ok {
			continue
		}
		for _, id := range []string{tr.First, tr.Second} {
			if ro, live := m[id]; live {
				if ro.qty < tr.Qty {
					panic(fmt.Sprintf("over-fill: %s has %d, trade takes %d", id, ro.qty, tr.Qty))
				}
				ro.qty -= tr.Qty
				if ro.qty == 0 {
					delete(m, id)
				}
			}
		}
	}
}

func (m refBook) levels(side engine.Side) map[uint64]uint64 {
	out := make(map[uint64]uint64)
	for _, ro := range m {
		if ro.side == side {
			out[ro.price] += ro.qty
		}
	}
	return out
}

func snapshotLevels(ls []engine.Level) map[uint64]uint64 {
	out := make(map[uint64]uint64)
	for _, l := range ls {
		out[l.Price] = l.Qty
	}
	return out
}

func sameLevels(a, b map[uint64]uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for p, q := range a {
		if b[p] != q {
			return false
		}
	}
	return true
}

// TestRandomStreamMatchesReferenceModel replays a long pseudo-random
// operation stream against both the engine and a flat reference model that
// only understands resting quantity, checking after every operation that
// Print aggregation agrees and the book never stays crossed.
func TestRandomStreamMatchesReferenceModel(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	eng := engine.New()
	model := make(refBook)

	const ops = 5000
	for i := 0; i < ops; i++ {
		id := fmt.Sprintf("o%d", r.Intn(40))
		side := engine.Buy
		if r.Intn(2) == 0 {
			side = engine.Sell
		}
		price := uint64(r.Intn(21)) // 0..20, zero exercises the no-op path
		qty := uint64(r.Intn(11))   // 0..10

		var reports []engine.Report
		switch n := r.Intn(10); {
		case n < 5: // new order
			tif := engine.GFD
			if r.Intn(3) == 0 {
				tif = engine.IOC
			}
			opType := engine.OpBuy
			if side == engine.Sell {
				opType = engine.OpSell
			}
			_, live := model[id]
			accepted := price > 0 && qty > 0 && !live
			reports = eng.Process(engine.Operation{
				Type: opType, TIF: tif, Side: side, Price: price, Qty: qty, OrderID: id,
			})
			if accepted && tif == engine.GFD {
				model[id] = &refOrder{side: side, price: price, qty: qty}
			}
			if !accepted && len(reports) != 0 {
				t.Fatalf("op %d: rejected order produced reports", i)
			}
		case n < 7: // cancel
			reports = eng.Process(engine.Operation{Type: engine.OpCancel, OrderID: id})
			delete(model, id)
			if len(reports) != 0 {
				t.Fatalf("op %d: cancel produced reports", i)
			}
		case n < 9: // modify
			_, live := model[id]
			reports = eng.Process(engine.Operation{
				Type: engine.OpModify, Side: side, Price: price, Qty: qty, OrderID: id,
			})
			if live {
				delete(model, id)
				if price > 0 && qty > 0 {
					model[id] = &refOrder{side: side, price: price, qty: qty}
				}
			} else if len(reports) != 0 {
				t.Fatalf("op %d: modify of unknown id produced reports", i)
			}
		default: // print, checked below anyway
			reports = nil
			eng.Process(engine.Operation{Type: engine.OpPrint})
		}

		for _, rep := range reports {
			if tr, ok := rep.(engine.Trade); ok && tr.Qty == 0 {
				t.Fatalf("op %d: zero-quantity trade %v", i, tr)
			}
		}
		model.applyTrades(reports)

		snapReports := eng.Process(engine.Operation{Type: engine.OpPrint})
		snap := snapReports[0].(engine.BookSnapshot)

		if !sameLevels(snapshotLevels(snap.Sells), model.levels(engine.Sell)) {
			t.Fatalf("op %d: sell levels diverged\nengine: %v\nmodel:  %v",
				i, snap.Sells, model.levels(engine.Sell))
		}
		if !sameLevels(snapshotLevels(snap.Buys), model.levels(engine.Buy)) {
			t.Fatalf("op %d: buy levels diverged\nengine: %v\nmodel:  %v",
				i, snap.Buys, model.levels(engine.Buy))
		}

		if len(snap.Sells) > 0 && len(snap.Buys) > 0 {
			minSell := snap.Sells[len(snap.Sells)-1].Price // descending order
			maxBuy := snap.Buys[0].Price
			if minSell <= maxBuy {
				t.Fatalf("op %d: book left crossed: best sell %d <= best buy %d", i, minSell, maxBuy)
			}
		}
	}
}
