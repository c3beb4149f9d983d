// Package engine implements a single-instrument price-time order matching
// core: a two-sided book with lazily deleted price heaps, continuous crossing
// for resting (GFD) and immediate-or-cancel (IOC) orders, and the
// cancel/modify lifecycle.
//
// The engine is single-writer and not reentrant: operations are applied one
// at a time to completion. Deployments with concurrent submitters must
// serialize access externally.
package engine

// Engine owns both sides of the book and the arrival sequence counter. All
// state is private to the instance; there is no internal locking.
type Engine struct {
	buy     *sideBook
	sell    *sideBook
	nextSeq uint64
}

func New() *Engine {
	return &Engine{
		buy:  newSideBook(Buy),
		sell: newSideBook(Sell),
	}
}

// Process applies one operation to completion and returns the reports it
// produced, in emission order. Matching always runs to a quiescent state
// before Process returns; a rejected or no-op operation returns nil.
func (e *Engine) Process(op Operation) []Report {
	switch op.Type {
	case OpBuy, OpSell:
		return e.applyNew(&Order{
			ID:    op.OrderID,
			Side:  op.Side,
			TIF:   op.TIF,
			Price: op.Price,
			Qty:   op.Qty,
		})
	case OpCancel:
		e.applyCancel(op.OrderID)
		return nil
	case OpModify:
		return e.applyModify(op)
	case OpPrint:
		return []Report{e.snapshot()}
	}
	return nil
}

func (e *Engine) side(s Side) *sideBook {
	if s == Buy {
		return e.buy
	}
	return e.sell
}

// lookup finds a live order by id on either side. An id is live on at most
// one side at a time.
func (e *Engine) lookup(id string) (*Order, bool) {
	if o, ok := e.buy.lookup(id); ok {
		return o, true
	}
	return e.sell.lookup(id)
}

// applyNew runs the order lifecycle for a validated incoming order. Zero
// price or quantity is policy, not error: the order is silently dropped.
// Likewise an id that is already live on the book.
func (e *Engine) applyNew(o *Order) []Report {
	if o.Price == 0 || o.Qty == 0 {
		return nil
	}
	if _, dup := e.lookup(o.ID); dup {
		return nil
	}

	var reports []Report
	switch o.TIF {
	case GFD:
		// Install first, then cross: a marketable GFD matches immediately
		// against the opposite side.
		e.side(o.Side).insert(o, e.nextSeq)
		e.nextSeq++
		e.crossBook(&reports)
	case IOC:
		e.fillAndKill(o, &reports)
	}
	return reports
}

// crossBook trades the two sides against each other while the best live sell
// price is at or below the best live buy price. Each iteration fills
// min(qty, qty) and purges whichever order(s) reach zero, so the loop
// strictly shrinks live quantity and always terminates.
func (e *Engine) crossBook(reports *[]Report) {
	for {
		s, ok := e.sell.peekLive()
		if !ok {
			return
		}
		b, ok := e.buy.peekLive()
		if !ok {
			return
		}
		if s.Price > b.Price {
			return
		}

		fill := min(s.Qty, b.Qty)
		first, second := s, b
		if e.buy.seqs[b.ID] < e.sell.seqs[s.ID] {
			first, second = b, s
		}
		*reports = append(*reports, Trade{
			First:       first.ID,
			FirstPrice:  first.Price,
			Second:      second.ID,
			SecondPrice: second.Price,
			Qty:         fill,
		})

		s.Qty -= fill
		b.Qty -= fill
		if s.Qty == 0 {
			e.sell.purge(s)
		}
		if b.Qty == 0 {
			e.buy.purge(b)
		}
	}
}

// crosses reports whether an incoming order at limit price p on side s would
// trade against a resting opposite-side order at restPrice.
func crosses(s Side, p, restPrice uint64) bool {
	if s == Buy {
		return restPrice <= p
	}
	return restPrice >= p
}

// atLeastAsGood reports whether a standing order at price standing has price
// priority over an incoming same-side order at price incoming.
func atLeastAsGood(s Side, standing, incoming uint64) bool {
	if s == Buy {
		return standing >= incoming
	}
	return standing <= incoming
}

// fillAndKill executes an IOC order. It never enters the book: it trades
// against the opposite side's best live entries while a cross exists, and
// any remainder is dropped without report.
//
// A standing GFD on the IOC's own side that could also cross goes first when
// its price is at least as good as the IOC's, so price priority between the
// IOC and a standing marketable order is preserved by ordering the all-book
// crossing loop around the IOC fill.
func (e *Engine) fillAndKill(o *Order, reports *[]Report) {
	opp := e.side(o.Side.Opposite())
	own := e.side(o.Side)

	oppBest, oppOK := opp.peekLive()
	ownBest, ownOK := own.peekLive()

	switch {
	case oppOK && ownOK && (crosses(o.Side, o.Price, oppBest.Price) || booksCross(ownBest, oppBest, o.Side)):
		if atLeastAsGood(o.Side, ownBest.Price, o.Price) {
			e.crossBook(reports)
			e.fillAgainst(o, opp, reports)
		} else {
			e.fillAgainst(o, opp, reports)
			e.crossBook(reports)
		}
	case oppOK && crosses(o.Side, o.Price, oppBest.Price):
		e.fillAgainst(o, opp, reports)
	}
}

// booksCross reports whether the two standing bests would trade with each
// other. ownBest is on side s.
func booksCross(ownBest, oppBest *Order, s Side) bool {
	if s == Buy {
		return oppBest.Price <= ownBest.Price // opp is sell
	}
	return oppBest.Price >= ownBest.Price // opp is buy
}

// fillAgainst repeatedly trades the IOC order against opp's best live entry
// while the cross holds. The resting order is reported first, the IOC
// second, each at its own price.
func (e *Engine) fillAgainst(o *Order, opp *sideBook, reports *[]Report) {
	for o.Qty > 0 {
		rest, ok := opp.peekLive()
		if !ok || !crosses(o.Side, o.Price, rest.Price) {
			return
		}
		fill := min(o.Qty, rest.Qty)
		*reports = append(*reports, Trade{
			First:       rest.ID,
			FirstPrice:  rest.Price,
			Second:      o.ID,
			SecondPrice: o.Price,
			Qty:         fill,
		})
		o.Qty -= fill
		rest.Qty -= fill
		if rest.Qty == 0 {
			opp.purge(rest)
		}
	}
}

// applyCancel removes a live order from the identity index and price ledger.
// Unknown ids are a silent no-op. The heap entry goes stale and is discarded
// the next time it surfaces.
func (e *Engine) applyCancel(id string) {
	if o, ok := e.lookup(id); ok {
		e.side(o.Side).remove(o)
	}
}

// applyModify replaces a live order: remove the original (its heap entry
// goes stale the moment the identity index stops holding it), then feed a
// synthesized order (new side/price/qty, same id, original time-in-force)
// through ordinary insertion. The order loses its arrival priority and is
// re-ranked as a fresh arrival. Unknown ids are a silent no-op.
func (e *Engine) applyModify(op Operation) []Report {
	o, ok := e.lookup(op.OrderID)
	if !ok {
		return nil
	}
	e.side(o.Side).remove(o)

	return e.applyNew(&Order{
		ID:    o.ID,
		Side:  op.Side,
		TIF:   o.TIF,
		Price: op.Price,
		Qty:   op.Qty,
	})
}

func (e *Engine) snapshot() BookSnapshot {
	return BookSnapshot{
		Sells: e.sell.aggregate(),
		Buys:  e.buy.aggregate(),
	}
}

func min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
