// Package feed adapts a line-oriented operation stream to the matching
// engine: it tokenizes input, builds validated operations, and maps
// malformed input to a diagnostic line without touching engine state.
package feed

import (
	"fmt"
	"strings"

	"github.com/quantrove/matchbook/pkg/engine"
)

// Parse turns one input line into a validated operation. The line is trimmed
// and whitespace-tokenized; the leading keyword is case-insensitive.
// Recognized forms:
//
//	BUY|SELL <IOC|GFD> <price> <quantity> <order_id>
//	CANCEL <order_id>
//	MODIFY <order_id> <BUY|SELL> <price> <quantity>
//	PRINT
func Parse(line string) (engine.Operation, error) {
	tokens := strings.Fields(strings.TrimSpace(line))
	if len(tokens) == 0 {
		return engine.Operation{}, fmt.Errorf("%w: empty line", engine.ErrMalformedOperation)
	}
	op, err := engine.ParseOpType(tokens[0])
	if err != nil {
		return engine.Operation{}, err
	}
	switch op {
	case engine.OpBuy, engine.OpSell:
		return engine.NewOrderOp(tokens)
	case engine.OpCancel:
		return engine.NewCancelOp(tokens)
	case engine.OpModify:
		return engine.NewModifyOp(tokens)
	default:
		return engine.NewPrintOp(tokens)
	}
}
