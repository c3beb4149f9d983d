package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// OpType tags an Operation variant.
type OpType int8

const (
	OpBuy OpType = iota
	OpSell
	OpCancel
	OpModify
	OpPrint
)

// Operation is a validated, immutable-once-created operation record. Which
// fields are meaningful depends on Type: orders carry TIF/Price/Qty/OrderID,
// cancel carries OrderID, modify carries OrderID/Side/Price/Qty, print
// carries nothing.
type Operation struct {
	Type    OpType
	TIF     TimeInForce
	Side    Side
	Price   uint64
	Qty     uint64
	OrderID string
}

// ParseOpType classifies an operation keyword case-insensitively: dispatch on
// the leading letter, then validate the full token.
func ParseOpType(tok string) (OpType, error) {
	up := strings.ToUpper(tok)
	if up == "" {
		return 0, fmt.Errorf("%w: empty operation token", ErrInvalidKeyword)
	}
	switch up[0] {
	case 'B':
		return checkKeyword(up, "BUY", OpBuy)
	case 'S':
		return checkKeyword(up, "SELL", OpSell)
	case 'C':
		return checkKeyword(up, "CANCEL", OpCancel)
	case 'M':
		return checkKeyword(up, "MODIFY", OpModify)
	case 'P':
		return checkKeyword(up, "PRINT", OpPrint)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKeyword, tok)
}

// ParseSide accepts BUY or SELL, case-insensitively.
func ParseSide(tok string) (Side, error) {
	up := strings.ToUpper(tok)
	if up == "" {
		return 0, fmt.Errorf("%w: empty side token", ErrInvalidKeyword)
	}
	switch up[0] {
	case 'B':
		return checkKeyword(up, "BUY", Buy)
	case 'S':
		return checkKeyword(up, "SELL", Sell)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKeyword, tok)
}

// ParseTimeInForce accepts IOC or GFD, case-insensitively.
func ParseTimeInForce(tok string) (TimeInForce, error) {
	up := strings.ToUpper(tok)
	if up == "" {
		return 0, fmt.Errorf("%w: empty time-in-force token", ErrInvalidKeyword)
	}
	switch up[0] {
	case 'I':
		return checkKeyword(up, "IOC", IOC)
	case 'G':
		return checkKeyword(up, "GFD", GFD)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKeyword, tok)
}

func checkKeyword[T ~int8](got, want string, v T) (T, error) {
	if got != want {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrInvalidKeyword, got)
	}
	return v, nil
}

func parseUint(tok, field string) (uint64, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedOperation, field, tok)
	}
	return v, nil
}

// NewOrderOp builds a BUY or SELL operation from
// "BUY|SELL <IOC|GFD> <price> <quantity> <order_id>".
func NewOrderOp(tokens []string) (Operation, error) {
	op, err := requireVariant(tokens, 5, OpBuy, OpSell)
	if err != nil {
		return Operation{}, err
	}
	tif, err := ParseTimeInForce(tokens[1])
	if err != nil {
		return Operation{}, err
	}
	price, err := parseUint(tokens[2], "price")
	if err != nil {
		return Operation{}, err
	}
	qty, err := parseUint(tokens[3], "quantity")
	if err != nil {
		return Operation{}, err
	}
	side := Buy
	if op == OpSell {
		side = Sell
	}
	return Operation{Type: op, TIF: tif, Side: side, Price: price, Qty: qty, OrderID: tokens[4]}, nil
}

// NewCancelOp builds a CANCEL operation from "CANCEL <order_id>".
func NewCancelOp(tokens []string) (Operation, error) {
	op, err := requireVariant(tokens, 2, OpCancel)
	if err != nil {
		return Operation{}, err
	}
	return Operation{Type: op, OrderID: tokens[1]}, nil
}

// NewModifyOp builds a MODIFY operation from
// "MODIFY <order_id> <BUY|SELL> <price> <quantity>".
func NewModifyOp(tokens []string) (Operation, error) {
	op, err := requireVariant(tokens, 5, OpModify)
	if err != nil {
		return Operation{}, err
	}
	side, err := ParseSide(tokens[2])
	if err != nil {
		return Operation{}, err
	}
	price, err := parseUint(tokens[3], "price")
	if err != nil {
		return Operation{}, err
	}
	qty, err := parseUint(tokens[4], "quantity")
	if err != nil {
		return Operation{}, err
	}
	return Operation{Type: op, Side: side, Price: price, Qty: qty, OrderID: tokens[1]}, nil
}

// NewPrintOp builds a PRINT operation from "PRINT".
func NewPrintOp(tokens []string) (Operation, error) {
	op, err := requireVariant(tokens, 1, OpPrint)
	if err != nil {
		return Operation{}, err
	}
	return Operation{Type: op}, nil
}

func requireVariant(tokens []string, count int, want ...OpType) (OpType, error) {
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty token list", ErrInvalidKeyword)
	}
	op, err := ParseOpType(tokens[0])
	if err != nil {
		return 0, err
	}
	ok := false
	for _, w := range want {
		if op == w {
			ok = true
			break
		}
	}
	if !ok {
		return 0, fmt.Errorf("%w: cannot build from %q", ErrInvalidOperation, tokens[0])
	}
	if len(tokens) != count {
		return 0, fmt.Errorf("%w: want %d tokens, got %d", ErrMalformedOperation, count, len(tokens))
	}
	return op, nil
}
