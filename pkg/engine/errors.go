package engine

import "errors"

// All three are recoverable at the single-operation boundary: the adapter
// reports them and keeps reading. The engine is never left half-applied by a
// rejected operation.
var (
	// ErrInvalidKeyword: unrecognized operation, side or time-in-force token.
	ErrInvalidKeyword = errors.New("invalid keyword")
	// ErrMalformedOperation: wrong token count or a numeric field that does
	// not parse as an unsigned integer.
	ErrMalformedOperation = errors.New("malformed operation")
	// ErrInvalidOperation: a constructor invoked with tokens naming a
	// different variant.
	ErrInvalidOperation = errors.New("invalid operation")
)
