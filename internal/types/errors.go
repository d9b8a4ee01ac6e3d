package types

import "errors"

// Failure classes shared across pipeline stages. Every terminal error wraps
// exactly one of these so callers can classify without matching strings.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrInputNotFound = errors.New("input not found")
	ErrExtraction    = errors.New("subtitle extraction failed")
	ErrEncode        = errors.New("encode failed")
)
