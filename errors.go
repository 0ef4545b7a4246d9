package ipq

import "errors"

// Failure kinds reported by queue operations. Every kind is detected before
// the queue mutates, so a failed call leaves the structure exactly as it was.
var (
	ErrUnknownKey   = errors.New("ipq: unknown key")
	ErrDuplicateKey = errors.New("ipq: duplicate key")
	ErrUnderflow    = errors.New("ipq: empty queue")
	ErrRange        = errors.New("ipq: key range out of bounds")
)
