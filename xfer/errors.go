package xfer

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned for a length or byte that is not a number.
	ErrSyntax = errors.New("invalid number")
	// ErrValueRange is returned for a number too large for its field.
	ErrValueRange = errors.New("value out of range")
	// ErrEmptyBatch is returned when there is nothing to submit.
	ErrEmptyBatch = errors.New("no transfers requested")
)

// ArgumentError reports a malformed --read or --write value.
type ArgumentError struct {
	Flag  string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid --%s value %q: %v", e.Flag, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// TransferError reports a failed batch submission. The batch is atomic from
// the caller's view, so no descriptor of a failed batch carries results.
type TransferError struct {
	Count int
	Err   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed: %v", e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
