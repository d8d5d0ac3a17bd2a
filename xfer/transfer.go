// Package xfer builds and executes batches of I3C private transfers.
//
// A Transfer owns its data buffer for its whole lifetime. Read buffers are
// allocated zeroed and filled in place by the Submitter; write buffers carry
// the payload and, optionally, a trailing PEC byte. A Batch is submitted as
// one atomic request and released once its results have been consumed.
package xfer

import "fmt"

// Direction of a private transfer.
type Direction uint8

const (
	Write Direction = 0
	Read  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// RnW returns the kernel encoding of the direction (1 for read).
func (d Direction) RnW() uint8 { return uint8(d) }

// Transfer is one bus operation.
type Transfer struct {
	Direction Direction
	Data      []byte
}

// Len is the number of bytes moved by the transfer.
func (t *Transfer) Len() int { return len(t.Data) }

// Release drops the transfer's buffer. Calling it again is a no-op.
func (t *Transfer) Release() {
	t.Data = nil
}

// Batch is an ordered list of transfers submitted together.
type Batch []*Transfer

// Release drops every buffer in the batch.
func (b Batch) Release() {
	for _, t := range b {
		if t != nil {
			t.Release()
		}
	}
}
