package xfer

import (
	"fmt"
	"io"
)

// Submitter performs a batch of transfers as one atomic request. On success
// every Read transfer's Data has been filled in place.
type Submitter interface {
	Submit(xfers []*Transfer) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(xfers []*Transfer) error

func (f SubmitterFunc) Submit(xfers []*Transfer) error { return f(xfers) }

// Execute submits the batch once and reports per-message results to out.
// On failure nothing in the batch is interpreted. The caller still owns the
// batch and must Release it.
func Execute(sub Submitter, batch Batch, out io.Writer) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}
	if err := sub.Submit(batch); err != nil {
		return &TransferError{Count: len(batch), Err: err}
	}
	for i, t := range batch {
		fmt.Fprintf(out, "Success on message %d\n", i)
		if t.Direction == Read {
			printReceived(out, t.Data)
		}
	}
	return nil
}

func printReceived(out io.Writer, data []byte) {
	fmt.Fprintln(out, "  received data:")
	for _, b := range data {
		fmt.Fprintf(out, "    0x%02x\n", b)
	}
}
