package cmd

import (
	"errors"

	"github.com/Alia5/i3ctransfer/i3cdev"
	"github.com/Alia5/i3ctransfer/pec"
	"github.com/Alia5/i3ctransfer/xfer"
)

// Process exit statuses.
const (
	ExitOK       = 0
	ExitTransfer = 1
	ExitUsage    = 2
	ExitDevice   = 3
)

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var argErr *xfer.ArgumentError
	var openErr *i3cdev.OpenError
	switch {
	case errors.As(err, &argErr),
		errors.Is(err, xfer.ErrEmptyBatch),
		errors.Is(err, i3cdev.ErrBatchTooLarge),
		errors.Is(err, pec.ErrEmptyPayload):
		return ExitUsage
	case errors.As(err, &openErr):
		return ExitDevice
	default:
		return ExitTransfer
	}
}
