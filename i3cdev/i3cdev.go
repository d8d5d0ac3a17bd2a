// Package i3cdev talks to the Linux i3cdev character device (/dev/i3c-*).
//
// The only operation is the private transfer ioctl, I3C_IOC_PRIV_XFER(N),
// which performs N read/write messages against one target as a single
// request.
package i3cdev

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/Alia5/i3ctransfer/xfer"
)

// ioctl encoding (asm-generic/ioctl.h)
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
	iocRead  = 2
)

const (
	// IocMagic is I3C_DEV_IOC_MAGIC.
	IocMagic = 0x07
	// IocPrivXferNr is the command number of I3C_IOC_PRIV_XFER.
	IocPrivXferNr = 30
	// PrivXferSize is sizeof(struct i3c_ioc_priv_xfer).
	PrivXferSize = int(unsafe.Sizeof(PrivXfer{}))
	// MaxBatch is the largest N whose descriptor array fits the ioctl size field.
	MaxBatch = (1<<iocSizeBits - 1) / PrivXferSize
)

var (
	ErrBatchTooLarge = errors.New("i3cdev: too many transfers for one request")
	ErrUnsupported   = errors.New("i3cdev: not supported on this platform")
)

// PrivXfer mirrors struct i3c_ioc_priv_xfer.
type PrivXfer struct {
	Data uint64 // user-space buffer address
	Len  uint16
	RnW  uint8
	Pad  [5]uint8
}

// PrivXferRequest returns the ioctl request number I3C_IOC_PRIV_XFER(n).
func PrivXferRequest(n int) (uint, error) {
	if n < 1 {
		return 0, xfer.ErrEmptyBatch
	}
	if n > MaxBatch {
		return 0, fmt.Errorf("%w: %d (max %d)", ErrBatchTooLarge, n, MaxBatch)
	}
	size := uint(n * PrivXferSize)
	return (iocRead|iocWrite)<<iocDirShift |
		size<<iocSizeShift |
		IocMagic<<iocTypeShift |
		IocPrivXferNr<<iocNRShift, nil
}

// OpenError reports a device node that could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// descriptors lays the batch out as the kernel expects it. Data holds the
// address of each transfer's own buffer. Every buffer is pinned with p so the
// addresses stay valid until the caller unpins after the ioctl returns.
func descriptors(xfers []*xfer.Transfer, p *runtime.Pinner) ([]PrivXfer, error) {
	out := make([]PrivXfer, len(xfers))
	for i, t := range xfers {
		if t.Len() > xfer.MaxReadLen {
			return nil, fmt.Errorf("message %d: %w: %d bytes", i, xfer.ErrValueRange, t.Len())
		}
		out[i].Len = uint16(t.Len())
		out[i].RnW = t.Direction.RnW()
		if t.Len() > 0 {
			p.Pin(unsafe.SliceData(t.Data))
			out[i].Data = uint64(uintptr(unsafe.Pointer(unsafe.SliceData(t.Data))))
		}
	}
	return out, nil
}
