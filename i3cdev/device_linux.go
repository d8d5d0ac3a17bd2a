//go:build linux

package i3cdev

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/Alia5/i3ctransfer/xfer"
	"golang.org/x/sys/unix"
)

// Device is an open i3cdev node.
type Device struct {
	path string
	fd   int
}

// Open opens the device node read/write.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &Device{path: path, fd: fd}, nil
}

func (d *Device) Path() string { return d.path }

// Submit performs all transfers as one I3C_IOC_PRIV_XFER request. Read
// buffers are filled in place on success.
func (d *Device) Submit(xfers []*xfer.Transfer) error {
	req, err := PrivXferRequest(len(xfers))
	if err != nil {
		return err
	}
	var pinner runtime.Pinner
	defer pinner.Unpin()

	descs, err := descriptors(xfers, &pinner)
	if err != nil {
		return err
	}
	pinner.Pin(&descs[0])
	return ioctlPtr(d.fd, req, unsafe.Pointer(&descs[0]))
}

// Close releases the file descriptor.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

// ioctlPtr issues an ioctl whose argument is a pointer. x/sys/unix keeps its
// own equivalent unexported.
func ioctlPtr(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return fmt.Errorf("ioctl 0x%08x: %w", req, errno)
	}
	return nil
}
