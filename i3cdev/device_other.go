//go:build !linux

package i3cdev

import "github.com/Alia5/i3ctransfer/xfer"

// Device is an open i3cdev node. It cannot be opened outside Linux.
type Device struct {
	path string
}

func Open(path string) (*Device, error) {
	return nil, &OpenError{Path: path, Err: ErrUnsupported}
}

func (d *Device) Path() string { return d.path }

func (d *Device) Submit([]*xfer.Transfer) error { return ErrUnsupported }

func (d *Device) Close() error { return nil }
