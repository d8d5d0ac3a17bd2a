// Package pec computes the I3C Packet Error Check byte for private write
// transfers.
//
// Two framings are distinguished by the first payload byte:
//
//   - CCC broadcast: the payload starts with BroadcastMarker. The marker
//     stands in for the 0x7E broadcast address, which is not covered by the
//     PEC; the checksum runs over the remaining command/data bytes with a
//     zero seed.
//   - Direct transfer: the PEC also covers the address+RnW byte that precedes
//     the payload on the wire, so the checksum is seeded with the CRC of
//     (dynamic address << 1 | 0).
package pec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/i3ctransfer/crc8"
	"github.com/Alia5/i3ctransfer/internal/strtol"
)

// BroadcastMarker flags a CCC payload when it is the first byte.
const BroadcastMarker = 0xFF

// DefaultAddress is the dynamic address used when none is configured.
const DefaultAddress Address = 0x70

// MaxAddress is the largest 7-bit dynamic address.
const MaxAddress Address = 0x7F

var (
	// ErrEmptyPayload is returned when there is no byte to checksum.
	ErrEmptyPayload = errors.New("pec: empty payload")
	// ErrAddressRange is returned for addresses above MaxAddress.
	ErrAddressRange = errors.New("pec: dynamic address out of 7-bit range")
	// ErrAddressSyntax is returned for addresses that are not a number.
	ErrAddressSyntax = errors.New("pec: invalid dynamic address")
)

// Address is a 7-bit I3C dynamic address.
type Address uint8

// WriteHeader returns the on-wire address byte for a write (RnW = 0).
func (a Address) WriteHeader() byte { return byte(a) << 1 }

// ReadHeader returns the on-wire address byte for a read (RnW = 1).
func (a Address) ReadHeader() byte { return byte(a)<<1 | 1 }

func (a Address) String() string { return fmt.Sprintf("0x%02x", uint8(a)) }

// UnmarshalText accepts decimal, 0x-prefixed hex or 0-prefixed octal.
// Go-only forms (0b, 0o, digit separators) are rejected.
func (a *Address) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	v, err := strtol.ParseUint(s, 8)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return fmt.Errorf("%w: %q", ErrAddressRange, s)
		}
		return fmt.Errorf("%w: %q", ErrAddressSyntax, s)
	}
	if Address(v) > MaxAddress {
		return fmt.Errorf("%w: %q", ErrAddressRange, s)
	}
	*a = Address(v)
	return nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Kind tells which framing a payload uses.
type Kind int

const (
	// Direct is a transfer addressed to the target's dynamic address.
	Direct Kind = iota
	// Broadcast is a CCC payload starting with BroadcastMarker.
	Broadcast
)

func (k Kind) String() string {
	if k == Broadcast {
		return "ccc"
	}
	return "direct"
}

// KindOf classifies a non-empty payload.
func KindOf(payload []byte) Kind {
	if len(payload) > 0 && payload[0] == BroadcastMarker {
		return Broadcast
	}
	return Direct
}

// Compute returns the PEC for a write payload addressed to addr.
func Compute(payload []byte, addr Address) (byte, error) {
	if len(payload) == 0 {
		return 0, ErrEmptyPayload
	}
	if KindOf(payload) == Broadcast {
		return crc8.Checksum(payload[1:], 0), nil
	}
	seed := crc8.Checksum([]byte{addr.WriteHeader()}, 0)
	return crc8.Update(seed, payload), nil
}

// Append computes the PEC and returns payload with it appended. The returned
// slice reuses payload's backing array when it has spare capacity.
func Append(payload []byte, addr Address) ([]byte, byte, error) {
	p, err := Compute(payload, addr)
	if err != nil {
		return payload, 0, err
	}
	return append(payload, p), p, nil
}
