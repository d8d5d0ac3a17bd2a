package xfer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Alia5/i3ctransfer/internal/strtol"
)

// MaxWriteBytes is the most payload bytes a single --write accepts. Further
// entries are dropped.
const MaxWriteBytes = 255

// MaxReadLen is the largest read length the kernel descriptor can carry.
const MaxReadLen = 0xFFFF

// parseNumber accepts the same notations as strtol with base 0: decimal,
// 0x-prefixed hexadecimal and 0-prefixed octal.
func parseNumber(s string, bitSize int) (uint64, error) {
	v, err := strtol.ParseUint(strings.TrimSpace(s), bitSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrValueRange
		}
		return 0, ErrSyntax
	}
	return v, nil
}

// splitList splits a comma-separated byte list. Empty entries are skipped.
// At most limit entries are returned; dropped reports how many were cut off.
func splitList(s string, limit int) (fields []string, dropped int) {
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if len(fields) == limit {
			dropped++
			continue
		}
		fields = append(fields, f)
	}
	return fields, dropped
}
