// Package strtol parses unsigned integers in the notations C's strtol
// accepts with base 0: decimal, 0x-prefixed hexadecimal and 0-prefixed octal.
package strtol

import (
	"strconv"
	"strings"
)

// ParseUint is strconv.ParseUint with base 0, minus the Go-only extensions
// (0b and 0o prefixes, digit separators), which are reported as syntax errors.
func ParseUint(s string, bitSize int) (uint64, error) {
	if !cNotation(s) {
		return 0, &strconv.NumError{Func: "ParseUint", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseUint(s, 0, bitSize)
}

func cNotation(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B', 'o', 'O':
			return false
		}
	}
	return true
}
