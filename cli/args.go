package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// ParseInts parses each argument as an integer of bitSize bits.  Base
// prefixes (0x, 0o, 0b) and underscores are accepted.  Every malformed
// argument contributes an error to the result.
func ParseInts[T constraints.Signed](args []string, bitSize int) ([]T, error) {
	vals := make([]T, 0, len(args))
	var err error
	for _, arg := range args {
		v, parseErr := strconv.ParseInt(arg, 0, bitSize)
		if parseErr != nil {
			var numErr *strconv.NumError
			if errors.As(parseErr, &numErr) {
				parseErr = numErr.Err
			}
			err = multierr.Append(err, fmt.Errorf("bad integer %q: %w", arg, parseErr))
			continue
		}
		vals = append(vals, T(v))
	}
	return vals, err
}

// ParseHex decodes each argument as hexadecimal and concatenates the
// results.  An argument may carry a 0x prefix and may separate bytes with
// spaces or colons.
func ParseHex(args []string) ([]byte, error) {
	var buf []byte
	var err error
	for _, arg := range args {
		s := strings.TrimPrefix(strings.ToLower(arg), "0x")
		s = strings.NewReplacer(" ", "", ":", "").Replace(s)
		b, hexErr := hex.DecodeString(s)
		if hexErr != nil {
			err = multierr.Append(err, fmt.Errorf("bad hex %q: %w", arg, hexErr))
			continue
		}
		buf = append(buf, b...)
	}
	return buf, err
}

// CheckUnsigned returns an error for each negative value in vals.  The
// unsigned form encodes only non-negative values.
func CheckUnsigned(vals []int64) error {
	var err error
	for _, v := range vals {
		if v < 0 {
			err = multierr.Append(err, fmt.Errorf("negative value %d not allowed in unsigned form", v))
		}
	}
	return err
}
