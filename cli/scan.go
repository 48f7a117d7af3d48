package cli

import (
	"errors"
	"fmt"

	"github.com/brimdata/vlong/vcode"
)

var (
	ErrTruncated = errors.New("truncated value")
	ErrOverflow  = errors.New("varint overflows 64 bits")
)

// ScanVarint returns the offset following the varint that starts at off
// in buf, or an error if that varint is incomplete or longer than 64 bits.
// The vcode decoders do no such checking.
func ScanVarint(buf []byte, off int) (int, error) {
	for k := 0; k < vcode.MaxVarintLen64; k++ {
		if off+k >= len(buf) {
			return 0, fmt.Errorf("offset %d: %w", off, ErrTruncated)
		}
		b := buf[off+k]
		if k == vcode.MaxVarintLen64-1 && b > 1 {
			break
		}
		if b&0x80 == 0 {
			return off + k + 1, nil
		}
	}
	return 0, fmt.Errorf("offset %d: %w", off, ErrOverflow)
}

// ScanFixed32 returns off+4 if buf holds a fixed32 value at off.
func ScanFixed32(buf []byte, off int) (int, error) {
	if end := off + vcode.Fixed32Len; end <= len(buf) {
		return end, nil
	}
	return 0, fmt.Errorf("offset %d: %w", off, ErrTruncated)
}
