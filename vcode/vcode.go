// Package vcode implements the VLong integer encodings: base-128 unsigned
// varints, zigzag-mapped signed varints, and fixed-width big-endian 32-bit
// integers.
//
// All functions operate on a caller-supplied buffer at a caller-supplied
// offset and return the offset just past the bytes they wrote or read.
// Nothing is allocated and nothing is bounds checked beyond what the
// runtime does for slice indexing, so the caller must size the buffer with
// SizeOfUvarint, SizeOfVarint, or Fixed32Len before encoding.  Writing past
// the end of the buffer panics.
//
// A varint stores the least-significant 7-bit group first.  Bit 7 of each
// byte is set when more bytes follow.
package vcode

const (
	// MaxVarintLen64 is the maximum length of a varint-encoded 64-bit value.
	MaxVarintLen64 = 10
	// Fixed32Len is the length of a fixed32-encoded value.
	Fixed32Len = 4
)

// ZigZag maps a signed value onto the unsigned domain so that values of
// small magnitude, negative or positive, map to small unsigned values:
// 0, -1, 1, -2, 2 become 0, 1, 2, 3, 4.
func ZigZag(v int64) uint64 {
	// v>>63 is an arithmetic shift yielding all ones for negative v.
	return uint64((v >> 63) ^ (v << 1))
}

// UnZigZag is the inverse of ZigZag.
func UnZigZag(u uint64) int64 {
	// u>>1 is a logical shift since u is unsigned.
	return int64(u>>1) ^ -int64(u&1)
}
