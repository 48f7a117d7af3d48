package vcode

// PutFixed32 writes v into dst at off as 4 big-endian bytes and returns
// off+4.  Negative values are written as their two's-complement bit
// pattern.
func PutFixed32(dst []byte, off int, v int32) int {
	u := uint32(v)
	_ = dst[off+3] // bounds check hint to compiler
	dst[off] = byte(u >> 24)
	dst[off+1] = byte(u >> 16)
	dst[off+2] = byte(u >> 8)
	dst[off+3] = byte(u)
	return off + Fixed32Len
}

// PutUvarint writes v into dst at off as a base-128 varint and returns the
// offset following the last byte written.  It writes SizeOfUvarint(v)
// bytes.
func PutUvarint(dst []byte, off int, v uint64) int {
	for v >= 0x80 {
		dst[off] = byte(v) | 0x80
		v >>= 7
		off++
	}
	dst[off] = byte(v)
	return off + 1
}

// PutUvarints writes the first count values of vals consecutively into
// dst starting at off and returns the offset following the last byte
// written.  The result is identical to count calls to PutUvarint.
func PutUvarints(dst []byte, off int, vals []uint64, count int) int {
	for _, v := range vals[:count] {
		for v >= 0x80 {
			dst[off] = byte(v) | 0x80
			v >>= 7
			off++
		}
		dst[off] = byte(v)
		off++
	}
	return off
}

// PutVarint writes the zigzag mapping of v into dst at off as a base-128
// varint and returns the offset following the last byte written.  It
// writes SizeOfVarint(v) bytes.
func PutVarint(dst []byte, off int, v int64) int {
	return PutUvarint(dst, off, ZigZag(v))
}
