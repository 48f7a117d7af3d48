package vcode

// DecodeVarint reads a zigzag-encoded varint from src at off, stores the
// value in dst[dstOff], and returns the offset following the last byte
// read.  A varint that runs off the end of src panics.
func DecodeVarint(src []byte, off int, dst []int64, dstOff int) int {
	v, off := Varint(src, off)
	dst[dstOff] = v
	return off
}

// DecodeVarints reads count consecutive zigzag-encoded varints from src
// starting at off into dst[:count] and returns the offset following the
// last byte read.
func DecodeVarints(src []byte, off int, dst []int64, count int) int {
	for k := 0; k < count; k++ {
		off = DecodeVarint(src, off, dst, k)
	}
	return off
}

// Varint is like DecodeVarint but returns the value instead of storing it.
func Varint(src []byte, off int) (int64, int) {
	u, off := Uvarint(src, off)
	return UnZigZag(u), off
}

// Uvarint reads a base-128 varint from src at off and returns its value and
// the offset following the last byte read.  Uvarint decodes what
// PutUvarint and PutUvarints write; bits beyond the 64th are discarded.
func Uvarint(src []byte, off int) (uint64, int) {
	b := src[off]
	off++
	u := uint64(b & 0x7f)
	for shift := uint(7); b&0x80 != 0; shift += 7 {
		b = src[off]
		off++
		u |= uint64(b&0x7f) << shift
	}
	return u, off
}

// Fixed32 reads 4 big-endian bytes from src at off and returns them as an
// int32 along with off+4.  It decodes what PutFixed32 writes.
func Fixed32(src []byte, off int) (int32, int) {
	_ = src[off+3] // bounds check hint to compiler
	u := uint32(src[off])<<24 | uint32(src[off+1])<<16 | uint32(src[off+2])<<8 | uint32(src[off+3])
	return int32(u), off + Fixed32Len
}
