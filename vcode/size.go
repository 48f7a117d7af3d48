package vcode

// SizeOfUvarint returns the number of bytes PutUvarint writes for v.
func SizeOfUvarint(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	}
	return MaxVarintLen64
}

// SizeOfVarint returns the number of bytes PutVarint writes for v.
func SizeOfVarint(v int64) int {
	return SizeOfUvarint(ZigZag(v))
}
