package storage

import "io"

// EncodeVarint encodes v using SQLite's big-endian variable-length integer
// format: values that fit in 56 bits are written as 1-8 bytes, each byte
// carrying 7 payload bits with the high bit set on every byte but the
// last. Values that need more than 56 bits use a 9-byte form where the
// first 8 bytes each carry 7 payload bits (high bit set) and the 9th byte
// carries the low 8 bits of v verbatim. Zero encodes as a single 0x00.
//
// The result is always the shortest legal encoding of v.
func EncodeVarint(v uint64) []byte {
	const highBit56 = uint64(0xff) << 56
	if v&highBit56 == 0 {
		if v == 0 {
			return []byte{0}
		}

		var buf [8]byte
		n := 0
		for v != 0 {
			buf[n] = byte(v&0x7f) | 0x80
			v >>= 7
			n++
		}
		buf[0] &^= 0x80

		// buf was filled least-significant-byte-first; reverse into result.
		result := make([]byte, n)
		for i := 0; i < n; i++ {
			result[i] = buf[n-1-i]
		}
		return result
	}

	result := make([]byte, 9)
	result[8] = byte(v)
	v >>= 8
	for i := 7; i >= 0; i-- {
		result[i] = byte(v&0x7f) | 0x80
		v >>= 7
	}
	return result
}

// DecodeVarint reads a SQLite varint from r, returning the decoded value
// and the number of bytes consumed (1-9).
func DecodeVarint(r io.ByteReader) (uint64, int, error) {
	var result uint64
	for i := 0; i < 9; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, i, err
		}

		if i == 8 {
			// The 9th byte carries all 8 bits, no continuation semantics.
			result = (result << 8) | uint64(b)
			return result, 9, nil
		}

		result = (result << 7) | uint64(b&0x7f)
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
	}

	return result, 9, nil
}
