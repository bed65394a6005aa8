package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Integer0And1(t *testing.T) {
	r := require.New(t)

	st, data := Integer(0).Encode()
	r.Equal(uint64(8), st)
	r.Empty(data)

	st, data = Integer(1).Encode()
	r.Equal(uint64(9), st)
	r.Empty(data)
}

func TestValue_IntegerWidths(t *testing.T) {
	r := require.New(t)

	st, data := Integer(128).Encode()
	r.Equal(uint64(2), st)
	r.Equal([]byte{0x00, 0x80}, data)

	st, data = Integer(2).Encode()
	r.Equal(uint64(1), st)
	r.Equal([]byte{0x02}, data)

	st, data = Integer(-1).Encode()
	r.Equal(uint64(1), st)
	r.Equal([]byte{0xFF}, data)

	st, data = Integer(32768).Encode()
	r.Equal(uint64(3), st)
	r.Equal([]byte{0x00, 0x80, 0x00}, data)

	st, data = Integer(2147483648).Encode()
	r.Equal(uint64(5), st)
	r.Len(data, 6)

	st, data = Integer(1 << 62).Encode()
	r.Equal(uint64(6), st)
	r.Len(data, 8)
}

func TestValue_Float(t *testing.T) {
	r := require.New(t)

	st, data := Float(1.1).Encode()
	r.Equal(uint64(7), st)
	r.Equal([]byte{0x3F, 0xF1, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9A}, data)
}

func TestValue_Blob(t *testing.T) {
	r := require.New(t)

	st, data := Blob([]byte{1, 2, 3, 4, 5}).Encode()
	r.Equal(uint64(22), st)
	r.Equal([]byte{1, 2, 3, 4, 5}, data)
}

func TestValue_TextUsesUTF8ByteLength(t *testing.T) {
	r := require.New(t)

	st, data := Text("hello").Encode()
	r.Equal(uint64(23), st)
	r.Equal([]byte("hello"), data)

	// A multi-byte rune must be sized in bytes, not characters - this is
	// the fix for the distilled spec's flagged char-to-byte truncation bug.
	st, data = Text("é").Encode()
	r.Equal(uint64(2*2+13), st)
	r.Equal(2, len(data))
}
