package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_Serialize_FirstVarintIsRemainingLength(t *testing.T) {
	r := require.New(t)

	rec := NewRecord(5, []Value{Integer(1337), Text("hi")})
	buf := rec.Serialize()

	payloadLen, n, err := DecodeVarint(bytes.NewReader(buf))
	r.NoError(err)

	rowIDBytes := EncodeVarint(5)
	r.Equal(uint64(len(buf)-n-len(rowIDBytes)), payloadLen)
}

func TestRecord_Serialize_IntegerSerialTypes(t *testing.T) {
	r := require.New(t)

	cases := []struct {
		rowid      uint64
		value      Value
		wantSerial byte
		wantData   []byte
	}{
		{1, Integer(0), 8, []byte{}},
		{2, Integer(1), 9, []byte{}},
		{3, Integer(128), 2, []byte{0x00, 0x80}},
	}

	for _, c := range cases {
		rec := NewRecord(c.rowid, []Value{c.value})
		buf := rec.Serialize()

		_, n, err := DecodeVarint(bytes.NewReader(buf))
		r.NoError(err)
		rest := buf[n:]

		rowID, n2, err := DecodeVarint(bytes.NewReader(rest))
		r.NoError(err)
		r.Equal(c.rowid, rowID)
		rest = rest[n2:]

		headerLen, n3, err := DecodeVarint(bytes.NewReader(rest))
		r.NoError(err)
		r.Equal(uint64(2), headerLen) // 1 header-size byte + 1 serial type byte
		r.Equal(c.wantSerial, rest[n3])

		data := rest[int(headerLen):]
		r.Equal(c.wantData, []byte(data))
	}
}

func TestRecord_Serialize_Float(t *testing.T) {
	r := require.New(t)

	rec := NewRecord(1, []Value{Float(1.1)})
	buf := rec.Serialize()

	_, n, err := DecodeVarint(bytes.NewReader(buf))
	r.NoError(err)
	rest := buf[n:]
	_, n2, err := DecodeVarint(bytes.NewReader(rest))
	r.NoError(err)
	rest = rest[n2:]
	headerLen, n3, err := DecodeVarint(bytes.NewReader(rest))
	r.NoError(err)
	r.Equal(byte(7), rest[n3])
	r.Equal([]byte{0x3F, 0xF1, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9A}, rest[headerLen:])
}

func TestNewSchemaRecord(t *testing.T) {
	r := require.New(t)

	rec := NewSchemaRecord(1, "person", "CREATE TABLE person(name text)", 3)
	buf := rec.Serialize()

	_, n, err := DecodeVarint(bytes.NewReader(buf))
	r.NoError(err)
	rest := buf[n:]
	rowID, n2, err := DecodeVarint(bytes.NewReader(rest))
	r.NoError(err)
	r.Equal(uint64(1), rowID)
	rest = rest[n2:]

	headerLen, n3, err := DecodeVarint(bytes.NewReader(rest))
	r.NoError(err)
	serialTypes := rest[n3:headerLen]
	body := rest[headerLen:]

	// type, name, tbl_name are text; root_page is an integer; sql is text.
	r.Len(rec.Values, 5)
	r.NotEmpty(serialTypes)
	r.Contains(string(body), "table")
	r.Contains(string(body), "person")
	r.Contains(string(body), "CREATE TABLE person(name text)")
}
