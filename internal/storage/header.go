package storage

import "encoding/binary"

// magicHeaderString is the fixed 16-byte SQLite file identifier.
var magicHeaderString = [16]byte{
	'S', 'Q', 'L', 'i', 't', 'e', ' ', 'f', 'o', 'r', 'm', 'a', 't', ' ', '3', 0,
}

// versionValidFor and sqliteVersionNumber are the two trailing 4-byte
// fields of the 100-byte header. They identify the SQLITE_VERSION_NUMBER
// this format was last validated against; the builder doesn't run any
// SQLite code itself, so these are carried as fixed constants.
var versionValidFor = [4]byte{0x00, 0x00, 0x03, 0xFA}
var sqliteVersionNumber = [4]byte{0x00, 0x2E, 0x5F, 0x1A}

// writeFileHeader fills in the 100-byte SQLite file header at the start
// of buf (which must have at least 100 bytes of room) given the final
// page count. Every field not listed in the format's comments is zero.
func writeFileHeader(buf *PageBuffer, totalPages uint32) {
	buf.PutBytes(magicHeaderString[:])
	buf.PutUint16(PageSize)
	buf.PutUint8(1) // file-format write version
	buf.PutUint8(1) // file-format read version
	buf.PutUint8(0) // reserved space per page
	buf.PutUint8(0x40)
	buf.PutUint8(0x20)
	buf.PutUint8(0x20)
	buf.PutUint32(1)          // file-change-counter
	buf.PutUint32(totalPages) // in-header database size
	buf.PutUint32(0)          // first freelist trunk page
	buf.PutUint32(0)          // total freelist pages
	buf.PutUint32(1)          // schema cookie
	buf.PutUint32(4)          // schema format
	buf.PutUint32(0)          // default page cache size
	buf.PutUint32(0)          // largest root b-tree page (non-vacuum mode)
	buf.PutUint32(1)          // text encoding: UTF-8
	buf.PutUint32(0)          // user version
	buf.PutUint32(0)          // incremental-vacuum mode off
	buf.PutUint32(0)          // application ID

	var reserved [20]byte
	buf.PutBytes(reserved[:])
	buf.PutBytes(versionValidFor[:])
	buf.PutBytes(sqliteVersionNumber[:])
}

// tableRootPage is the fixed page number the emission walk assigns to
// the user table's B-tree root: physical page 2, written immediately
// after the header/schema page. Must match firstTablePageNumber in
// writer.go.
const tableRootPage = 2

// BuildPage1 assembles page 1: the 100-byte file header followed by the
// sqlite_schema leaf holding the single table's schema row. totalPages is
// the final page count across the whole file, header page included.
func BuildPage1(tableName, sql string, totalPages uint32) []byte {
	buf := NewPageBuffer(PageSize)
	writeFileHeader(buf, totalPages)

	schemaRow := NewSchemaRecord(1, tableName, sql, tableRootPage).Serialize()
	buf.PutBytesBW(schemaRow)
	payloadOffset := buf.Backward()

	buf.PutUint8(byte(PageTypeLeaf))
	buf.PutUint16(0) // first freeblock
	buf.PutUint16(1) // cell count: one schema row
	buf.PutUint16(uint16(payloadOffset))
	buf.PutUint8(0) // fragmented free bytes
	buf.PutUint16(uint16(payloadOffset))

	return buf.Bytes()
}

// readUint32 is a small helper kept for symmetry with WriteTo-style
// teacher code; the builder never needs to parse a header back, but
// tests use it to assert the bytes written land at the right offsets.
func readUint32(buf []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(buf[offset : offset+4])
}
