package storage

import (
	"encoding/binary"
	"fmt"
)

// PageBuffer is a fixed-size byte buffer written from both ends at once.
// SQLite pages grow their cell-pointer array forward from the header and
// their cell content backward from the end of the page; the two regions
// meet somewhere in the middle once the page is full. PageBuffer models
// that directly with a forward cursor and a backward cursor over one
// preallocated slice.
//
// All multi-byte values are big-endian, matching the SQLite file format.
type PageBuffer struct {
	data    []byte
	fwdPos  int
	backPos int
}

// NewPageBuffer allocates a PageBuffer of exactly size bytes, zero-filled.
func NewPageBuffer(size int) *PageBuffer {
	return &PageBuffer{
		data:    make([]byte, size),
		fwdPos:  0,
		backPos: size,
	}
}

// Len returns the buffer's fixed capacity.
func (b *PageBuffer) Len() int {
	return len(b.data)
}

// Forward returns the current forward cursor position.
func (b *PageBuffer) Forward() int {
	return b.fwdPos
}

// Backward returns the current backward cursor position.
func (b *PageBuffer) Backward() int {
	return b.backPos
}

// SetForward repositions the forward cursor, e.g. to patch bytes already
// written.
func (b *PageBuffer) SetForward(pos int) {
	b.fwdPos = pos
}

// SetBackward repositions the backward cursor.
func (b *PageBuffer) SetBackward(pos int) {
	b.backPos = pos
}

// Remaining reports how much unwritten space separates the two cursors.
func (b *PageBuffer) Remaining() int {
	return b.backPos - b.fwdPos
}

// Bytes returns the full underlying buffer, header through footer.
func (b *PageBuffer) Bytes() []byte {
	return b.data
}

// PutBytes writes p forward starting at the current forward cursor and
// advances it by len(p). Panics if p would write past the backward
// cursor: the two cursors are never allowed to cross.
func (b *PageBuffer) PutBytes(p []byte) {
	if b.fwdPos+len(p) > b.backPos {
		panic(fmt.Sprintf("storage: forward write of %d bytes at %d crosses backward cursor at %d", len(p), b.fwdPos, b.backPos))
	}
	n := copy(b.data[b.fwdPos:], p)
	b.fwdPos += n
}

// PutBytesBW moves the backward cursor back by len(p) and writes p there.
// Cell content is laid out this way so the last cell appended ends up
// first in memory order, right after the unallocated gap. Panics if p
// would write before the forward cursor.
func (b *PageBuffer) PutBytesBW(p []byte) {
	if b.backPos-len(p) < b.fwdPos {
		panic(fmt.Sprintf("storage: backward write of %d bytes at %d crosses forward cursor at %d", len(p), b.backPos, b.fwdPos))
	}
	b.backPos -= len(p)
	copy(b.data[b.backPos:], p)
}

// PutUint8 writes a single byte at the forward cursor.
func (b *PageBuffer) PutUint8(v uint8) {
	b.data[b.fwdPos] = v
	b.fwdPos++
}

// PutUint8BW writes a single byte at the backward cursor.
func (b *PageBuffer) PutUint8BW(v uint8) {
	b.backPos--
	b.data[b.backPos] = v
}

// PutUint16 writes a big-endian uint16 at the forward cursor.
func (b *PageBuffer) PutUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	b.PutBytes(buf[:])
}

// PutUint16BW writes a big-endian uint16 at the backward cursor.
func (b *PageBuffer) PutUint16BW(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	b.PutBytesBW(buf[:])
}

// PutUint32 writes a big-endian uint32 at the forward cursor.
func (b *PageBuffer) PutUint32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	b.PutBytes(buf[:])
}

// PutUint32BW writes a big-endian uint32 at the backward cursor.
func (b *PageBuffer) PutUint32BW(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	b.PutBytesBW(buf[:])
}

// PutUint32At overwrites 4 bytes at an absolute offset without moving
// either cursor. Used to patch interior-cell child-pointer placeholders
// once the real page number is known.
func (b *PageBuffer) PutUint32At(offset int, v uint32) {
	binary.BigEndian.PutUint32(b.data[offset:offset+4], v)
}

// Uint16At reads a big-endian uint16 at an absolute offset.
func (b *PageBuffer) Uint16At(offset int) uint16 {
	return binary.BigEndian.Uint16(b.data[offset : offset+2])
}

// Uint32At reads a big-endian uint32 at an absolute offset.
func (b *PageBuffer) Uint32At(offset int) uint32 {
	return binary.BigEndian.Uint32(b.data[offset : offset+4])
}
