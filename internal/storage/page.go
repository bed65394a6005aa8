package storage

// PageType identifies a page's SQLite b-tree page type byte.
type PageType byte

const (
	// PageTypeInternal is a table-interior page: cells hold
	// (child-pointer, separator key) pairs, no row data.
	PageTypeInternal PageType = 0x05

	// PageTypeLeaf is a table-leaf page: cells hold full row payloads.
	PageTypeLeaf PageType = 0x0D
)

// Page size constants. The format fixes the page size at 4096 and never
// negotiates a different one with the caller.
const (
	PageSize = 4096

	// PositionCellCount is the offset of the 2-byte cell-count field
	// common to both page header shapes.
	PositionCellCount = 3

	// PositionRightmostPointer is the offset of the rightmost-child page
	// number, present only on interior pages.
	PositionRightmostPointer = 8

	// StartOfContentArea is the offset of the cell-content-area-start
	// field, common to both page header shapes.
	StartOfContentArea = 5

	// StartOfInteriorCellPointers is where an interior page's cell
	// pointer array begins, after its 12-byte header.
	StartOfInteriorCellPointers = 12

	// leafCellPointerStart is where a leaf page's cell pointer array
	// begins, after its 8-byte header.
	leafCellPointerStart = 8
)

// Page wraps a PageBuffer with the bookkeeping the tree assembler needs:
// its type, the largest rowid reachable in its subtree, its children (for
// interior pages), and the page number it's assigned at emission time.
type Page struct {
	buf      *PageBuffer
	pageType PageType

	// Key is the largest rowid in this page's subtree: its own last cell
	// for a leaf, or the maximum of its children's keys for an interior.
	Key uint64

	// Children holds this interior page's child pages in left-to-right
	// order, the rightmost one included. Leaf pages never have children.
	Children []*Page

	// Number is the page's final, 1-based page number. Zero until the
	// emission walk assigns it.
	Number uint32
}

// NewLeafPage allocates an empty table-leaf page: type byte 0x0D written
// immediately, forward cursor positioned past the 8-byte header at the
// start of the cell-pointer region.
func NewLeafPage() *Page {
	buf := NewPageBuffer(PageSize)
	buf.PutUint8(byte(PageTypeLeaf))
	buf.SetForward(leafCellPointerStart)
	return &Page{buf: buf, pageType: PageTypeLeaf}
}

// NewInteriorPage allocates an empty table-interior page: type byte 0x05
// written immediately, forward cursor positioned past the 12-byte header.
func NewInteriorPage() *Page {
	buf := NewPageBuffer(PageSize)
	buf.PutUint8(byte(PageTypeInternal))
	buf.SetForward(StartOfInteriorCellPointers)
	return &Page{buf: buf, pageType: PageTypeInternal}
}

// Type reports the page's SQLite page-type byte.
func (p *Page) Type() PageType {
	return p.pageType
}

// Buffer exposes the underlying PageBuffer for the builder and tree
// assembler, which both need direct cursor control to implement the
// seal and patch steps.
func (p *Page) Buffer() *PageBuffer {
	return p.buf
}

// AddChild appends c to this interior page's child list and raises Key to
// c's key if c's subtree reaches further.
func (p *Page) AddChild(c *Page) {
	p.Children = append(p.Children, c)
	if c.Key > p.Key {
		p.Key = c.Key
	}
}

// sealLeaf finalizes a leaf page's header once no more records will be
// added to it: writes cell count and the cell-content-area start. The
// emptyPage flag implements the builder's b-1 quirk for a final page that
// never received any records.
func (p *Page) sealLeaf(numCells uint16, emptyPage bool) {
	p.buf.SetForward(PositionCellCount)
	p.buf.PutUint16(numCells)

	contentStart := p.buf.Backward()
	if emptyPage {
		contentStart--
	}
	p.buf.PutUint16(uint16(contentStart))
}

// sealInterior finalizes an interior page's header: the cell count here
// is the number of separator cells, i.e. children minus the rightmost
// one. The forward cursor is then nudged past the header's remaining
// padding bytes, matching the reference builder's bookkeeping exactly.
func (p *Page) sealInterior(numSeparators uint16) {
	p.buf.SetForward(PositionCellCount)
	p.buf.PutUint16(numSeparators)
	p.buf.PutUint16(uint16(p.buf.Backward()))
	p.buf.SetForward(p.buf.Forward() + 5)
}

// Bytes returns the page's raw 4096-byte on-disk representation.
func (p *Page) Bytes() []byte {
	return p.buf.Bytes()
}
