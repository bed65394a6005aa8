package storage

import "io"

// firstTablePageNumber is where the emission walk starts numbering the
// user table's B-tree. Page 1 is the header/schema page; the table root
// is written immediately after it, so it lands at physical page 2 and
// must be numbered 2 to match.
const firstTablePageNumber = 2

// Write assembles db's tree, assigns final page numbers in pre-order, and
// streams every page (header page first, then the table tree in
// pre-order) to w. The sink's I/O errors are returned verbatim.
func Write(db *Database, w io.Writer) error {
	root := BuildTree(db.Leaves)

	counter := firstTablePageNumber
	assignPageNumbers(root, &counter)

	page1 := BuildPage1(db.TableName, db.SQL, uint32(countPages(root)+1))
	if _, err := w.Write(page1); err != nil {
		return err
	}

	return patchAndWrite(root, w)
}

// countPages returns the number of pages in the subtree rooted at p,
// itself included.
func countPages(p *Page) int {
	n := 1
	for _, c := range p.Children {
		n += countPages(c)
	}
	return n
}

// assignPageNumbers walks the tree in pre-order, handing out sequential
// page numbers starting from *counter. Every child-pointer field a
// parent needs to patch refers to a page that's already been numbered by
// the time patchAndWrite visits that parent, even though that child
// hasn't been written yet - the "back reference" the interior cells hold
// is resolved positionally, not through any runtime pointer.
func assignPageNumbers(p *Page, counter *int) {
	p.Number = uint32(*counter)
	*counter++
	for _, c := range p.Children {
		assignPageNumbers(c, counter)
	}
}

// patchAndWrite visits p in pre-order. For an interior page it writes the
// true cell count, patches every separator cell's 4-byte placeholder
// with its child's page number, and patches the header's
// rightmost-pointer slot with the last child's page number. It then
// writes p's raw bytes and recurses into each child in order, so the
// stream's page order always matches assignPageNumbers' numbering.
func patchAndWrite(p *Page, w io.Writer) error {
	if p.Type() == PageTypeInternal {
		numChildren := len(p.Children)

		p.buf.SetForward(PositionCellCount)
		p.buf.PutUint16(uint16(numChildren - 1))

		for i := 0; i < numChildren-1; i++ {
			pointerSlot := StartOfInteriorCellPointers + 2*i
			cellOffset := int(p.buf.Uint16At(pointerSlot))
			p.buf.PutUint32At(cellOffset, p.Children[i].Number)
		}

		p.buf.PutUint32At(PositionRightmostPointer, p.Children[numChildren-1].Number)
	}

	if _, err := w.Write(p.Bytes()); err != nil {
		return err
	}

	for _, c := range p.Children {
		if err := patchAndWrite(c, w); err != nil {
			return err
		}
	}
	return nil
}
