package storage

// interiorFullnessMargin is the conservative headroom reserved on an
// interior page before folding starts a fresh one: a 2-byte cell
// pointer, a 4-byte child-pointer placeholder, up to an 8-byte varint
// key, plus seal bytes.
const interiorFullnessMargin = 15

// separatorPlaceholder is the 4-byte child-page-number slot at the head
// of every separator cell, patched to the real page number during
// emission. The separator key varint follows it directly, as SQLite's
// interior-cell layout expects.
var separatorPlaceholder = [4]byte{}

// BuildTree folds an ordered list of same-level pages into a single root
// page by repeatedly grouping them into interior pages. A single input
// page is returned unchanged - no interior level is built over one leaf.
func BuildTree(level []*Page) *Page {
	for len(level) > 1 {
		level = fold(level)
	}
	return level[0]
}

// fold groups one level of pages into the interior pages of the level
// above, returning those interior pages in left-to-right order. The cell
// count each seal writes here is provisional - the emission walk in
// writer.go recomputes and overwrites it per page once every page's own
// final child count is known, so what's written during folding never
// needs to be exact.
func fold(children []*Page) []*Page {
	var parents []*Page
	current := NewInteriorPage()

	for i, child := range children {
		last := i == len(children)-1

		if !last && current.buf.Backward() <= current.buf.Forward()+interiorFullnessMargin {
			current.sealInterior(uint16(len(current.Children)))
			parents = append(parents, current)
			current = NewInteriorPage()
		}

		if last {
			current.AddChild(child)
			continue
		}

		cell := append(append([]byte{}, separatorPlaceholder[:]...), EncodeVarint(child.Key)...)
		current.buf.PutBytesBW(cell)
		current.buf.PutUint16(uint16(current.buf.Backward()))
		current.AddChild(child)
	}

	current.sealInterior(uint16(len(current.Children) - 1))
	parents = append(parents, current)
	return parents
}
