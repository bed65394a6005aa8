package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLeafPage_TypeByteAndCursor(t *testing.T) {
	r := require.New(t)

	p := NewLeafPage()
	r.Equal(PageTypeLeaf, p.Type())
	r.Equal(byte(PageTypeLeaf), p.Bytes()[0])
	r.Equal(leafCellPointerStart, p.Buffer().Forward())
}

func TestNewInteriorPage_TypeByteAndCursor(t *testing.T) {
	r := require.New(t)

	p := NewInteriorPage()
	r.Equal(PageTypeInternal, p.Type())
	r.Equal(byte(PageTypeInternal), p.Bytes()[0])
	r.Equal(StartOfInteriorCellPointers, p.Buffer().Forward())
}

func TestPage_AddChild_PropagatesKey(t *testing.T) {
	r := require.New(t)

	parent := NewInteriorPage()
	c1 := NewLeafPage()
	c1.Key = 10
	c2 := NewLeafPage()
	c2.Key = 20

	parent.AddChild(c1)
	parent.AddChild(c2)

	r.Equal(uint64(20), parent.Key)
	r.Len(parent.Children, 2)
}

func TestPage_SealLeaf_WritesCellCountAndContentArea(t *testing.T) {
	r := require.New(t)

	p := NewLeafPage()
	p.buf.PutBytesBW([]byte{1, 2, 3})
	p.buf.PutUint16(uint16(p.buf.Backward()))

	p.sealLeaf(1, false)

	r.Equal(uint16(1), p.buf.Uint16At(PositionCellCount))
	r.Equal(p.buf.Uint16At(StartOfContentArea), uint16(p.buf.Backward()))
}

func TestPage_SealLeaf_EmptyPageQuirk(t *testing.T) {
	r := require.New(t)

	p := NewLeafPage()
	b := p.buf.Backward()

	p.sealLeaf(0, true)

	r.Equal(uint16(b-1), p.buf.Uint16At(StartOfContentArea))
}
