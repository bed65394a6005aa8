package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTree_SingleLeaf_NoInteriorLevel(t *testing.T) {
	r := require.New(t)

	leaf := NewLeafPage()
	leaf.Key = 42

	root := BuildTree([]*Page{leaf})
	r.Same(leaf, root)
}

func TestBuildTree_FewLeaves_OneInteriorLevel(t *testing.T) {
	r := require.New(t)

	leaves := make([]*Page, 3)
	for i := range leaves {
		leaves[i] = NewLeafPage()
		leaves[i].Key = uint64(i + 1)
	}

	root := BuildTree(leaves)
	r.Equal(PageTypeInternal, root.Type())
	r.Len(root.Children, 3)
	r.Equal(uint64(3), root.Key)
	r.Same(leaves[2], root.Children[2])
}

func TestFold_ManyLeaves_SplitsAcrossMultipleInteriorPages(t *testing.T) {
	r := require.New(t)

	leaves := make([]*Page, 2000)
	for i := range leaves {
		leaves[i] = NewLeafPage()
		leaves[i].Key = uint64(i + 1)
	}

	parents := fold(leaves)
	r.Greater(len(parents), 1)

	total := 0
	for _, p := range parents {
		total += len(p.Children)
	}
	r.Equal(len(leaves), total)

	// The last parent holds the true maximum (the globally last leaf).
	r.Equal(leaves[len(leaves)-1].Key, parents[len(parents)-1].Key)
}
