package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levels(items []*TOCItem) []string {
	var out []string
	for _, i := range items {
		out = append(out, i.Slug)
	}
	return out
}

func TestPushSiblings(t *testing.T) {
	toc := NewTableOfContents()
	for _, s := range []string{"a", "b", "c", "d"} {
		toc.Push(NewTOCItem(s, s), 2)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, levels(toc.Items))
	assert.Equal(t, 4, toc.Len())
}

func TestPushNested(t *testing.T) {
	toc := NewTableOfContents()
	toc.Push(NewTOCItem("a", "A"), 2)
	toc.Push(NewTOCItem("b", "B"), 3)
	toc.Push(NewTOCItem("c", "C"), 2)

	require.Len(t, toc.Items, 2)
	assert.Equal(t, []string{"b"}, levels(toc.Items[0].Children))
	assert.Empty(t, toc.Items[1].Children)
}

func TestPushSkippedLevelsFlatten(t *testing.T) {
	toc := NewTableOfContents()
	toc.Push(NewTOCItem("a", "A"), 1)
	toc.Push(NewTOCItem("b", "B"), 3)
	toc.Push(NewTOCItem("c", "C"), 2)
	toc.Push(NewTOCItem("d", "D"), 3)

	require.Len(t, toc.Items, 1)
	a := toc.Items[0]
	assert.Equal(t, []string{"b", "c"}, levels(a.Children))
	assert.Equal(t, []string{"d"}, levels(a.Children[1].Children))

	var depths []int
	toc.WalkTOC(func(_ *TOCItem, depth int) { depths = append(depths, depth) })
	assert.Equal(t, []int{0, 1, 1, 2}, depths)
}

func TestPushShallowerReturnsToTop(t *testing.T) {
	toc := NewTableOfContents()
	toc.Push(NewTOCItem("a", "A"), 3)
	toc.Push(NewTOCItem("b", "B"), 4)
	toc.Push(NewTOCItem("c", "C"), 2)
	toc.Push(NewTOCItem("d", "D"), 3)

	assert.Equal(t, []string{"a", "c"}, levels(toc.Items))
	assert.Equal(t, []string{"d"}, levels(toc.Items[1].Children))
}
