package ast

import (
	"fmt"
	"strings"

	goldast "github.com/yuin/goldmark/ast"
)

// TOCItem is one heading in the outline.
type TOCItem struct {
	Slug     string
	Title    string
	Children []*TOCItem

	// level of the most recent entry appended to Children.
	level int
}

func NewTOCItem(slug, title string) *TOCItem {
	return &TOCItem{Slug: slug, Title: title}
}

// TableOfContents is the outline of a document's headings. It renders itself
// and has no goldmark children.
type TableOfContents struct {
	goldast.BaseBlock

	Items []*TOCItem

	Class        string
	WrapInNav    bool
	HeadingLevel int
	HeadingText  string

	level int
}

var KindTableOfContents = goldast.NewNodeKind("TableOfContents")

func (n *TableOfContents) Kind() goldast.NodeKind {
	return KindTableOfContents
}

func (n *TableOfContents) Dump(source []byte, level int) {
	goldast.DumpHelper(n, source, level, map[string]string{
		"Class":   n.Class,
		"Entries": fmt.Sprintf("%d", n.Len()),
	}, func(subLevel int) {
		dumpTOCItems(n.Items, subLevel)
	})
}

func dumpTOCItems(items []*TOCItem, level int) {
	indent := strings.Repeat("    ", level)
	for _, item := range items {
		fmt.Printf("%sTOCItem {\n", indent)
		fmt.Printf("%s    Slug: %s\n", indent, item.Slug)
		fmt.Printf("%s    Title: %s\n", indent, item.Title)
		dumpTOCItems(item.Children, level+1)
		fmt.Printf("%s}\n", indent)
	}
}

func NewTableOfContents() *TableOfContents {
	return &TableOfContents{}
}

// Push adds a heading of the given level to the outline. A heading deeper
// than the last entry at the current branch descends into that entry;
// anything else becomes a sibling and resets the branch's level. Skipped
// levels are flattened, so the depth of an entry is never more than one
// below the depth of the entry before it.
func (n *TableOfContents) Push(item *TOCItem, level int) {
	n.Items, n.level = pushTOCItem(n.Items, n.level, item, level)
}

func pushTOCItem(items []*TOCItem, current int, item *TOCItem, level int) ([]*TOCItem, int) {
	if len(items) > 0 && level > current {
		last := items[len(items)-1]
		last.Children, last.level = pushTOCItem(last.Children, last.level, item, level)
		return items, current
	}

	return append(items, item), level
}

// Len is the total number of entries, at any depth.
func (n *TableOfContents) Len() int {
	return countTOCItems(n.Items)
}

func countTOCItems(items []*TOCItem) int {
	total := len(items)
	for _, item := range items {
		total += countTOCItems(item.Children)
	}
	return total
}

// WalkTOC calls fn for every entry in document order with its depth, 0 for
// top-level entries.
func (n *TableOfContents) WalkTOC(fn func(item *TOCItem, depth int)) {
	walkTOCItems(n.Items, 0, fn)
}

func walkTOCItems(items []*TOCItem, depth int, fn func(item *TOCItem, depth int)) {
	for _, item := range items {
		fn(item, depth)
		walkTOCItems(item.Children, depth+1, fn)
	}
}
