package ast

import (
	"fmt"

	goldast "github.com/yuin/goldmark/ast"
)

// FootnoteReference is an inline [^label] marker in body text.
type FootnoteReference struct {
	goldast.BaseInline

	Label string
	// Occurrence is the 1-based position of this reference among all
	// references to Label, in document order. Zero until counted.
	Occurrence int
}

var KindFootnoteReference = goldast.NewNodeKind("FootnoteReference")

func (n *FootnoteReference) Kind() goldast.NodeKind {
	return KindFootnoteReference
}

func (n *FootnoteReference) Dump(source []byte, level int) {
	goldast.DumpHelper(n, source, level, map[string]string{
		"Label":      n.Label,
		"Occurrence": fmt.Sprintf("%d", n.Occurrence),
	}, nil)
}

func NewFootnoteReference(label string) *FootnoteReference {
	return &FootnoteReference{Label: label}
}

// FootnoteDefinition is a block introduced by "[^label]:". Its children are
// the parsed content of the definition.
type FootnoteDefinition struct {
	goldast.BaseBlock

	Label string
	// Count is the number of references to Label in the document.
	Count int

	BackRefText  string
	BackRefClass string
	// RefIDPrefix is completed with an occurrence number to link back to
	// each reference.
	RefIDPrefix string
}

var KindFootnoteDefinition = goldast.NewNodeKind("FootnoteDefinition")

func (n *FootnoteDefinition) Kind() goldast.NodeKind {
	return KindFootnoteDefinition
}

func (n *FootnoteDefinition) Dump(source []byte, level int) {
	goldast.DumpHelper(n, source, level, map[string]string{
		"Label":       n.Label,
		"Count":       fmt.Sprintf("%d", n.Count),
		"RefIDPrefix": n.RefIDPrefix,
	}, nil)
}

func NewFootnoteDefinition(label string) *FootnoteDefinition {
	return &FootnoteDefinition{Label: label}
}

// FootnoteList holds a run of definitions that were adjacent in the source.
type FootnoteList struct {
	goldast.BaseBlock

	// Group identifies the run the list was built from.
	Group int
}

var KindFootnoteList = goldast.NewNodeKind("FootnoteList")

func (n *FootnoteList) Kind() goldast.NodeKind {
	return KindFootnoteList
}

func (n *FootnoteList) Dump(source []byte, level int) {
	goldast.DumpHelper(n, source, level, map[string]string{
		"Group": fmt.Sprintf("%d", n.Group),
	}, nil)
}

func NewFootnoteList(group int) *FootnoteList {
	return &FootnoteList{Group: group}
}
