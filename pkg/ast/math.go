package ast

import (
	"fmt"

	goldast "github.com/yuin/goldmark/ast"
)

// Math is a $...$ (inline) or $$...$$ (display) formula.
type Math struct {
	goldast.BaseInline

	Source string
	Inline bool
}

var KindMath = goldast.NewNodeKind("Math")

func (n *Math) Kind() goldast.NodeKind {
	return KindMath
}

func (n *Math) Dump(source []byte, level int) {
	goldast.DumpHelper(n, source, level, map[string]string{
		"Source": n.Source,
		"Inline": fmt.Sprintf("%v", n.Inline),
	}, nil)
}

func NewMath(source string, inline bool) *Math {
	return &Math{Source: source, Inline: inline}
}
