package util

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	goldutil "github.com/yuin/goldmark/util"
)

// NodeLines returns the raw source lines of a block node, or the text of an
// inline node.
func NodeLines(v ast.Node, source []byte) []byte {
	if v.Type() == ast.TypeInline {
		return v.Text(source)
	}

	var buf bytes.Buffer

	lines := v.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}

	return buf.Bytes()
}

// CollectText concatenates the text of every Text and String node below n,
// in document order, decoded the way the HTML renderer decodes it: backslash
// escapes are removed and entity references resolved. Raw text such as code
// span content is kept as is. Soft line breaks become a single space.
func CollectText(n ast.Node, source []byte) string {
	var buf bytes.Buffer

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch t := node.(type) {
		case *ast.Text:
			buf.Write(plainText(t, source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			if t.IsCode() || t.IsRaw() {
				buf.Write(t.Value)
			} else {
				buf.Write(decodeText(t.Value))
			}
		}

		return ast.WalkContinue, nil
	})

	return string(bytes.TrimSpace(buf.Bytes()))
}

// plainText is the decoded value of a text node.
func plainText(t *ast.Text, source []byte) []byte {
	value := t.Segment.Value(source)
	if t.IsRaw() {
		return value
	}

	return decodeText(value)
}

func decodeText(value []byte) []byte {
	value = goldutil.UnescapePunctuations(value)
	value = goldutil.ResolveNumericReferences(value)
	return goldutil.ResolveEntityNames(value)
}
