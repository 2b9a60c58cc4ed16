package renderer

import (
	"fmt"

	goldast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
)

// Sink is the tag stream nodes render themselves into.
type Sink interface {
	Open(tag string, attrs ...html.Attribute)
	Close(tag string)
	// Text writes s escaped.
	Text(s string)
	// RawText writes s as is.
	RawText(s string)
	// CR ends the current line, unless nothing has been written on it.
	CR()
}

type htmlSink struct {
	w    util.BufWriter
	last byte
}

// NewSink returns a Sink writing HTML to w. Each sink assumes it starts at
// the beginning of a line.
func NewSink(w util.BufWriter) Sink {
	return &htmlSink{w: w, last: '\n'}
}

func (s *htmlSink) write(b []byte) {
	if len(b) == 0 {
		return
	}

	_, _ = s.w.Write(b)
	s.last = b[len(b)-1]
}

func (s *htmlSink) writeString(str string) {
	s.write([]byte(str))
}

func (s *htmlSink) Open(tag string, attrs ...html.Attribute) {
	s.writeString("<" + tag)
	for _, attr := range attrs {
		s.writeString(" " + attr.Key + `="`)
		s.write(util.EscapeHTML([]byte(attr.Val)))
		s.writeString(`"`)
	}
	s.writeString(">")
}

func (s *htmlSink) Close(tag string) {
	s.writeString("</" + tag + ">")
}

func (s *htmlSink) Text(str string) {
	s.write(util.EscapeHTML([]byte(str)))
}

func (s *htmlSink) RawText(str string) {
	s.writeString(str)
}

func (s *htmlSink) CR() {
	if s.last != '\n' {
		s.writeString("\n")
	}
}

// Attr builds a single attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// NodeAttributes returns the attributes of n in the order they were set.
func NodeAttributes(n goldast.Node) []html.Attribute {
	var attrs []html.Attribute

	for _, a := range n.Attributes() {
		var val string
		switch v := a.Value.(type) {
		case []byte:
			val = string(v)
		case string:
			val = v
		default:
			val = fmt.Sprintf("%v", v)
		}

		attrs = append(attrs, Attr(string(a.Name), val))
	}

	return attrs
}
