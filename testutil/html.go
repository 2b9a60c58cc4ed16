package testutil

import (
	"bytes"
	"regexp"
	"sort"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"go4.org/bytereplacer"
	"golang.org/x/net/html"
)

var runOfSpace = regexp.MustCompile(`\s+`)

var textEscaper = bytereplacer.New(
	"&", "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// Whitespace around these is not significant.
var blockTags = map[string]bool{
	"blockquote": true, "div": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "hr": true, "li": true, "nav": true,
	"ol": true, "p": true, "pre": true, "table": true, "tbody": true,
	"td": true, "th": true, "thead": true, "tr": true, "ul": true,
}

// NormalizeHTML rewrites b so that two fragments differing only in
// insignificant whitespace, attribute order or entity choice compare equal.
func NormalizeHTML(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")

	var out []byte
	last := html.StartTagToken
	lastTag := ""
	inPre := false

	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return out

		case html.TextToken:
			text := bytes.Clone(tok.Text())
			if !inPre {
				text = runOfSpace.ReplaceAll(text, []byte(" "))
				if blockTags[lastTag] {
					text = bytes.TrimLeftFunc(text, unicode.IsSpace)
					if last == html.EndTagToken {
						text = bytes.TrimRightFunc(text, unicode.IsSpace)
					}
				}
			}
			out = append(out, textEscaper.Replace(text)...)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			tag := string(name)
			inPre = inPre || tag == "pre"
			if blockTags[tag] {
				out = bytes.TrimRightFunc(out, unicode.IsSpace)
			}

			out = append(out, '<')
			out = append(out, tag...)

			var attrs []html.Attribute
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = tok.TagAttr()
				attrs = append(attrs, html.Attribute{Key: string(k), Val: string(v)})
			}
			sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
			for _, a := range attrs {
				out = append(out, ' ')
				out = append(out, a.Key...)
				out = append(out, `="`...)
				out = append(out, html.EscapeString(a.Val)...)
				out = append(out, '"')
			}
			out = append(out, '>')
			lastTag = tag

		case html.EndTagToken:
			name, _ := tok.TagName()
			tag := string(name)
			if tag == "pre" {
				inPre = false
			} else if blockTags[tag] {
				out = bytes.TrimRightFunc(out, unicode.IsSpace)
			}
			out = append(out, "</"...)
			out = append(out, tag...)
			out = append(out, '>')
			lastTag = tag

		case html.CommentToken:
			out = append(out, tok.Raw()...)
		}

		last = tt
		if tt == html.SelfClosingTagToken {
			last = html.EndTagToken
		}
	}
}

// AssertHTML fails t when the two fragments differ after normalisation.
func AssertHTML(t *testing.T, expected string, actual string) {
	t.Helper()

	want := string(NormalizeHTML([]byte(expected)))
	got := string(NormalizeHTML([]byte(actual)))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HTML mismatch (-want +got):\n%s\nfull output:\n%s", diff, actual)
	}
}
