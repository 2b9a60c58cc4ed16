package extension

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elseano/mdstruct/pkg/ast"
	"github.com/elseano/mdstruct/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

func convert(t *testing.T, md goldmark.Markdown, src string) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(src), &buf))
	return buf.String()
}

func TestFootnoteEndToEnd(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(Footnotes))

	out := convert(t, md, "Hello![^foo]\n\n[^foo]: bar!\n    Newline or *something*\n")

	assert.Equal(t, `<p>Hello!<a class="footnotes-ref" href="#fnd-foo" id="fnr-foo-1">foo</a></p>
<ul class="footnotes-list">
<li id="fnd-foo" class="footnotes-def">
<a href="#fnr-foo-1" class="footnote-back">&#8593;</a>
<strong>foo</strong>:
<p>bar!
Newline or <em>something</em></p>
</li>
</ul>
`, out)
}

func TestFootnoteTree(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(Footnotes))
	src := []byte("Hello![^foo]\n\n[^foo]: bar!\n    Newline or *something*\n")

	doc := md.Parser().Parse(text.NewReader(src))

	refs := ast.FindKind(doc, ast.KindFootnoteReference)
	require.Len(t, refs, 1)
	assert.Equal(t, 1, refs[0].(*ast.FootnoteReference).Occurrence)

	defs := ast.FindKind(doc, ast.KindFootnoteDefinition)
	require.Len(t, defs, 1)
	assert.Equal(t, 1, defs[0].(*ast.FootnoteDefinition).Count)
	assert.Equal(t, ast.KindFootnoteList, defs[0].Parent().Kind())
}

func TestFootnoteOptions(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(NewFootnotes(
		WithIDPrefixes("note", "back"),
		WithBackRef("^", "up"),
		WithFootnoteClasses("def", "ref", "notes"),
	)))

	out := convert(t, md, "See[^A Note] and[^A Note].\n\n[^A Note]: Text.\n")

	testutil.AssertHTML(t, `<p>See<a class="ref" href="#note-a-note" id="back-a-note-1">A Note</a>
and<a class="ref" href="#note-a-note" id="back-a-note-2">A Note</a>.</p>
<ul class="notes">
<li id="note-a-note" class="def">
<a href="#back-a-note-1" class="up">^</a>
<a href="#back-a-note-2" class="up">^</a>
<strong>A Note</strong>:
<p>Text.</p>
</li>
</ul>`, out)
}

func TestTOCEndToEnd(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(TableOfContents))

	out := convert(t, md, "# Title\n\n## One\n\n### One A\n\n## Two\n")

	assert.Equal(t, `<h1 id="title">Title</h1>
<ol class="table-of-contents">
<li><a href="#one">One</a>
<ol>
<li><a href="#one-a">One A</a></li>
</ol>
</li>
<li><a href="#two">Two</a></li>
</ol>
<h2 id="one">One</h2>
<h3 id="one-a">One A</h3>
<h2 id="two">Two</h2>
`, out)
}

func TestTOCDecodesTitles(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(TableOfContents))

	out := convert(t, md, "## Fish &amp; Chips\n\n## 2 \\* 3 \\[x\\]\n\n## Use `go test` *now*\n")

	assert.Equal(t, `<ol class="table-of-contents">
<li><a href="#fish--chips">Fish &amp; Chips</a></li>
<li><a href="#2--3-x">2 * 3 [x]</a></li>
<li><a href="#use-go-test-now">Use go test now</a></li>
</ol>
<h2 id="fish--chips">Fish &amp; Chips</h2>
<h2 id="2--3-x">2 * 3 [x]</h2>
<h2 id="use-go-test-now">Use <code>go test</code> <em>now</em></h2>
`, out)
}

func TestTOCFlatLevels(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(TableOfContents))
	doc := md.Parser().Parse(text.NewReader([]byte("## A\n\n## B\n\n## C\n\n## D\n")))

	found := ast.FindKind(doc, ast.KindTableOfContents)
	require.Len(t, found, 1)

	toc := found[0].(*ast.TableOfContents)
	assert.Len(t, toc.Items, 4)
	for _, item := range toc.Items {
		assert.Empty(t, item.Children)
	}
}

func TestTOCShortDocument(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(TableOfContents))

	out := convert(t, md, "## Only\n\nText\n")

	assert.Equal(t, "<h2 id=\"only\">Only</h2>\n<p>Text</p>\n", out)
}

func TestTOCOptions(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(NewTableOfContents(
		WithTitles(true),
		WithNav(),
		WithTOCClass("outline"),
		WithTOCHeading(2, "Contents"),
		WithMinHeadings(3),
	)))

	out := convert(t, md, "# Title\n\n## One\n\n## Two\n")

	testutil.AssertHTML(t, `<nav class="outline"><h2>Contents</h2><ol>
<li><a href="#title">Title</a></li>
<li><a href="#one">One</a></li>
<li><a href="#two">Two</a></li>
</ol></nav>
<h1 id="title">Title</h1>
<h2 id="one">One</h2>
<h2 id="two">Two</h2>`, out)
}

func TestTOCRespectsExistingIDs(t *testing.T) {
	md := goldmark.New(
		goldmark.WithExtensions(TableOfContents),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	out := convert(t, md, "## Same\n\n## Same\n")

	// goldmark's own ids are unique; they are kept as they are.
	assert.Contains(t, out, `<a href="#same-1">Same</a>`)
	assert.Contains(t, out, `<h2 id="same-1">Same</h2>`)
}

func TestTOCFrontMatter(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta, TableOfContents))

	out := convert(t, md, "---\ntoc: false\n---\n## A\n\n## B\n")
	assert.NotContains(t, out, "table-of-contents")

	out = convert(t, md, "---\ntoc_heading: On this page\n---\n## A\n\n## B\n")
	assert.Contains(t, out, "<h2>On this page</h2>\n<ol class=\"table-of-contents\">")
}

func TestMathEndToEnd(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(NewMath(
		WithMathRenderer(func(source string, inline bool) (string, error) {
			if inline {
				return "<mi>" + source + "</mi>", nil
			}
			return "<mrow>" + source + "</mrow>", nil
		}),
	)))

	out := convert(t, md, "Let $x$ be\n\n$$y$$\n")

	assert.Equal(t, "<p>Let <span class=\"math inline\"><mi>x</mi></span> be</p>\n<p><span class=\"math display\"><mrow>y</mrow></span></p>\n", out)
}

func TestHighlight(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(NewHighlight("github", true)))

	out := convert(t, md, "```go\npackage main\n```\n")

	assert.Contains(t, out, `class="chroma"`)
	assert.NotContains(t, out, "language-go")
}

// Each fixture is Markdown, a line of five dashes, then the expected HTML.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("_testdata/*.md")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	md := goldmark.New(goldmark.WithExtensions(meta.Meta, Footnotes, TableOfContents, Math))

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			data, err := os.ReadFile(file)
			require.NoError(t, err)

			parts := strings.SplitN(string(data), "\n-----\n", 2)
			require.Len(t, parts, 2, "fixture needs a ----- separator")

			testutil.AssertHTML(t, parts[1], convert(t, md, parts[0]+"\n"))
		})
	}
}
