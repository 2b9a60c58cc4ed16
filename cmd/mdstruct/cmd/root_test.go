package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elseano/mdstruct/pkg/util"
	"github.com/elseano/mdstruct/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	file, expected := fixture(t, "_testdata/render.md")

	actual, err := runCommand(t, file)
	require.NoError(t, err)

	testutil.AssertHTML(t, expected, actual)
}

func TestRenderToFile(t *testing.T) {
	file, expected := fixture(t, "_testdata/render.md")
	output := filepath.Join(t.TempDir(), "out.html")

	_, err := runCommand(t, "-o", output, file)
	require.NoError(t, err)

	actual, err := os.ReadFile(output)
	require.NoError(t, err)
	testutil.AssertHTML(t, expected, string(actual))
}

func TestRenderSubcommand(t *testing.T) {
	file, expected := fixture(t, "_testdata/render.md")

	actual, err := runCommand(t, "render", file)
	require.NoError(t, err)

	testutil.AssertHTML(t, expected, actual)
}

func TestRenderWithoutExtras(t *testing.T) {
	file, _ := fixture(t, "_testdata/render.md")

	actual, err := runCommand(t, "--no-toc", "--no-footnotes", file)
	require.NoError(t, err)

	assert.NotContains(t, actual, "table-of-contents")
	assert.NotContains(t, actual, "footnotes-ref")
}

func TestRenderFlagsOverrideConfig(t *testing.T) {
	file, _ := fixture(t, "_testdata/render.md")

	actual, err := runCommand(t, "--nav", "--toc-class", "outline", file)
	require.NoError(t, err)

	assert.Contains(t, actual, `<nav class="outline">`)
}

func TestRenderConfigFile(t *testing.T) {
	file, _ := fixture(t, "_testdata/render.md")
	conf := filepath.Join(t.TempDir(), "mdstruct.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("footnote:\n  list_class: notes\ntoc:\n  min_headings: 10\n"), 0o644))

	actual, err := runCommand(t, "--config", conf, file)
	require.NoError(t, err)

	assert.Contains(t, actual, `<ul class="notes">`)
	assert.NotContains(t, actual, "table-of-contents")
}

func TestRenderConfigHeadingText(t *testing.T) {
	file, _ := fixture(t, "_testdata/render.md")
	conf := filepath.Join(t.TempDir(), "mdstruct.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("toc:\n  toc_heading: Contents\n"), 0o644))

	actual, err := runCommand(t, "--config", conf, file)
	require.NoError(t, err)

	assert.Contains(t, actual, "<h2>Contents</h2>")
}

func TestTOC(t *testing.T) {
	file, expected := fixture(t, "_testdata/toc.md")

	actual, err := runCommand(t, "toc", "--cols", "80", file)
	require.NoError(t, err)

	testutil.AssertLines(t, expected, strings.TrimSpace(actual))
}

func TestTOCMarkdown(t *testing.T) {
	file, _ := fixture(t, "_testdata/toc.md")

	actual, err := runCommand(t, "toc", "--markdown", file)
	require.NoError(t, err)

	testutil.AssertLines(t, "- [Install](#install)\n  - [Deep](#deep)\n  - [From source](#from-source)\n- [Usage](#usage)\n", actual)
}

func TestAST(t *testing.T) {
	file, _ := fixture(t, "_testdata/render.md")

	actual, err := runCommand(t, "ast", file)
	require.NoError(t, err)

	assert.Contains(t, actual, "TableOfContents {")
	assert.Contains(t, actual, "FootnoteList {")
	assert.Contains(t, actual, "FootnoteReference {")
}

func TestCheck(t *testing.T) {
	file, _ := fixture(t, "_testdata/check.md")

	actual, err := runCommand(t, "check", file)
	assert.ErrorIs(t, err, ErrorCheck)

	lines := map[string]string{}
	for _, line := range strings.Split(actual, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			lines[fields[0]] = strings.Join(fields[1:], " ")
		}
	}

	assert.Equal(t, "1 0 undefined", lines["missing"])
	assert.Equal(t, "1 1 ok", lines["ok"])
	assert.Equal(t, "0 1 unreferenced", lines["spare"])
}

func TestCheckClean(t *testing.T) {
	file := writeTemp(t, "Fine[^a].\n\n[^a]: Yes.\n")

	_, err := runCommand(t, "check", file)
	assert.NoError(t, err)
}

func TestCheckEmoji(t *testing.T) {
	file := writeTemp(t, "Happy :smile: and :not_an_emoji_at_all: but `:in_code:`.\n")

	actual, err := runCommand(t, "check", "--emoji", file)
	assert.ErrorIs(t, err, ErrorCheck)

	assert.Contains(t, actual, ":not_an_emoji_at_all:")
	assert.Contains(t, actual, "unknown emoji")
	assert.NotContains(t, actual, ":smile:")
	assert.NotContains(t, actual, ":in_code:")
}

func TestView(t *testing.T) {
	file := writeTemp(t, "---\ntoc_heading: Contents\n---\n## Install\n\nSome text.\n\n## Usage\n")

	actual, err := runCommand(t, "view", "--cols", "80", file)
	require.NoError(t, err)

	plain := util.RemoveColors(actual)
	assert.Contains(t, plain, "Contents")
	assert.Contains(t, plain, "Some text.")
	assert.NotContains(t, plain, "toc_heading")
}

func TestStripFrontMatter(t *testing.T) {
	assert.Equal(t, "# Hi\n", string(stripFrontMatter([]byte("---\na: 1\n---\n# Hi\n"))))
	assert.Equal(t, "# Hi\n", string(stripFrontMatter([]byte("# Hi\n"))))
	assert.Equal(t, "---\nunterminated\n", string(stripFrontMatter([]byte("---\nunterminated\n"))))
}

func TestMissingFile(t *testing.T) {
	_, err := runCommand(t, filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)

	var buf bytes.Buffer
	assert.Equal(t, ErrorInput, handleError(&buf, err))
	assert.Contains(t, buf.String(), "Error")
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer

	assert.Nil(t, handleError(&buf, nil))
	assert.Equal(t, ErrorArg, handleError(&buf, fmt.Errorf("%w: bad", ErrorArg)))
	assert.Equal(t, ErrorCheck, handleError(&buf, fmt.Errorf("%w: 2 problems", ErrorCheck)))
	assert.Equal(t, ErrorInternal, handleError(&buf, errors.New("boom")))
}

func TestBadFlag(t *testing.T) {
	_, err := runCommand(t, "--no-such-flag")

	assert.ErrorIs(t, err, ErrorArg)
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buffer bytes.Buffer

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&buffer)
	root.SetErr(&buffer)
	err := root.Execute()

	t.Logf("mdstruct %s:", strings.Join(args, " "))
	for i, line := range strings.Split(buffer.String(), "\n") {
		t.Logf("%3d: %s", i, line)
	}

	return buffer.String(), err
}

func writeTemp(t *testing.T, source string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(file, []byte(source), 0o644))
	return file
}

// fixture splits a test file at its ----- line, writes the Markdown half to
// a temporary file and returns that file with the expected output.
func fixture(t *testing.T, filename string) (file string, expected string) {
	t.Helper()

	fp, err := os.Open(filename)
	require.NoError(t, err)
	defer fp.Close()

	var source strings.Builder
	var output strings.Builder
	scanningSource := true

	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "-----") {
			scanningSource = false
		} else if scanningSource {
			source.WriteString(line + "\n")
		} else {
			output.WriteString(line + "\n")
		}
	}
	require.NoError(t, scanner.Err())

	return writeTemp(t, source.String()), strings.TrimSpace(output.String())
}
