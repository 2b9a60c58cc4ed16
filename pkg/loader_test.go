package mdstruct

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/elseano/mdstruct/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `---
title: Sample
---
# Sample

## Intro

Text with a note[^one] and another[^two] and[^one].

## Details :smile:

| a | b |
|---|---|
| 1 | 2 |

[^one]: First.

[^unused]: Nobody points here.
`

func TestLoadBytes(t *testing.T) {
	doc := LoadString(sample, "sample.md", config.Default())

	assert.Equal(t, "Sample", doc.Meta["title"])

	toc := doc.TableOfContents()
	require.NotNil(t, toc)
	assert.Equal(t, 2, toc.Len())

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	out := buf.String()

	assert.Contains(t, out, `<ol class="table-of-contents">`)
	assert.Contains(t, out, `<table>`)
	assert.Contains(t, out, `id="fnr-one-2"`)
	assert.Contains(t, out, `:smile:`)
}

func TestEmojiExtension(t *testing.T) {
	cfg := config.Default()
	cfg.Extensions.Emoji = true

	var buf bytes.Buffer
	require.NoError(t, LoadString(sample, "sample.md", cfg).Render(&buf))

	assert.NotContains(t, buf.String(), ":smile:")
}

func TestDisabledExtensions(t *testing.T) {
	cfg := config.Default()
	cfg.Extensions.TOC = false
	cfg.Extensions.Footnotes = false

	doc := LoadString(sample, "sample.md", cfg)

	assert.Nil(t, doc.TableOfContents())
	assert.Empty(t, doc.Footnotes())
	assert.Equal(t, 2, doc.Outline().Len())
}

func TestFootnoteStatus(t *testing.T) {
	doc := LoadString(sample+"\nMissing[^gone].\n", "sample.md", config.Default())

	statuses := doc.Footnotes()
	require.Len(t, statuses, 4)

	assert.Equal(t, "gone", statuses[0].Label)
	assert.True(t, statuses[0].Undefined())

	assert.Equal(t, "one", statuses[1].Label)
	assert.Equal(t, 2, statuses[1].References)
	assert.True(t, statuses[1].OK())

	assert.Equal(t, "two", statuses[2].Label)
	assert.True(t, statuses[2].Undefined())

	assert.Equal(t, "unused", statuses[3].Label)
	assert.True(t, statuses[3].Unreferenced())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"), config.Default())

	assert.ErrorIs(t, err, os.ErrNotExist)
}
