package extension

import (
	mdrenderer "github.com/elseano/mdstruct/pkg/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Ahead of goldmark's own HTML renderer (1000), which also renders fenced
// code blocks.
const priorityHighlight = 200

type highlight struct {
	style       string
	withClasses bool
}

// NewHighlight renders fenced code blocks with chroma in the given style.
// withClasses emits CSS classes instead of inline styles.
func NewHighlight(style string, withClasses bool) goldmark.Extender {
	return &highlight{style: style, withClasses: withClasses}
}

func (e *highlight) Extend(m goldmark.Markdown) {
	r := mdrenderer.NewHighlightRenderer(e.style)
	r.WithClasses = e.withClasses

	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(r, priorityHighlight),
		),
	)
}
