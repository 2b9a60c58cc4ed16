package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHTML(t *testing.T) {
	a := "<ul class=\"x\" id=\"y\">\n  <li>One</li>\n</ul>\n"
	b := "<ul id=\"y\" class=\"x\"><li>One</li></ul>"

	assert.Equal(t, string(NormalizeHTML([]byte(b))), string(NormalizeHTML([]byte(a))))
}

func TestNormalizeHTMLKeepsPre(t *testing.T) {
	out := string(NormalizeHTML([]byte("<pre><code>a\n  b\n</code></pre>")))

	assert.Equal(t, "<pre><code>a\n  b\n</code></pre>", out)
}

func TestNormalizeHTMLEntities(t *testing.T) {
	out := string(NormalizeHTML([]byte("<a href=\"#x\">&#8593;</a>")))

	assert.Equal(t, "<a href=\"#x\">↑</a>", out)
}
