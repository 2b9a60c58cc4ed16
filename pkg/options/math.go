package options

import "github.com/yuin/goldmark/util"

// MathRenderer turns formula source into markup. inline is false for display
// ($$...$$) formulas. The returned string is written without escaping.
type MathRenderer func(source string, inline bool) (string, error)

type Math struct {
	Render MathRenderer `mapstructure:"-"`

	InlineClass  string `mapstructure:"inline_class"`
	DisplayClass string `mapstructure:"display_class"`
}

func DefaultMath() Math {
	return Math{
		Render:       EscapedMath,
		InlineClass:  "math inline",
		DisplayClass: "math display",
	}
}

// EscapedMath is the fallback renderer: it returns the source unchanged,
// escaped for HTML, leaving typesetting to client-side tooling.
func EscapedMath(source string, inline bool) (string, error) {
	return string(util.EscapeHTML([]byte(source))), nil
}
