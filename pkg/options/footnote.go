// Package options holds the settings shared by the parsers, transformers and
// renderers of each extension. Values are passed explicitly to every
// constructor; nothing is looked up from a registry at parse time.
package options

import (
	"strconv"

	"github.com/elseano/mdstruct/pkg/util"
)

type Footnote struct {
	// DefIDPrefix namespaces the anchor ids of footnote definitions.
	DefIDPrefix string `mapstructure:"def_id_prefix"`
	// RefIDPrefix namespaces the anchor ids of footnote references, which are
	// the targets of a definition's back-links.
	RefIDPrefix string `mapstructure:"ref_id_prefix"`

	// BackRefText is written unescaped inside every back-link.
	BackRefText  string `mapstructure:"back_ref_text"`
	BackRefClass string `mapstructure:"back_ref_class"`

	DefClass  string `mapstructure:"def_class"`
	RefClass  string `mapstructure:"ref_class"`
	ListClass string `mapstructure:"list_class"`
}

func DefaultFootnote() Footnote {
	return Footnote{
		DefIDPrefix:  "fnd",
		RefIDPrefix:  "fnr",
		BackRefText:  "&#8593;",
		BackRefClass: "footnote-back",
		DefClass:     "footnotes-def",
		RefClass:     "footnotes-ref",
		ListClass:    "footnotes-list",
	}
}

// DefinitionID is the anchor id of the definition for label.
func (o Footnote) DefinitionID(label string) string {
	return o.DefIDPrefix + "-" + util.Slugify(label)
}

// ReferenceIDPrefix is the part of a reference id shared by every occurrence
// of label. The 1-based occurrence number is appended to it.
func (o Footnote) ReferenceIDPrefix(label string) string {
	return o.RefIDPrefix + "-" + util.Slugify(label) + "-"
}

func (o Footnote) ReferenceID(label string, occurrence int) string {
	return o.ReferenceIDPrefix(label) + strconv.Itoa(occurrence)
}
