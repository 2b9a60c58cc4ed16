package options

type TOC struct {
	// AllowTitles includes level-1 headings in the outline.
	AllowTitles bool `mapstructure:"allow_titles_in_toc"`
	// TreatTitleAsH2 nests included level-1 headings as if they were level 2.
	TreatTitleAsH2 bool `mapstructure:"treat_title_as_h2"`

	Class     string `mapstructure:"toc_class"`
	WrapInNav bool   `mapstructure:"wrap_in_nav"`

	// HeadingLevel and HeadingText describe a heading rendered above the
	// outline. A zero level or empty text disables it.
	HeadingLevel int    `mapstructure:"toc_heading_level"`
	HeadingText  string `mapstructure:"toc_heading"`

	// MinHeadings is the number of qualifying headings a document needs
	// before an outline is inserted.
	MinHeadings int `mapstructure:"min_headings"`
}

func DefaultTOC() TOC {
	return TOC{
		Class:       "table-of-contents",
		MinHeadings: 2,
	}
}

// Level maps a heading level onto the level used for nesting. ok is false
// when the heading does not take part in the outline.
func (o TOC) Level(headingLevel int) (level int, ok bool) {
	if headingLevel == 1 {
		if !o.AllowTitles {
			return 0, false
		}
		if o.TreatTitleAsH2 {
			return 2, true
		}
	}

	return headingLevel, true
}
