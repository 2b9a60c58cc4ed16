// Package config loads mdstruct settings from a YAML file, MDSTRUCT_*
// environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elseano/mdstruct/pkg/options"
	"github.com/spf13/viper"
)

// Extensions switches pipeline features on and off.
type Extensions struct {
	Footnotes bool `mapstructure:"footnotes"`
	TOC       bool `mapstructure:"toc"`
	Math      bool `mapstructure:"math"`
	GFM       bool `mapstructure:"gfm"`
	Emoji     bool `mapstructure:"emoji"`
	Highlight bool `mapstructure:"highlight"`
}

type Config struct {
	Extensions Extensions       `mapstructure:"extensions"`
	Footnote   options.Footnote `mapstructure:"footnote"`
	TOC        options.TOC      `mapstructure:"toc"`
	Math       options.Math     `mapstructure:"math"`

	HighlightStyle string `mapstructure:"highlight_style"`
	HighlightCSS   bool   `mapstructure:"highlight_css"`

	// Unsafe passes raw HTML in the source through to the output.
	Unsafe        bool `mapstructure:"unsafe"`
	Attributes    bool `mapstructure:"attributes"`
	AutoHeadingID bool `mapstructure:"auto_heading_id"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		Extensions: Extensions{
			Footnotes: true,
			TOC:       true,
			Math:      true,
			GFM:       true,
		},
		Footnote:       options.DefaultFootnote(),
		TOC:            options.DefaultTOC(),
		Math:           options.DefaultMath(),
		HighlightStyle: "monokai",
		Attributes:     true,
	}
}

// New returns a viper instance with every key defaulted, looking for
// mdstruct.yaml in the working directory and in ~/.config/mdstruct.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v, Default())

	v.SetConfigName("mdstruct")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "mdstruct"))
	}

	v.SetEnvPrefix("MDSTRUCT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers every key of c with v. Keys viper doesn't know of
// are not read from the environment.
func SetDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("extensions.footnotes", c.Extensions.Footnotes)
	v.SetDefault("extensions.toc", c.Extensions.TOC)
	v.SetDefault("extensions.math", c.Extensions.Math)
	v.SetDefault("extensions.gfm", c.Extensions.GFM)
	v.SetDefault("extensions.emoji", c.Extensions.Emoji)
	v.SetDefault("extensions.highlight", c.Extensions.Highlight)

	v.SetDefault("footnote.def_id_prefix", c.Footnote.DefIDPrefix)
	v.SetDefault("footnote.ref_id_prefix", c.Footnote.RefIDPrefix)
	v.SetDefault("footnote.back_ref_text", c.Footnote.BackRefText)
	v.SetDefault("footnote.back_ref_class", c.Footnote.BackRefClass)
	v.SetDefault("footnote.def_class", c.Footnote.DefClass)
	v.SetDefault("footnote.ref_class", c.Footnote.RefClass)
	v.SetDefault("footnote.list_class", c.Footnote.ListClass)

	v.SetDefault("toc.allow_titles_in_toc", c.TOC.AllowTitles)
	v.SetDefault("toc.treat_title_as_h2", c.TOC.TreatTitleAsH2)
	v.SetDefault("toc.toc_class", c.TOC.Class)
	v.SetDefault("toc.wrap_in_nav", c.TOC.WrapInNav)
	v.SetDefault("toc.toc_heading_level", c.TOC.HeadingLevel)
	v.SetDefault("toc.toc_heading", c.TOC.HeadingText)
	v.SetDefault("toc.min_headings", c.TOC.MinHeadings)

	v.SetDefault("math.inline_class", c.Math.InlineClass)
	v.SetDefault("math.display_class", c.Math.DisplayClass)

	v.SetDefault("highlight_style", c.HighlightStyle)
	v.SetDefault("highlight_css", c.HighlightCSS)
	v.SetDefault("unsafe", c.Unsafe)
	v.SetDefault("attributes", c.Attributes)
	v.SetDefault("auto_heading_id", c.AutoHeadingID)
}

// Load reads configuration into a Config. With an explicit file, that file
// must exist; otherwise a missing mdstruct.yaml is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	c := Default()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	// Formula rendering is not configurable from files.
	if c.Math.Render == nil {
		c.Math.Render = options.EscapedMath
	}

	return c, nil
}

// Used returns the config file that was read, if any.
func Used(v *viper.Viper) string {
	return v.ConfigFileUsed()
}
