package cmd

import "github.com/elseano/mdstruct/pkg/util"

// MarkdownFile returns the file to process: the one given, or the nearest
// README.md.
func MarkdownFile(fileFlag string) string {
	if fileFlag != "" {
		return fileFlag
	}

	return util.FindFile([]string{"README.md", "readme.md"})
}
