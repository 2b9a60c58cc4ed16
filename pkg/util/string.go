package util

import (
	"regexp"
)

var colorMarker = regexp.MustCompile("\x1b\\[([0-9\\;]*[A-Za-z])")
var linkMarker = regexp.MustCompile("\x1b\\]8;;(.*?)\x1b\\\\(.*?)\x1b\\]8;;\x1b\\\\")

// RemoveColors strips ANSI colour sequences. Terminal hyperlinks become
// "url|text".
func RemoveColors(input string) string {
	decolored := colorMarker.ReplaceAllString(input, "")
	return linkMarker.ReplaceAllString(decolored, "$1|$2")
}
