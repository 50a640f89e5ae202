// Package cleanup turns model output into text that can be printed as is.
package cleanup

import "regexp"

var (
	strongRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emphRe   = regexp.MustCompile(`\*(.*?)\*`)
)

// StripEmphasis removes markdown emphasis markers: "**x**" becomes "x",
// then "*x*" becomes "x". Markers never pair across a newline and an
// unpaired asterisk is kept.
func StripEmphasis(s string) string {
	s = strongRe.ReplaceAllString(s, "$1")
	return emphRe.ReplaceAllString(s, "$1")
}
