package content

import (
	"strings"

	"github.com/mrz1836/go-sanitize"
)

// Filename builds "{template}_{topic}.{ext}" for downloads. Runs of
// whitespace become a dash and everything except letters, digits, dashes
// and underscores is dropped, so user topics cannot escape the directory.
func Filename(t Template, topic, ext string) string {
	name := safePart(string(t))
	if name == "" {
		name = "output"
	}
	if p := safePart(topic); p != "" {
		name += "_" + p
	}
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + sanitize.AlphaNumeric(ext, false)
	}
	return name
}

func safePart(s string) string {
	return sanitize.PathName(strings.Join(strings.Fields(s), "-"))
}
