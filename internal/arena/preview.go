package arena

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// cardStyle frames the learner's code like the arena's output panel
const cardStyle = "background-color:white; padding: 20px; border-radius: 10px; box-shadow: 0 0 10px rgba(0,0,0,0.1);"

// Preview wraps snippet in a white card and returns a complete,
// well-formed HTML document that can be shown in a sandboxed frame.
// Doctype, html and body tags inside the snippet are folded into the
// outer document by the HTML5 parser.
func Preview(snippet string) (string, error) {
	var src strings.Builder
	src.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>Practice Arena</title></head><body>`)
	fmt.Fprintf(&src, `<div class="arena-card" style="%s">`, cardStyle)
	src.WriteString(snippet)
	src.WriteString(`</div></body></html>`)

	doc, err := html.Parse(strings.NewReader(src.String()))
	if err != nil {
		return "", fmt.Errorf("failed to parse snippet: %w", err)
	}

	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return out.String(), nil
}
