package arena

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/codesnack/codesnack/internal/content"
)

// Handler is an inline event handler attribute such as onclick
type Handler struct {
	Element string
	Event   string
	Code    string
}

// Summary describes what a snippet is made of
type Summary struct {
	// Elements counts tags, leaving out the implied html, head and body
	Elements map[string]int
	Styles   []string
	Rules    []StyleRule
	// UnusedSelectors match no element of the snippet. Selectors with
	// pseudo-classes depend on page state and are never reported.
	UnusedSelectors []string
	Scripts         int
	Handlers        []Handler
	IDs             []string
}

// Tags returns the element names sorted alphabetically
func (s *Summary) Tags() []string {
	tags := make([]string, 0, len(s.Elements))
	for t := range s.Elements {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// String renders the summary as a short report
func (s *Summary) String() string {
	var b strings.Builder
	b.WriteString("Elements:")
	for _, t := range s.Tags() {
		fmt.Fprintf(&b, " %s=%d", t, s.Elements[t])
	}
	fmt.Fprintf(&b, "\nStyle blocks: %d\nScripts: %d\n", len(s.Styles), s.Scripts)
	for _, h := range s.Handlers {
		fmt.Fprintf(&b, "Handler: <%s %s=%q>\n", h.Element, h.Event, h.Code)
	}
	if len(s.IDs) > 0 {
		fmt.Fprintf(&b, "IDs: %s\n", strings.Join(s.IDs, ", "))
	}
	if len(s.UnusedSelectors) > 0 {
		fmt.Fprintf(&b, "Unused selectors: %s\n", strings.Join(s.UnusedSelectors, ", "))
	}
	return b.String()
}

// Inspect parses snippet and reports its elements, style rules, scripts,
// inline event handlers and element ids.
func Inspect(snippet string) (*Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return nil, fmt.Errorf("failed to parse snippet: %w", err)
	}

	sum := &Summary{Elements: make(map[string]int)}
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		name := goquery.NodeName(sel)
		switch name {
		case "html", "head", "body":
			return
		}
		sum.Elements[name]++

		if id, ok := sel.Attr("id"); ok && id != "" {
			sum.IDs = append(sum.IDs, id)
		}
		for _, attr := range sel.Nodes[0].Attr {
			if strings.HasPrefix(strings.ToLower(attr.Key), "on") {
				sum.Handlers = append(sum.Handlers, Handler{Element: name, Event: attr.Key, Code: attr.Val})
			}
		}
	})

	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		if css := strings.TrimSpace(sel.Text()); css != "" {
			sum.Styles = append(sum.Styles, css)
			sum.Rules = append(sum.Rules, parseStyleRules(css)...)
		}
	})
	for _, rule := range sum.Rules {
		for _, selector := range rule.Selectors {
			if strings.Contains(selector, ":") {
				continue
			}
			m, err := cascadia.Compile(selector)
			if err != nil {
				continue
			}
			if doc.FindMatcher(m).Length() == 0 {
				sum.UnusedSelectors = append(sum.UnusedSelectors, selector)
			}
		}
	}
	sum.Scripts = doc.Find("script").Length()

	return sum, nil
}

// CopilotPrompt is the request sent to the explaining model
func CopilotPrompt(snippet string) string {
	return "Explain and improve this HTML/CSS/JS code, beginner‑friendly:\n" + snippet
}

// Explain asks g for a beginner-friendly explanation of snippet
func Explain(ctx context.Context, g content.Generator, snippet string) (string, error) {
	out, err := g.Generate(ctx, CopilotPrompt(snippet), content.DefaultTemperature)
	if err != nil {
		return "", fmt.Errorf("copilot request failed: %w", err)
	}
	return out, nil
}
