package arena

import (
	"strings"
)

// Declaration is one property: value pair of a style rule
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// StyleRule is a rule from a learner's style block
type StyleRule struct {
	Selectors    []string
	Declarations []Declaration
}

// parseStyleRules reads the top-level rules of a style block. At-rules and
// rules without a selector are skipped; the arena only needs enough
// structure to tell the learner which selectors match nothing.
func parseStyleRules(css string) []StyleRule {
	var rules []StyleRule
	for _, block := range topLevelBlocks(stripCSSComments(css)) {
		head, body, ok := strings.Cut(block, "{")
		if !ok {
			continue
		}
		head = strings.TrimSpace(head)
		if head == "" || strings.HasPrefix(head, "@") {
			continue
		}

		rule := StyleRule{Declarations: parseDeclarations(strings.TrimSuffix(strings.TrimSpace(body), "}"))}
		for _, sel := range strings.Split(head, ",") {
			if sel = strings.TrimSpace(sel); sel != "" {
				rule.Selectors = append(rule.Selectors, sel)
			}
		}
		if len(rule.Selectors) > 0 {
			rules = append(rules, rule)
		}
	}
	return rules
}

func parseDeclarations(body string) []Declaration {
	var decls []Declaration
	for _, part := range strings.Split(body, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		d := Declaration{
			Property: strings.ToLower(strings.TrimSpace(prop)),
			Value:    strings.TrimSpace(val),
		}
		if v, found := strings.CutSuffix(d.Value, "!important"); found {
			d.Value = strings.TrimSpace(v)
			d.Important = true
		}
		if d.Property != "" {
			decls = append(decls, d)
		}
	}
	return decls
}

// stripCSSComments drops /* */ comments. An unterminated comment runs to
// the end of the input.
func stripCSSComments(css string) string {
	var b strings.Builder
	for {
		start := strings.Index(css, "/*")
		if start < 0 {
			b.WriteString(css)
			return b.String()
		}
		b.WriteString(css[:start])
		end := strings.Index(css[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		css = css[start+2+end+2:]
	}
}

// topLevelBlocks splits css into "selector { ... }" chunks, keeping nested
// braces of at-rules inside their chunk.
func topLevelBlocks(css string) []string {
	var (
		blocks []string
		depth  int
		start  int
	)
	for i := 0; i < len(css); i++ {
		switch css[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				start = i + 1
				continue
			}
			depth--
			if depth == 0 {
				blocks = append(blocks, strings.TrimSpace(css[start:i+1]))
				start = i + 1
			}
		}
	}
	return blocks
}
