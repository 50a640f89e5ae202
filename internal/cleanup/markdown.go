package cleanup

import (
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownToText renders a markdown document as plain text. Emphasis and
// link syntax disappear, headings and paragraphs are separated by a blank
// line, list items keep a "- " or "N. " marker and code blocks are copied
// verbatim.
func MarkdownToText(s string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	doc := markdown.Parse([]byte(s), p)

	w := &plainWriter{}
	ast.WalkFunc(doc, w.visit)
	return strings.TrimRight(w.b.String(), "\n")
}

type listState struct {
	ordered bool
	next    int
}

type plainWriter struct {
	b           strings.Builder
	lists       []listState
	afterMarker bool
}

func (w *plainWriter) visit(node ast.Node, entering bool) ast.WalkStatus {
	switch n := node.(type) {
	case *ast.Heading, *ast.Paragraph, *ast.BlockQuote:
		if entering {
			w.block()
		}
	case *ast.List:
		if entering {
			w.block()
			start := n.Start
			if start == 0 {
				start = 1
			}
			w.lists = append(w.lists, listState{ordered: n.ListFlags&ast.ListTypeOrdered != 0, next: start})
		} else {
			w.lists = w.lists[:len(w.lists)-1]
		}
	case *ast.ListItem:
		if entering && len(w.lists) > 0 {
			w.newline()
			top := &w.lists[len(w.lists)-1]
			w.b.WriteString(strings.Repeat("  ", len(w.lists)-1))
			if top.ordered {
				w.b.WriteString(strconv.Itoa(top.next) + ". ")
				top.next++
			} else {
				w.b.WriteString("- ")
			}
			w.afterMarker = true
		}
	case *ast.CodeBlock:
		w.block()
		w.write(strings.TrimRight(string(n.Literal), "\n"))
	case *ast.HorizontalRule:
		w.block()
		w.write("---")
	case *ast.TableRow:
		if entering {
			w.newline()
		}
	case *ast.TableCell:
		if entering && !firstChild(n) {
			w.write(" | ")
		}
	case *ast.Softbreak, *ast.Hardbreak:
		w.write("\n")
	case *ast.Text:
		w.write(string(n.Literal))
	case *ast.Code:
		w.write(string(n.Literal))
	case *ast.HTMLSpan:
		w.write(string(n.Literal))
	case *ast.HTMLBlock:
		w.block()
		w.write(strings.TrimRight(string(n.Literal), "\n"))
	}
	return ast.GoToNext
}

func (w *plainWriter) write(s string) {
	if s == "" {
		return
	}
	w.b.WriteString(s)
	w.afterMarker = false
}

func (w *plainWriter) newline() {
	if w.b.Len() > 0 && !strings.HasSuffix(w.b.String(), "\n") {
		w.b.WriteByte('\n')
	}
}

// block starts a new block: a line break inside lists, a blank line elsewhere.
func (w *plainWriter) block() {
	if w.b.Len() == 0 || w.afterMarker {
		return
	}
	w.newline()
	if len(w.lists) > 0 {
		return
	}
	if !strings.HasSuffix(w.b.String(), "\n\n") {
		w.b.WriteByte('\n')
	}
}

func firstChild(n ast.Node) bool {
	parent := n.GetParent()
	if parent == nil {
		return true
	}
	children := parent.GetChildren()
	return len(children) == 0 || children[0] == n
}
