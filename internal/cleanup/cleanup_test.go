package cleanup

import "testing"

func TestStripEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "no markers here", "no markers here"},
		{"strong", "a **bold** word", "a bold word"},
		{"emphasis", "an *italic* word", "an italic word"},
		{"both", "**Objectives**: learn *loops*", "Objectives: learn loops"},
		{"several on a line", "**a** and **b**", "a and b"},
		{"empty strong", "x****y", "xy"},
		{"unpaired kept", "2 * 3 = 6", "2 * 3 = 6"},
		{"no pairing across lines", "*start\nend*", "*start\nend*"},
		{"bullet asterisks", "* one\n* two", "* one\n* two"},
		{"bullet pair on one line", "* one * two", " one  two"},
		{"triple", "***x***", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripEmphasis(tt.in); got != tt.want {
				t.Errorf("StripEmphasis(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMarkdownToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"paragraph", "Some **bold** and *italic* text.", "Some bold and italic text."},
		{"heading", "# Title\n\nBody", "Title\n\nBody"},
		{"bullets", "- one\n- two", "- one\n- two"},
		{"ordered", "1. first\n2. second", "1. first\n2. second"},
		{"link", "See [the docs](https://go.dev/doc) now", "See the docs now"},
		{"inline code", "Call `fmt.Println` here", "Call fmt.Println here"},
		{"code block", "```\nx := 1\ny := 2\n```", "x := 1\ny := 2"},
		{
			"document",
			"## Lesson Plan\n\nIntro paragraph.\n\n- first\n- second\n\nClosing.",
			"Lesson Plan\n\nIntro paragraph.\n\n- first\n- second\n\nClosing.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkdownToText(tt.in); got != tt.want {
				t.Errorf("MarkdownToText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
