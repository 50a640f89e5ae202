package text

// SplitLines splits text into its logical lines. "\n", "\r\n" and "\r"
// all terminate a line. A terminator at the very end of the text does not
// start another line, so the empty string has no lines at all.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// Wrap breaks a single logical line into physical lines of at most
// maxChars characters (runes). Breaks happen at the last space inside the
// budget and that space is dropped. A run without any space is cut exactly
// at the budget. The result always has at least one element; the last one
// is whatever remains, possibly empty.
func Wrap(line string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{line}
	}

	runes := []rune(line)
	var out []string
	for len(runes) > maxChars {
		split := lastSpace(runes[:maxChars])
		if split < 0 {
			out = append(out, string(runes[:maxChars]))
			runes = runes[maxChars:]
			continue
		}
		out = append(out, string(runes[:split]))
		runes = runes[split+1:]
	}
	return append(out, string(runes))
}

// WrapText splits text into logical lines and wraps each of them.
func WrapText(text string, maxChars int) []string {
	var out []string
	for _, line := range SplitLines(text) {
		out = append(out, Wrap(line, maxChars)...)
	}
	return out
}

// Width returns the length of s in characters.
func Width(s string) int {
	return len([]rune(s))
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
