package layout

import "strings"

// WrapText greedily fills lines: a word joins the current line when the
// extended line still measures under maxWidth, otherwise the line is
// committed and the word starts a new one.
//
// An empty or whitespace-only string wraps to no lines. A word wider than
// maxWidth is emitted as its own (overflowing) line; wrapping continues with
// the next word, so an overlong word can never stall the loop. Re-joining
// the returned lines with single spaces reproduces the whitespace-normalised
// input.
func WrapText(s Surface, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		extended := current + " " + word
		if s.MeasureText(extended) <= maxWidth {
			current = extended
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
