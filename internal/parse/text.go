package parse

import "strings"

// removeSpan deletes text[start:end] and normalizes the whitespace around
// the cut so later phases never see doubled spaces or dangling separators.
func removeSpan(text string, start, end int) string {
	left := strings.TrimRight(text[:start], " \t")
	right := strings.TrimLeft(text[end:], " \t")
	switch {
	case left == "":
		return right
	case right == "":
		return left
	default:
		return left + " " + right
	}
}

// collapseWhitespace trims the text and folds internal whitespace runs
// into single spaces.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
