package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// extractTokens collects every trigger-prefixed run of non-whitespace
// characters from text, removing the matched spans. Tokens keep their
// original casing; duplicates (case-insensitive) are dropped, keeping the
// first occurrence. An empty trigger skips extraction entirely: triggers
// are mandatory for list-valued kinds.
func extractTokens(text, trigger string) (string, []string) {
	if trigger == "" {
		return text, nil
	}
	trigRune, trigLen := utf8.DecodeRuneInString(trigger)

	var tokens []string
	var spans [][2]int
	seen := make(map[string]bool)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != trigRune {
			i += size
			continue
		}
		j := i + trigLen
		for j < len(text) {
			r2, s2 := utf8.DecodeRuneInString(text[j:])
			if unicode.IsSpace(r2) {
				break
			}
			j += s2
		}
		if j == i+trigLen {
			// bare trigger with no token, leave it alone
			i += size
			continue
		}
		token := text[i+trigLen : j]
		spans = append(spans, [2]int{i, j})
		if key := strings.ToLower(token); !seen[key] {
			seen[key] = true
			tokens = append(tokens, token)
		}
		i = j
	}

	for i := len(spans) - 1; i >= 0; i-- {
		text = removeSpan(text, spans[i][0], spans[i][1])
	}
	return text, tokens
}
