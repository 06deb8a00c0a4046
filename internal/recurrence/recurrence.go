// Package recurrence maps locale-specific repetition phrases ("daily",
// "every week") to canonical recurrence rule strings.
package recurrence

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonical recurrence rules.
const (
	RuleDaily   = "FREQ=DAILY"
	RuleWeekly  = "FREQ=WEEKLY"
	RuleMonthly = "FREQ=MONTHLY"
	RuleYearly  = "FREQ=YEARLY"
)

// Match is a recognized recurrence phrase: the canonical rule plus the
// byte span it occupied in the scanned text.
type Match struct {
	Start int
	End   int
	Rule  string
}

// keyword pairs one canonical rule with its phrase synonyms, longest
// synonyms first so spans cover the whole phrase.
type keyword struct {
	rule    string
	phrases []string
}

var keywordTables = map[string][]keyword{
	"en": {
		{RuleDaily, []string{"every day", "daily"}},
		{RuleWeekly, []string{"every week", "weekly"}},
		{RuleMonthly, []string{"every month", "monthly"}},
		{RuleYearly, []string{"every year", "yearly", "annually"}},
	},
	"es": {
		{RuleDaily, []string{"todos los días", "todos los dias", "cada día", "cada dia", "a diario", "diariamente"}},
		{RuleWeekly, []string{"todas las semanas", "cada semana", "semanalmente", "semanal"}},
		{RuleMonthly, []string{"todos los meses", "cada mes", "mensualmente", "mensual"}},
		{RuleYearly, []string{"todos los años", "todos los anos", "cada año", "cada ano", "anualmente", "anual"}},
	},
}

// Extract returns the first recurrence phrase found in text, scanning the
// locale's keyword table in order, or nil when none occurs. Occurrences
// are case-insensitive and boundary-checked. Unknown locales use English.
func Extract(text, locale string) *Match {
	table, ok := keywordTables[normalizeLocale(locale)]
	if !ok {
		table = keywordTables["en"]
	}
	lower := strings.ToLower(text)
	for _, kw := range table {
		for _, phrase := range kw.phrases {
			if start := findBounded(text, lower, phrase); start >= 0 {
				return &Match{Start: start, End: start + len(phrase), Rule: kw.rule}
			}
		}
	}
	return nil
}

// findBounded returns the offset of the first occurrence of phrase in
// lower that sits on word boundaries in text, or -1.
func findBounded(text, lower, phrase string) int {
	for from := 0; ; {
		i := strings.Index(lower[from:], phrase)
		if i < 0 {
			return -1
		}
		start := from + i
		end := start + len(phrase)
		if boundaryOK(text, start, end) {
			return start
		}
		from = start + 1
	}
}

func boundaryOK(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
