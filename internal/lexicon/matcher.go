package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is the span consumed by a successful lexicon lookup. Start and End
// are byte offsets into the scanned text; when Triggered is true the span
// covers the trigger character as well as the surface.
type Match struct {
	Start     int
	End       int
	Surface   string
	EntryID   string
	Triggered bool
}

// candidate is an internal ranking record for one surface occurrence.
type candidate struct {
	start   int
	end     int
	surfLen int
	order   int
	entryID string
}

// FindBestMatch scans text for the best occurrence of any entry surface
// (value or label, case-insensitive). Trigger-prefixed occurrences always
// win over bare ones; within each class candidates rank by surface length
// descending, then entry order ascending, then left-most start. Bare
// occurrences must sit on word boundaries. Returns nil when nothing
// matches. trigger is the trigger character, or "" when the kind has no
// enabled trigger.
func FindBestMatch(text string, entries []Entry, trigger string) *Match {
	if len(entries) == 0 || text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	if trigger != "" {
		if best := scanTriggered(text, lower, entries, strings.ToLower(trigger)); best != nil {
			return best
		}
	}
	return scanBare(text, lower, entries)
}

func scanTriggered(text, lower string, entries []Entry, trigger string) *Match {
	var best *candidate
	for _, e := range entries {
		for _, surface := range e.Surfaces() {
			if surface == "" {
				continue
			}
			ls := strings.ToLower(surface)
			needle := trigger + ls
			for _, start := range indexAll(lower, needle) {
				c := candidate{start: start, end: start + len(needle), surfLen: len(ls), order: e.Order, entryID: e.ID}
				if best == nil || c.better(*best) {
					b := c
					best = &b
				}
			}
		}
	}
	if best == nil {
		return nil
	}
	return &Match{Start: best.start, End: best.end, Surface: text[best.start:best.end], EntryID: best.entryID, Triggered: true}
}

func scanBare(text, lower string, entries []Entry) *Match {
	var best *candidate
	for _, e := range entries {
		for _, surface := range e.Surfaces() {
			if surface == "" {
				continue
			}
			ls := strings.ToLower(surface)
			for _, start := range indexAll(lower, ls) {
				end := start + len(ls)
				if !boundaryOK(text, start, end) {
					continue
				}
				c := candidate{start: start, end: end, surfLen: len(ls), order: e.Order, entryID: e.ID}
				if best == nil || c.better(*best) {
					b := c
					best = &b
				}
			}
		}
	}
	if best == nil {
		return nil
	}
	return &Match{Start: best.start, End: best.end, Surface: text[best.start:best.end], EntryID: best.entryID}
}

// better reports whether c outranks other: longer surface first, then lower
// entry order, then earlier position. The comparison is total, so ranking
// is never ambiguous.
func (c candidate) better(other candidate) bool {
	if c.surfLen != other.surfLen {
		return c.surfLen > other.surfLen
	}
	if c.order != other.order {
		return c.order < other.order
	}
	return c.start < other.start
}

// indexAll returns every occurrence of needle in haystack, including
// overlapping ones.
func indexAll(haystack, needle string) []int {
	var out []int
	for from := 0; from <= len(haystack)-len(needle); {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			break
		}
		out = append(out, from+i)
		from += i + 1
	}
	return out
}

// boundaryOK reports whether the span [start,end) is flanked by non-word
// runes or string edges. Partial-word occurrences are rejected so that
// "progress" never matches inside "Progressive".
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
