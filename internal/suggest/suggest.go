// Package suggest implements the interactive completion logic for lexicon
// entries: trigger detection at a cursor offset, query extraction, ranked
// matching, and selection application. Everything here is a pure
// offset/string transformation so it can be exercised without any
// rendering surface.
package suggest

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/taskline/taskline/internal/lexicon"
)

// Suggestion is a read-only completion candidate derived from a lexicon
// entry.
type Suggestion struct {
	Value   string
	Label   string
	Display string
	Kind    lexicon.Kind
}

// Insert returns the text inserted when the suggestion is applied: the
// label when useLabel is set and the entry has one, the value otherwise.
func (s Suggestion) Insert(useLabel bool) string {
	if useLabel && s.Label != "" {
		return s.Label
	}
	return s.Value
}

// TriggerOffset returns the byte offset of the trigger character governing
// the cursor position, or -1. A trigger governs the cursor when it occurs
// before it with no intervening whitespace.
func TriggerOffset(text, trigger string, cursor int) int {
	if trigger == "" {
		return -1
	}
	cursor = clamp(cursor, len(text))
	idx := strings.LastIndex(text[:cursor], trigger)
	if idx < 0 {
		return -1
	}
	for _, r := range text[idx+len(trigger) : cursor] {
		if unicode.IsSpace(r) {
			return -1
		}
	}
	return idx
}

// HasTrigger reports whether a trigger character governs the cursor
// position.
func HasTrigger(text, trigger string, cursor int) bool {
	return TriggerOffset(text, trigger, cursor) >= 0
}

// QueryAfterTrigger returns the in-progress query: the text from the
// trigger (exclusive) to the first whitespace at or after the cursor, or
// to the cursor itself when no whitespace follows yet.
func QueryAfterTrigger(text, trigger string, cursor int) string {
	cursor = clamp(cursor, len(text))
	off := TriggerOffset(text, trigger, cursor)
	if off < 0 {
		return ""
	}
	end := cursor
	if i := strings.IndexFunc(text[cursor:], unicode.IsSpace); i >= 0 {
		end = cursor + i
	}
	return text[off+len(trigger) : end]
}

// Rank returns the entries matching query as suggestions, retaining the
// input order and truncating to limit (limit <= 0 means no truncation).
// Matching is a case-insensitive substring test against both value and
// label; the empty query matches everything.
func Rank(kind lexicon.Kind, query string, entries []lexicon.Entry, limit int) []Suggestion {
	q := strings.ToLower(query)
	var out []Suggestion
	for _, e := range entries {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Value), q) &&
			!strings.Contains(strings.ToLower(e.Label), q) {
			continue
		}
		out = append(out, Suggestion{Value: e.Value, Label: e.Label, Display: display(e), Kind: kind})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// ApplySelection replaces the span from triggerOffset through the end of
// the in-progress query with insert, leaving everything after the query
// untouched. The returned cursor sits right after the inserted text.
func ApplySelection(text, trigger string, triggerOffset int, insert string) (newText string, newCursor int) {
	end := triggerOffset + len(trigger)
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if unicode.IsSpace(r) {
			break
		}
		end += size
	}
	return text[:triggerOffset] + insert + text[end:], triggerOffset + len(insert)
}

// IsValidContext reports whether the cursor sits outside quoted literals.
// It scans the text before the cursor counting unescaped double quotes;
// odd parity means the cursor is inside an open quoted span and trigger
// detection should be suppressed.
func IsValidContext(text string, cursor int) bool {
	cursor = clamp(cursor, len(text))
	open := false
	escaped := false
	for _, r := range text[:cursor] {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			open = !open
		}
	}
	return !open
}

func display(e lexicon.Entry) string {
	if e.Label != "" {
		return e.Label
	}
	return e.Value
}

func clamp(cursor, max int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > max {
		return max
	}
	return cursor
}
