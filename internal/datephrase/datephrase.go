// Package datephrase recognizes temporal phrases ("tomorrow at 3pm",
// "next friday", "2025-01-15") inside free-form text and resolves them
// against a reference time. Recognition is table-driven per locale with a
// deterministic fallback to English for unknown locale codes.
package datephrase

import (
	"strings"
	"time"
)

// Phrase is one recognized temporal phrase. Start and End are byte offsets
// into the scanned text. Time carries the resolved calendar day, plus a
// clock component when HasTime is true; phrases without an explicit clock
// resolve to midnight in the reference location (floating time).
type Phrase struct {
	Start   int
	End     int
	Time    time.Time
	HasTime bool
}

// Recognizer finds temporal phrases for one locale.
type Recognizer struct {
	tab *table
}

// New returns a recognizer for the given locale code. Unsupported codes
// fall back to English.
func New(locale string) *Recognizer {
	return &Recognizer{tab: tableFor(locale)}
}

// Recognize returns every temporal phrase in text, left to right, resolved
// relative to ref. Phrases whose date part does not resolve (for example a
// calendar date with an out-of-range month) are skipped.
func (r *Recognizer) Recognize(text string, ref time.Time) []Phrase {
	today := truncateToDay(ref)
	var out []Phrase
	for _, loc := range r.tab.phraseRe.FindAllStringIndex(text, -1) {
		matched := text[loc[0]:loc[1]]
		datePart, clockPart := r.tab.splitClock(matched)

		day := today
		if datePart != "" {
			resolved, ok := r.tab.resolveDate(datePart, today)
			if !ok {
				continue
			}
			day = resolved
		}

		p := Phrase{Start: loc[0], End: loc[1], Time: day}
		if clockPart != "" {
			hour, minute, ok := r.tab.resolveClock(clockPart)
			if !ok {
				continue
			}
			p.Time = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, ref.Location())
			p.HasTime = true
		}
		out = append(out, p)
	}
	return out
}

// Cues returns the scheduling and due cue words for a locale. A recognized
// phrase directly preceded by a scheduling cue fills the scheduled slot;
// a due cue (or no cue at all) fills the due slot.
func Cues(locale string) (scheduled, due []string) {
	tab := tableFor(locale)
	return tab.scheduledCues, tab.dueCues
}

// truncateToDay returns t with the clock set to midnight.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextWeekday returns the next occurrence of target strictly after today.
// If today already is the target weekday, the result is one week out.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// normalizeLocale reduces a locale code to its primary subtag, lowercased
// ("en-US" -> "en").
func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
