package parse

import (
	"strings"
	"time"

	"github.com/taskline/taskline/internal/datephrase"
)

type slot int

const (
	slotDue slot = iota
	slotScheduled
)

// extractDateTime assigns recognized temporal phrases to the due and
// scheduled slots. A phrase preceded by a scheduling cue word fills the
// scheduled slot (the cue is consumed with the phrase); a due cue or no
// cue fills the due slot. When the implied slot is already taken the
// phrase falls to the other slot if free. At most two phrases are
// consumed; any further phrases stay in the title.
func (p *Parser) extractDateTime(text string, res *Result) string {
	phrases := p.recognizePhrases(text)
	if len(phrases) == 0 {
		return text
	}

	type span struct{ start, end int }
	var removals []span
	dueSet, schedSet := false, false

	for _, ph := range phrases {
		if dueSet && schedSet {
			break
		}
		start := ph.Start
		target := slotDue
		if cueStart, cueSlot, ok := p.cueBefore(text, ph.Start); ok {
			start, target = cueStart, cueSlot
		}
		if target == slotDue && dueSet {
			target = slotScheduled
		} else if target == slotScheduled && schedSet {
			target = slotDue
		}

		// The cue extension must never reach into an earlier removal.
		if n := len(removals); n > 0 && start < removals[n-1].end {
			start = ph.Start
		}

		day := truncateToDay(ph.Time)
		if target == slotDue {
			res.DueDate = &day
			if ph.HasTime {
				res.DueTime = ph.Time.Format("15:04")
			}
			dueSet = true
		} else {
			res.ScheduledDate = &day
			if ph.HasTime {
				res.ScheduledTime = ph.Time.Format("15:04")
			}
			schedSet = true
		}
		removals = append(removals, span{start, ph.End})
	}

	for i := len(removals) - 1; i >= 0; i-- {
		text = removeSpan(text, removals[i].start, removals[i].end)
	}
	return text
}

// recognizePhrases calls the recognizer, treating a panic as "no phrases"
// so a misbehaving collaborator degrades this phase only.
func (p *Parser) recognizePhrases(text string) (phrases []datephrase.Phrase) {
	defer func() {
		if recover() != nil {
			phrases = nil
		}
	}()
	return p.recognizer.Recognize(text, p.now())
}

// cueBefore inspects the word immediately preceding offset start and
// reports whether it is a scheduling or due cue. The returned offset is
// the start of the cue word, so removal consumes it together with the
// phrase.
func (p *Parser) cueBefore(text string, start int) (int, slot, bool) {
	prefix := strings.TrimRight(text[:start], " \t")
	if prefix == "" {
		return 0, 0, false
	}
	i := strings.LastIndexAny(prefix, " \t")
	word := strings.ToLower(prefix[i+1:])
	switch {
	case containsWord(p.schedCues, word):
		return i + 1, slotScheduled, true
	case containsWord(p.dueCues, word):
		return i + 1, slotDue, true
	}
	return 0, 0, false
}

func containsWord(list []string, word string) bool {
	for _, w := range list {
		if w == word {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
