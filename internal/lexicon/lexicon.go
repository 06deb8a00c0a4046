// Package lexicon defines the configurable vocabularies (statuses,
// priorities) and trigger characters used by the extraction pipeline,
// plus the longest-match scanner shared with the suggestion layer.
package lexicon

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// Kind identifies a property kind that can own a trigger character.
type Kind string

const (
	KindStatus   Kind = "status"
	KindPriority Kind = "priority"
	KindContext  Kind = "context"
	KindTag      Kind = "tag"
	KindProject  Kind = "project"
)

// kindOrder is the deterministic resolution order for duplicate triggers.
var kindOrder = []Kind{KindStatus, KindPriority, KindContext, KindTag, KindProject}

// Entry is one configured status or priority option. Both Value and Label
// are valid match surfaces; ID is the identity reported in results.
type Entry struct {
	ID        string
	Value     string
	Label     string
	Order     int
	Completed bool
}

// Surfaces returns the distinct matchable strings for the entry.
func (e Entry) Surfaces() []string {
	if e.Label == "" || strings.EqualFold(e.Label, e.Value) {
		return []string{e.Value}
	}
	return []string{e.Value, e.Label}
}

// Trigger is the per-kind trigger character configuration.
type Trigger struct {
	Character string
	Enabled   bool
}

// Triggers maps each property kind to its trigger configuration.
type Triggers map[Kind]Trigger

// DefaultTriggers returns the stock trigger assignment.
func DefaultTriggers() Triggers {
	return Triggers{
		KindStatus:   {Character: "*", Enabled: true},
		KindPriority: {Character: "!", Enabled: true},
		KindContext:  {Character: "@", Enabled: true},
		KindTag:      {Character: "#", Enabled: true},
		KindProject:  {Character: "+", Enabled: true},
	}
}

// Normalize resolves malformed trigger configuration deterministically:
// a blank or multi-rune character disables that kind, and when two kinds
// share a character only the first kind in the fixed resolution order
// (status, priority, context, tag, project) keeps it.
func (t Triggers) Normalize() Triggers {
	out := make(Triggers, len(t))
	seen := make(map[string]bool)
	for _, kind := range kindOrder {
		trig, ok := t[kind]
		if !ok {
			continue
		}
		trig.Character = strings.TrimSpace(trig.Character)
		if trig.Character == "" || utf8.RuneCountInString(trig.Character) != 1 || seen[trig.Character] {
			trig.Enabled = false
		}
		if trig.Enabled {
			seen[trig.Character] = true
		}
		out[kind] = trig
	}
	return out
}

// Char returns the trigger character for a kind, or "" if the kind has no
// enabled trigger.
func (t Triggers) Char(kind Kind) string {
	trig, ok := t[kind]
	if !ok || !trig.Enabled {
		return ""
	}
	return trig.Character
}

// NewEntryID mints an identifier for lexicon entries loaded without one.
func NewEntryID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return strings.ToUpper(id.String())
}

// DefaultStatuses returns the built-in English status lexicon, used when
// the caller supplies no status entries.
func DefaultStatuses() []Entry {
	return []Entry{
		{ID: "todo", Value: "todo", Label: "To Do", Order: 0},
		{ID: "in-progress", Value: "in-progress", Label: "In Progress", Order: 1},
		{ID: "done", Value: "done", Label: "Done", Order: 2, Completed: true},
		{ID: "cancelled", Value: "cancelled", Label: "Cancelled", Order: 3, Completed: true},
	}
}

// DefaultPriorities returns the built-in English priority lexicon.
func DefaultPriorities() []Entry {
	return []Entry{
		{ID: "low", Value: "low", Label: "Low", Order: 0},
		{ID: "normal", Value: "normal", Label: "Normal", Order: 1},
		{ID: "high", Value: "high", Label: "High", Order: 2},
		{ID: "urgent", Value: "urgent", Label: "Urgent", Order: 3},
	}
}
