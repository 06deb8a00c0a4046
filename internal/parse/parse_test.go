package parse

import (
	"testing"
	"time"

	"github.com/taskline/taskline/internal/datephrase"
	"github.com/taskline/taskline/internal/lexicon"
	"github.com/taskline/taskline/internal/recurrence"
)

// Wednesday, 2025-01-15 10:00 UTC.
var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestParser(opts Options) *Parser {
	if opts.Now == nil {
		opts.Now = func() time.Time { return testNow }
	}
	return New(opts)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseOrderingConflict(t *testing.T) {
	// A status label containing a temporal word must be stripped before
	// the date phase ever sees the text.
	p := newTestParser(Options{
		Statuses: []lexicon.Entry{{ID: "active", Value: "active", Label: "Active = Now"}},
	})

	res := p.Parse("Task Active = Now tomorrow at 3pm")

	if res.Status != "active" {
		t.Errorf("Status = %q, want %q", res.Status, "active")
	}
	if res.Title != "Task" {
		t.Errorf("Title = %q, want %q", res.Title, "Task")
	}
	if res.DueDate == nil || !res.DueDate.Equal(day(2025, 1, 16)) {
		t.Errorf("DueDate = %v, want Jan 16", res.DueDate)
	}
	if res.DueTime != "15:00" {
		t.Errorf("DueTime = %q, want %q", res.DueTime, "15:00")
	}
	if res.ScheduledDate != nil {
		t.Errorf("ScheduledDate = %v, want nil", res.ScheduledDate)
	}
}

func TestParseLongestMatch(t *testing.T) {
	p := newTestParser(Options{
		Statuses: []lexicon.Entry{
			{ID: "progress", Value: "progress", Order: 0},
			{ID: "in-progress", Value: "in-progress", Label: "In Progress", Order: 1},
		},
	})

	res := p.Parse("Task In Progress review")
	if res.Status != "in-progress" {
		t.Errorf("Status = %q, want %q", res.Status, "in-progress")
	}
	if res.Title != "Task review" {
		t.Errorf("Title = %q, want %q", res.Title, "Task review")
	}
}

func TestParseBoundarySafety(t *testing.T) {
	p := newTestParser(Options{
		Statuses: []lexicon.Entry{{ID: "progress", Value: "progress"}},
	})

	res := p.Parse("Task Progressive work")
	if res.Status != "" {
		t.Errorf("Status = %q, want none", res.Status)
	}
	if res.Title != "Task Progressive work" {
		t.Errorf("Title = %q, want unchanged", res.Title)
	}
}

func TestParseTriggerNotStrippedSpeculatively(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("Task *Invalid")
	if res.Status != "" {
		t.Errorf("Status = %q, want none", res.Status)
	}
	if res.Title != "Task *Invalid" {
		t.Errorf("Title = %q, want %q", res.Title, "Task *Invalid")
	}
}

func TestParseStatusTrigger(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("Review *in-progress")
	if res.Status != "in-progress" {
		t.Errorf("Status = %q, want %q", res.Status, "in-progress")
	}
	if res.Title != "Review" {
		t.Errorf("Title = %q, want %q", res.Title, "Review")
	}
}

func TestParsePriorityTrigger(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("Fix crash !high now")
	if res.Priority != "high" {
		t.Errorf("Priority = %q, want %q", res.Priority, "high")
	}
	if res.Title != "Fix crash now" {
		t.Errorf("Title = %q, want %q", res.Title, "Fix crash now")
	}
}

func TestParseTokenDedupAndOrder(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("Buy milk @home @home #errands")
	if len(res.Contexts) != 1 || res.Contexts[0] != "home" {
		t.Errorf("Contexts = %v, want [home]", res.Contexts)
	}
	if len(res.Tags) != 1 || res.Tags[0] != "errands" {
		t.Errorf("Tags = %v, want [errands]", res.Tags)
	}
	if res.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", res.Title, "Buy milk")
	}
}

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantMins  int
		wantTitle string
	}{
		{name: "hours and minutes", text: "task 2 hours 30 minutes", wantMins: 150, wantTitle: "task"},
		{name: "short units", text: "code review 45m", wantMins: 45, wantTitle: "code review"},
		{name: "single hour", text: "deep work 1 h", wantMins: 60, wantTitle: "deep work"},
		{name: "no estimate", text: "plain task", wantMins: 0, wantTitle: "plain task"},
	}

	p := newTestParser(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.text)
			if res.EstimateMinutes != tt.wantMins {
				t.Errorf("EstimateMinutes = %d, want %d", res.EstimateMinutes, tt.wantMins)
			}
			if res.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", res.Title, tt.wantTitle)
			}
		})
	}
}

func TestParseScheduledAndDueCues(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("Report starting monday due friday")
	if res.ScheduledDate == nil || !res.ScheduledDate.Equal(day(2025, 1, 20)) {
		t.Errorf("ScheduledDate = %v, want monday Jan 20", res.ScheduledDate)
	}
	if res.DueDate == nil || !res.DueDate.Equal(day(2025, 1, 17)) {
		t.Errorf("DueDate = %v, want friday Jan 17", res.DueDate)
	}
	if res.Title != "Report" {
		t.Errorf("Title = %q, want %q (cue words consumed)", res.Title, "Report")
	}
}

func TestParseDueCueConsumed(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("Pay rent due tomorrow")
	if res.DueDate == nil || !res.DueDate.Equal(day(2025, 1, 16)) {
		t.Errorf("DueDate = %v, want Jan 16", res.DueDate)
	}
	if res.Title != "Pay rent" {
		t.Errorf("Title = %q, want %q", res.Title, "Pay rent")
	}
}

func TestParseTwoPhrasesWithoutCues(t *testing.T) {
	// Without cues the first phrase is due; the second falls to the free
	// scheduled slot.
	p := newTestParser(Options{})

	res := p.Parse("standup monday friday")
	if res.DueDate == nil || !res.DueDate.Equal(day(2025, 1, 20)) {
		t.Errorf("DueDate = %v, want monday Jan 20", res.DueDate)
	}
	if res.ScheduledDate == nil || !res.ScheduledDate.Equal(day(2025, 1, 17)) {
		t.Errorf("ScheduledDate = %v, want friday Jan 17", res.ScheduledDate)
	}
	if res.Title != "standup" {
		t.Errorf("Title = %q, want %q", res.Title, "standup")
	}
}

func TestParseThirdPhraseStaysInTitle(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("sync monday friday sunday")
	if res.Title != "sync sunday" {
		t.Errorf("Title = %q, want %q", res.Title, "sync sunday")
	}
}

func TestParseRecurrence(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("water plants every week")
	if res.RecurrenceRule != recurrence.RuleWeekly {
		t.Errorf("RecurrenceRule = %q, want %q", res.RecurrenceRule, recurrence.RuleWeekly)
	}
	if res.Title != "water plants" {
		t.Errorf("Title = %q, want %q", res.Title, "water plants")
	}
}

type panicRecognizer struct{}

func (panicRecognizer) Recognize(string, time.Time) []datephrase.Phrase {
	panic("recognizer blew up")
}

func TestParseCollaboratorPanic(t *testing.T) {
	p := newTestParser(Options{Recognizer: panicRecognizer{}})

	res := p.Parse("Task done tomorrow")
	if res.Status != "done" {
		t.Errorf("Status = %q, want %q (earlier phases unaffected)", res.Status, "done")
	}
	if res.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", res.DueDate)
	}
	if res.Title != "Task tomorrow" {
		t.Errorf("Title = %q, want %q", res.Title, "Task tomorrow")
	}
}

func TestParseDisabledTrigger(t *testing.T) {
	triggers := lexicon.DefaultTriggers()
	triggers[lexicon.KindContext] = lexicon.Trigger{Character: "@", Enabled: false}
	p := newTestParser(Options{Triggers: triggers})

	res := p.Parse("email @home")
	if len(res.Contexts) != 0 {
		t.Errorf("Contexts = %v, want none", res.Contexts)
	}
	if res.Title != "email @home" {
		t.Errorf("Title = %q, want %q", res.Title, "email @home")
	}
}

func TestParseDuplicateTriggerResolution(t *testing.T) {
	triggers := lexicon.DefaultTriggers()
	triggers[lexicon.KindTag] = lexicon.Trigger{Character: "@", Enabled: true}
	p := newTestParser(Options{Triggers: triggers})

	res := p.Parse("note @x #y")
	if len(res.Contexts) != 1 || res.Contexts[0] != "x" {
		t.Errorf("Contexts = %v, want [x]", res.Contexts)
	}
	if len(res.Tags) != 0 {
		t.Errorf("Tags = %v, want none (tag trigger disabled by duplicate)", res.Tags)
	}
	if res.Title != "note #y" {
		t.Errorf("Title = %q, want %q", res.Title, "note #y")
	}
}

func TestParseSpanishLocale(t *testing.T) {
	p := newTestParser(Options{Locale: "es"})

	res := p.Parse("informe para mañana cada semana")
	if res.DueDate == nil || !res.DueDate.Equal(day(2025, 1, 16)) {
		t.Errorf("DueDate = %v, want Jan 16", res.DueDate)
	}
	if res.RecurrenceRule != recurrence.RuleWeekly {
		t.Errorf("RecurrenceRule = %q, want %q", res.RecurrenceRule, recurrence.RuleWeekly)
	}
	if res.Title != "informe" {
		t.Errorf("Title = %q, want %q", res.Title, "informe")
	}
}

func TestParseWhitespaceNormalization(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("  Buy   milk   tomorrow  ")
	if res.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", res.Title, "Buy milk")
	}
	if res.DueDate == nil {
		t.Error("DueDate = nil, want Jan 16")
	}
}

func TestParseIdempotence(t *testing.T) {
	p := newTestParser(Options{
		Statuses: []lexicon.Entry{{ID: "active", Value: "active", Label: "Active = Now"}},
	})

	inputs := []string{
		"Task Active = Now tomorrow at 3pm",
		"Buy milk @home #errands urgent every week",
		"task 2 hours 30 minutes due friday +chores",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := p.Parse(input)
			second := p.Parse(first.Title)

			if second.Title != first.Title {
				t.Errorf("reparsed Title = %q, want %q", second.Title, first.Title)
			}
			if second.Status != "" || second.Priority != "" {
				t.Errorf("reparse extracted status/priority %q/%q, want none", second.Status, second.Priority)
			}
			if second.DueDate != nil || second.ScheduledDate != nil {
				t.Error("reparse extracted dates, want none")
			}
			if second.RecurrenceRule != "" || second.EstimateMinutes != 0 {
				t.Error("reparse extracted recurrence or estimate, want none")
			}
			if len(second.Contexts)+len(second.Tags)+len(second.Projects) != 0 {
				t.Error("reparse extracted tokens, want none")
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser(Options{})

	res := p.Parse("")
	if res.Title != "" {
		t.Errorf("Title = %q, want empty", res.Title)
	}
	if res.Status != "" || res.DueDate != nil {
		t.Error("empty input produced fields")
	}
}
