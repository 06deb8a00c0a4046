// Package parse implements the task-extraction pipeline: one free-form
// line of text in, a structured result out. Extraction runs in a fixed
// phase order (status, priority, date/time, estimate, recurrence, token
// lists) over a shrinking working copy of the text; each phase removes the
// spans it consumed before the next phase runs. The order is part of the
// contract: a status label containing a temporal word must be stripped
// before the date phase ever sees the text.
package parse

import (
	"time"

	"github.com/taskline/taskline/internal/datephrase"
	"github.com/taskline/taskline/internal/lexicon"
	"github.com/taskline/taskline/internal/recurrence"
)

// PhraseRecognizer finds temporal phrases in text relative to a reference
// time. datephrase.Recognizer is the built-in implementation.
type PhraseRecognizer interface {
	Recognize(text string, ref time.Time) []datephrase.Phrase
}

// Options configures a Parser. Zero values select built-in defaults.
type Options struct {
	Statuses   []lexicon.Entry
	Priorities []lexicon.Entry
	Triggers   lexicon.Triggers
	Locale     string
	Recognizer PhraseRecognizer // nil: built-in recognizer for Locale
	Now        func() time.Time // nil: time.Now; fixed in tests
}

// Parser extracts structured task fields from free-form lines. It is
// immutable after construction and safe for concurrent use.
type Parser struct {
	statuses   []lexicon.Entry
	priorities []lexicon.Entry
	triggers   lexicon.Triggers
	locale     string
	recognizer PhraseRecognizer
	now        func() time.Time
	schedCues  []string
	dueCues    []string
}

// New builds a Parser. Empty lexicons fall back to the built-in English
// defaults, nil triggers to the stock assignment; trigger configuration is
// normalized so blank or duplicate characters are disabled rather than
// failing the parse.
func New(opts Options) *Parser {
	p := &Parser{
		statuses:   opts.Statuses,
		priorities: opts.Priorities,
		triggers:   opts.Triggers,
		locale:     opts.Locale,
		recognizer: opts.Recognizer,
		now:        opts.Now,
	}
	if len(p.statuses) == 0 {
		p.statuses = lexicon.DefaultStatuses()
	}
	if len(p.priorities) == 0 {
		p.priorities = lexicon.DefaultPriorities()
	}
	if p.triggers == nil {
		p.triggers = lexicon.DefaultTriggers()
	}
	p.triggers = p.triggers.Normalize()
	if p.recognizer == nil {
		p.recognizer = datephrase.New(p.locale)
	}
	if p.now == nil {
		p.now = time.Now
	}
	p.schedCues, p.dueCues = datephrase.Cues(p.locale)
	return p
}

// Parse extracts every recognized field from line. It never fails; the
// worst outcome is a result with nothing but the trimmed title populated.
func (p *Parser) Parse(line string) Result {
	var res Result
	text := line
	text = p.extractStatus(text, &res)
	text = p.extractPriority(text, &res)
	text = p.extractDateTime(text, &res)
	text = p.extractEstimate(text, &res)
	text = p.extractRecurrence(text, &res)
	text = p.extractLists(text, &res)
	res.Title = collapseWhitespace(text)
	return res
}

func (p *Parser) extractStatus(text string, res *Result) string {
	m := lexicon.FindBestMatch(text, p.statuses, p.triggers.Char(lexicon.KindStatus))
	if m == nil {
		return text
	}
	res.Status = m.EntryID
	return removeSpan(text, m.Start, m.End)
}

func (p *Parser) extractPriority(text string, res *Result) string {
	m := lexicon.FindBestMatch(text, p.priorities, p.triggers.Char(lexicon.KindPriority))
	if m == nil {
		return text
	}
	res.Priority = m.EntryID
	return removeSpan(text, m.Start, m.End)
}

func (p *Parser) extractRecurrence(text string, res *Result) string {
	m := recurrence.Extract(text, p.locale)
	if m == nil {
		return text
	}
	res.RecurrenceRule = m.Rule
	return removeSpan(text, m.Start, m.End)
}

func (p *Parser) extractLists(text string, res *Result) string {
	text, res.Contexts = extractTokens(text, p.triggers.Char(lexicon.KindContext))
	text, res.Tags = extractTokens(text, p.triggers.Char(lexicon.KindTag))
	text, res.Projects = extractTokens(text, p.triggers.Char(lexicon.KindProject))
	return text
}
