package datephrase

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// table holds the compiled phrase patterns and keyword lists for one locale.
type table struct {
	phraseRe *regexp.Regexp // full temporal phrase, optionally with clock
	clockRe  *regexp.Regexp // clock component within a phrase
	clockNum *regexp.Regexp // digits and meridiem inside the clock text
	inRe     *regexp.Regexp // relative offset ("in 3 days")

	today     []string
	tomorrow  []string
	dayAfter  []string
	nextWeek  []string
	nextPre   []string // prefixes introducing a weekday ("next", "próximo")
	weekdays  map[string]time.Weekday
	weekUnit  string // unit prefix meaning weeks in inRe

	scheduledCues []string
	dueCues       []string
}

var tables = map[string]*table{
	"en": englishTable(),
	"es": spanishTable(),
}

// tableFor returns the table for a locale code, falling back to English.
func tableFor(locale string) *table {
	if tab, ok := tables[normalizeLocale(locale)]; ok {
		return tab
	}
	return tables["en"]
}

func englishTable() *table {
	const weekdays = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
	dateAlt := `today|tomorrow|next\s+week|next\s+(?:` + weekdays + `)|(?:` + weekdays + `)|in\s+\d+\s+(?:days?|weeks?)|\d{4}-\d{2}-\d{2}`
	clockAlt := `at\s+(?:\d{1,2}:\d{2}(?:\s*(?:am|pm))?|\d{1,2}\s*(?:am|pm))`

	return &table{
		phraseRe: regexp.MustCompile(`(?i)\b(?:(?:` + dateAlt + `)(?:\s+` + clockAlt + `)?|` + clockAlt + `)\b`),
		clockRe:  regexp.MustCompile(`(?i)\b` + clockAlt + `\b`),
		clockNum: regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`),
		inRe:     regexp.MustCompile(`^in\s+(\d+)\s+(days?|weeks?)$`),
		today:    []string{"today"},
		tomorrow: []string{"tomorrow"},
		nextWeek: []string{"next week"},
		nextPre:  []string{"next"},
		weekdays: map[string]time.Weekday{
			"monday":    time.Monday,
			"tuesday":   time.Tuesday,
			"wednesday": time.Wednesday,
			"thursday":  time.Thursday,
			"friday":    time.Friday,
			"saturday":  time.Saturday,
			"sunday":    time.Sunday,
		},
		weekUnit:      "week",
		scheduledCues: []string{"scheduled", "starting", "start", "begin"},
		dueCues:       []string{"due", "by", "deadline"},
	}
}

func spanishTable() *table {
	const weekdays = `lunes|martes|mi(?:é|e)rcoles|jueves|viernes|s(?:á|a)bado|domingo`
	dateAlt := `hoy|pasado\s+mañana|mañana|(?:la\s+)?pr(?:ó|o)xima\s+semana|(?:el\s+)?pr(?:ó|o)ximo\s+(?:` + weekdays + `)|(?:` + weekdays + `)|en\s+\d+\s+(?:d(?:í|i)as?|semanas?)|\d{4}-\d{2}-\d{2}`
	clockAlt := `a\s+las?\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)?`

	return &table{
		phraseRe: regexp.MustCompile(`(?i)\b(?:(?:` + dateAlt + `)(?:\s+` + clockAlt + `)?|` + clockAlt + `)\b`),
		clockRe:  regexp.MustCompile(`(?i)\ba\s+las?\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)?\b`),
		clockNum: regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`),
		inRe:     regexp.MustCompile(`^en\s+(\d+)\s+(d(?:í|i)as?|semanas?)$`),
		today:    []string{"hoy"},
		tomorrow: []string{"mañana"},
		dayAfter: []string{"pasado mañana"},
		nextWeek: []string{"la próxima semana", "próxima semana", "la proxima semana", "proxima semana"},
		nextPre:  []string{"el próximo", "próximo", "el proximo", "proximo"},
		weekdays: map[string]time.Weekday{
			"lunes":     time.Monday,
			"martes":    time.Tuesday,
			"miércoles": time.Wednesday,
			"miercoles": time.Wednesday,
			"jueves":    time.Thursday,
			"viernes":   time.Friday,
			"sábado":    time.Saturday,
			"sabado":    time.Saturday,
			"domingo":   time.Sunday,
		},
		weekUnit:      "semana",
		scheduledCues: []string{"programado", "programada", "empezar", "desde"},
		dueCues:       []string{"para", "vence"},
	}
}

// splitClock separates a matched phrase into its date part and clock part.
// Either part may be empty, never both.
func (t *table) splitClock(matched string) (datePart, clockPart string) {
	loc := t.clockRe.FindStringIndex(matched)
	if loc == nil {
		return strings.TrimSpace(matched), ""
	}
	return strings.TrimSpace(matched[:loc[0]]), matched[loc[0]:loc[1]]
}

// resolveDate resolves a date phrase (no clock component) against today.
func (t *table) resolveDate(s string, today time.Time) (time.Time, bool) {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")

	switch {
	case contains(t.today, s):
		return today, true
	case contains(t.dayAfter, s):
		return today.AddDate(0, 0, 2), true
	case contains(t.tomorrow, s):
		return today.AddDate(0, 0, 1), true
	case contains(t.nextWeek, s):
		return today.AddDate(0, 0, 7), true
	}

	for _, pre := range t.nextPre {
		if rest, ok := strings.CutPrefix(s, pre+" "); ok {
			if wd, found := t.weekdays[rest]; found {
				return nextWeekday(today, wd), true
			}
		}
	}
	if wd, ok := t.weekdays[s]; ok {
		return nextWeekday(today, wd), true
	}

	if m := t.inRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		if strings.HasPrefix(m[2], t.weekUnit) {
			n *= 7
		}
		return today.AddDate(0, 0, n), true
	}

	if d, err := time.ParseInLocation("2006-01-02", s, today.Location()); err == nil {
		return d, true
	}
	return time.Time{}, false
}

// resolveClock parses the clock component ("at 3pm", "at 15:04") into an
// hour and minute.
func (t *table) resolveClock(s string) (hour, minute int, ok bool) {
	m := t.clockNum.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, 0, false
	}
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, 0, false
		}
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour > 12 {
			return 0, 0, false
		}
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
