package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// estimateRes matches "<N> <unit>" duration tokens per locale. Units
// starting with 'h' count as hours, everything else as minutes.
var estimateRes = map[string]*regexp.Regexp{
	"en": regexp.MustCompile(`(?i)\b(\d+)\s*(hours?|hrs?|h|minutes?|mins?|m)\b`),
	"es": regexp.MustCompile(`(?i)\b(\d+)\s*(horas?|hrs?|h|minutos?|mins?|m)\b`),
}

// extractEstimate sums every duration token in text into a single minute
// estimate and removes the matched spans. Runs after date/time extraction
// so clock phrases are already gone.
func (p *Parser) extractEstimate(text string, res *Result) string {
	re, ok := estimateRes[localeKey(p.locale)]
	if !ok {
		re = estimateRes["en"]
	}
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	total := 0
	var spans [][2]int
	for _, m := range matches {
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		if unit := strings.ToLower(text[m[4]:m[5]]); strings.HasPrefix(unit, "h") {
			n *= 60
		}
		total += n
		spans = append(spans, [2]int{m[0], m[1]})
	}
	if total == 0 {
		return text
	}
	res.EstimateMinutes = total
	for i := len(spans) - 1; i >= 0; i-- {
		text = removeSpan(text, spans[i][0], spans[i][1])
	}
	return text
}

// localeKey reduces a locale code to its primary subtag, lowercased.
func localeKey(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
