package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

// Extraction rules run left to right over the instruction text. Each rule
// returns what it found plus the text with its span removed, so the next rule
// only sees what is left.
var (
	removeKeywordRe   = regexp.MustCompile(`(?i)\bremove\b`)
	addKeywordRe      = regexp.MustCompile(`(?i)\badd\b`)
	dayNumberRe       = regexp.MustCompile(`(?i)\bday\s+(\d+)`)
	trailingDayRe     = regexp.MustCompile(`(?i)\s*\bon\s+day\s+\d+\s*$`)
	dayClauseRe       = regexp.MustCompile(`(?i)\s*\b(?:on\s+)?day\s+\d+\b`)
	timeClauseRe      = regexp.MustCompile(`(?i)\s*\bat\s+(\d{1,2}(?::\d{2})?(?:\s*(?:am|pm)\b|\b))`)
	locationClauseRe  = regexp.MustCompile(`(?i)(?:^|\s+)(?:in|at)\s+([\p{L}\p{N} ,'.-]+)$`)
	leadingArticleRe  = regexp.MustCompile(`(?i)^the(?:\s+|$)`)
	leadingPunctRe    = regexp.MustCompile(`^[\s:;,.\-–—]+`)
	clockHourMinuteRe = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
)

// hasKeyword reports whether re matches text as a standalone word.
func hasKeyword(re *regexp.Regexp, text string) bool {
	return re.MatchString(text)
}

// afterKeyword returns the text following the first match of re.
func afterKeyword(re *regexp.Regexp, text string) (string, bool) {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[1]:], true
}

// extractDayNumber returns the first "day N" number in text. A number too
// large to parse yields -1, which never matches a real day.
func extractDayNumber(text string) (int, bool) {
	m := dayNumberRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1, true
	}
	return n, true
}

// stripTrailingDayClause drops an "on day N" suffix.
func stripTrailingDayClause(text string) string {
	return trailingDayRe.ReplaceAllString(text, "")
}

// cut removes the span [start,end) from text, leaving a single space so the
// surrounding words do not run together.
func cut(text string, start, end int) string {
	return text[:start] + " " + text[end:]
}

// extractDayClause removes the first "on day N" (or bare "day N") clause.
func extractDayClause(text string) string {
	loc := dayClauseRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return cut(text, loc[0], loc[1])
}

// extractTime finds the first "at H[:MM][ am|pm]" clause.
func extractTime(text string) (string, bool, string) {
	m := timeClauseRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", false, text
	}
	value := strings.TrimSpace(text[m[2]:m[3]])
	return value, true, cut(text, m[0], m[1])
}

// extractLocation finds a trailing "in X" or "at X" clause.
func extractLocation(text string) (string, bool, string) {
	trimmed := strings.TrimSpace(text)
	m := locationClauseRe.FindStringSubmatchIndex(trimmed)
	if m == nil {
		return "", false, text
	}
	value := strings.Trim(trimmed[m[2]:m[3]], " ,")
	if value == "" {
		return "", false, text
	}
	return value, true, trimmed[:m[0]]
}

// cleanTitle collapses whitespace and drops leading punctuation and "the".
func cleanTitle(text string) string {
	title := strings.Join(strings.Fields(text), " ")
	title = leadingPunctRe.ReplaceAllString(title, "")
	return strings.TrimSpace(leadingArticleRe.ReplaceAllString(title, ""))
}

// removalTarget returns the lower-cased text to match against titles.
func removalTarget(text string) (string, bool) {
	rest, ok := afterKeyword(removeKeywordRe, text)
	if !ok {
		return "", false
	}
	rest = leadingPunctRe.ReplaceAllString(stripTrailingDayClause(rest), "")
	target := strings.ToLower(strings.TrimSpace(rest))
	return target, target != ""
}

// periodFor buckets a typed time into morning, afternoon or evening.
// Anything unparseable lands in the afternoon.
func periodFor(clock string) string {
	m := clockHourMinuteRe.FindStringSubmatch(strings.TrimSpace(clock))
	if m == nil {
		return "afternoon"
	}
	hour, _ := strconv.Atoi(m[1])
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	switch {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}
