package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDayNumber(t *testing.T) {
	cases := []struct {
		text  string
		want  int
		found bool
	}{
		{"remove lunch on day 2", 2, true},
		{"add hike on DAY   14", 14, true},
		{"add day trip to Versailles on day 3", 3, true},
		{"add sunday brunch", 0, false},
		{"add something today 5", 0, false},
	}
	for _, tc := range cases {
		got, ok := extractDayNumber(tc.text)
		assert.Equal(t, tc.found, ok, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}
}

func TestExtractTime(t *testing.T) {
	cases := []struct {
		text  string
		want  string
		found bool
		rest  string
	}{
		{"museum at 10:00 AM in Downtown", "10:00 AM", true, "museum in Downtown"},
		{"spa at 3 PM", "3 PM", true, "spa"},
		{"coffee at 7:30pm", "7:30pm", true, "coffee"},
		{"show at 20:00", "20:00", true, "show"},
		{"gala at 2025 hall", "", false, "gala at 2025 hall"},
		{"boat tour", "", false, "boat tour"},
		{"lunch at noon", "", false, "lunch at noon"},
	}
	for _, tc := range cases {
		got, ok, rest := extractTime(tc.text)
		assert.Equal(t, tc.found, ok, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
		assert.Equal(t, tc.rest, cleanTitle(rest), tc.text)
	}
}

func TestExtractLocation(t *testing.T) {
	cases := []struct {
		text  string
		want  string
		found bool
		rest  string
	}{
		{"museum tour in Downtown", "Downtown", true, "museum tour"},
		{"gelato at Piazza Navona", "Piazza Navona", true, "gelato"},
		{"fondue in Zürich", "Zürich", true, "fondue"},
		{"picnic in the park,", "the park", true, "picnic"},
		{"walking tour", "", false, "walking tour"},
	}
	for _, tc := range cases {
		got, ok, rest := extractLocation(tc.text)
		assert.Equal(t, tc.found, ok, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
		assert.Equal(t, tc.rest, cleanTitle(rest), tc.text)
	}
}

func TestExtractDayClause(t *testing.T) {
	assert.Equal(t, "hike at 9 AM", cleanTitle(extractDayClause("hike on Day 2 at 9 AM")))
	assert.Equal(t, "hike", cleanTitle(extractDayClause("hike day 2")))
	assert.Equal(t, "day trip", cleanTitle(extractDayClause("day trip")))
}

func TestRemovalTarget(t *testing.T) {
	cases := map[string]string{
		"remove lunch on day 2":          "lunch",
		"Please REMOVE the Museum Visit": "the museum visit",
		"remove   dinner   ":             "dinner",
		"remove":                         "",
		"remove on day 3":                "",
		"remove: lunch on day 2":         "lunch",
		"remove - the shopping":          "the shopping",
		"remove:":                        "",
	}
	for text, want := range cases {
		got, ok := removalTarget(text)
		assert.Equal(t, want, got, text)
		assert.Equal(t, want != "", ok, text)
	}
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "walking tour", cleanTitle("  the   walking tour "))
	assert.Equal(t, "theater night", cleanTitle("theater night"))
	assert.Equal(t, "", cleanTitle("The"))
	assert.Equal(t, "gelato", cleanTitle(": gelato"))
	assert.Equal(t, "walking tour", cleanTitle(" , - the walking tour"))
	assert.Equal(t, "", cleanTitle(" ;: "))
}

func TestPeriodFor(t *testing.T) {
	cases := map[string]string{
		"8:00 AM":  "morning",
		"12:00 AM": "morning",
		"12:00":    "afternoon",
		"2:30 PM":  "afternoon",
		"16:59":    "afternoon",
		"5 PM":     "evening",
		"21:00":    "evening",
		"noonish":  "afternoon",
	}
	for clock, want := range cases {
		assert.Equal(t, want, periodFor(clock), clock)
	}
}
