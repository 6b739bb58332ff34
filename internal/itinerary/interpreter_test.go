package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_RemoveLunchOnDayOne(t *testing.T) {
	in := Itinerary{{Day: 1, Activities: []Activity{{Title: "Lunch at Local Restaurant", Time: "12:00"}}}}

	res := Interpret(in, "remove lunch on day 1")

	assert.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, IntentRemove, res.Intent)
	require.Len(t, res.Itinerary, 1)
	assert.Empty(t, res.Itinerary[0].Activities)
	assert.Equal(t, "Done. I removed that activity.", res.Message)
	assert.Equal(t, 1, res.Removed)
}

func TestInterpret_AddWithTimeAndLocation(t *testing.T) {
	in := Itinerary{{Day: 1}, {Day: 2}}

	res := Interpret(in, "add museum tour on Day 2 at 10:00 AM in Downtown")

	require.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, IntentAdd, res.Intent)
	assert.Empty(t, res.Itinerary[0].Activities)
	require.Len(t, res.Itinerary[1].Activities, 1)

	got := res.Itinerary[1].Activities[0]
	assert.Equal(t, "museum tour", got.Title)
	assert.Equal(t, "10:00 AM", got.Time)
	assert.Equal(t, "Downtown", got.Location)
	assert.Equal(t, "morning", got.Period)
	assert.Equal(t, "Added “museum tour” to Day 2.", res.Message)
}

func TestInterpret_AddToMissingDay(t *testing.T) {
	in := Itinerary{{Day: 1, Activities: []Activity{{Title: "Breakfast"}}}}

	res := Interpret(in, "add spa visit on Day 5 at 3 PM")

	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.Equal(t, DayNotFoundMsg, res.Message)
	assert.Equal(t, in, res.Itinerary)
	assert.Len(t, res.Itinerary, 1)
}

func TestInterpret_RemoveWithoutObject(t *testing.T) {
	in := Sample()

	res := Interpret(in, "remove")

	assert.Equal(t, OutcomeAmbiguous, res.Outcome)
	assert.Equal(t, IntentRemove, res.Intent)
	assert.Equal(t, RemoveUnclearMsg, res.Message)
	assert.Equal(t, in, res.Itinerary)
}

func TestInterpret_Unrecognized(t *testing.T) {
	cases := []string{
		"what should I pack?",
		"check my address",
		"is the museum removed from the list",
		"   ",
	}
	for _, instruction := range cases {
		t.Run(instruction, func(t *testing.T) {
			in := Sample()
			res := Interpret(in, instruction)

			assert.Equal(t, OutcomeUnrecognized, res.Outcome)
			assert.Equal(t, IntentUnrecognized, res.Intent)
			assert.Equal(t, UsageHintMessage, res.Message)
			assert.Equal(t, Sample(), res.Itinerary)
		})
	}
}

func TestInterpret_CaseInsensitive(t *testing.T) {
	upper := Interpret(Sample(), "REMOVE Lunch on Day 2")
	lower := Interpret(Sample(), "remove lunch on day 2")

	require.Equal(t, OutcomeApplied, upper.Outcome)
	assert.Equal(t, lower.Itinerary, upper.Itinerary)

	// Only day 2 is touched.
	assert.Len(t, upper.Itinerary[0].Activities, 4)
	assert.Len(t, upper.Itinerary[1].Activities, 3)
	assert.Len(t, upper.Itinerary[2].Activities, 4)
}

func TestInterpret_RemoveAcrossAllDays(t *testing.T) {
	res := Interpret(Sample(), "remove lunch")

	require.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, 3, res.Removed)
	assert.Equal(t, "Done. I removed 3 activities.", res.Message)
	for _, d := range res.Itinerary {
		for _, a := range d.Activities {
			assert.NotContains(t, strings.ToLower(a.Title), "lunch")
		}
	}
	assert.Len(t, res.Itinerary, 3)
}

func TestInterpret_RemoveUnknownDayOrTitle(t *testing.T) {
	for _, instruction := range []string{"remove dinner on day 9", "remove scuba diving", "remove on day 1"} {
		t.Run(instruction, func(t *testing.T) {
			res := Interpret(Sample(), instruction)
			assert.NotEqual(t, OutcomeApplied, res.Outcome)
			assert.Equal(t, Sample(), res.Itinerary)
		})
	}
}

func TestInterpret_RemoveOnDayOneWithNoTarget(t *testing.T) {
	res := Interpret(Sample(), "remove on day 1")
	assert.Equal(t, OutcomeAmbiguous, res.Outcome)
}

func TestInterpret_RemoveHasPriority(t *testing.T) {
	res := Interpret(Sample(), "add nothing, just remove shopping on day 2")

	require.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, IntentRemove, res.Intent)
	assert.Len(t, res.Itinerary[1].Activities, 3)
	assert.Equal(t, Sample().ActivityCount()-1, res.Itinerary.ActivityCount())
}

func TestInterpret_AddDefaults(t *testing.T) {
	res := Interpret(Sample(), "add night market")

	require.Equal(t, OutcomeApplied, res.Outcome)
	require.NotNil(t, res.Added)
	assert.Equal(t, "night market", res.Added.Title)
	assert.Equal(t, DefaultTime, res.Added.Time)
	assert.Equal(t, DefaultLocation, res.Added.Location)
	assert.Equal(t, "custom", res.Added.Type)
	assert.Empty(t, res.Added.Notes)
	assert.Empty(t, res.Added.ID)

	last := res.Itinerary[2].Activities
	assert.Equal(t, *res.Added, last[len(last)-1])
	assert.Equal(t, "Added “night market” to Day 3.", res.Message)
}

func TestInterpret_AddToEmptyItinerary(t *testing.T) {
	res := Interpret(Itinerary{}, "add picnic")

	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.Empty(t, res.Itinerary)
}

func TestInterpret_AddWithoutTitle(t *testing.T) {
	for _, instruction := range []string{"add", "add on day 2 at 5 PM", "please add the", "add: on day 1"} {
		t.Run(instruction, func(t *testing.T) {
			res := Interpret(Sample(), instruction)
			assert.Equal(t, OutcomeAmbiguous, res.Outcome)
			assert.Equal(t, AddUnclearMsg, res.Message)
			assert.Equal(t, Sample(), res.Itinerary)
		})
	}
}

func TestInterpret_AddVariants(t *testing.T) {
	cases := []struct {
		instruction string
		day         int
		title       string
		time        string
		location    string
	}{
		{"add boat tour on Day 3 at 5 PM in Harbor", 3, "boat tour", "5 PM", "Harbor"},
		{"add the walking tour on day 1", 1, "walking tour", DefaultTime, DefaultLocation},
		{"Add coffee at 7:30pm on day 2", 2, "coffee", "7:30pm", DefaultLocation},
		{"add sunset cruise on Day 3 at 6:00 PM in Marina", 3, "sunset cruise", "6:00 PM", "Marina"},
		{"add dinner with friends day 1 at 20:00", 1, "dinner with friends", "20:00", DefaultLocation},
		{"add gelato stop at Piazza Navona", 3, "gelato stop", DefaultTime, "Piazza Navona"},
		{"Please add: gelato", 3, "gelato", DefaultTime, DefaultLocation},
		{"add - jazz club on day 2 at 9 PM", 2, "jazz club", "9 PM", DefaultLocation},
	}
	for _, tc := range cases {
		t.Run(tc.instruction, func(t *testing.T) {
			in := Sample()
			res := Interpret(in, tc.instruction)

			require.Equal(t, OutcomeApplied, res.Outcome)
			require.NotNil(t, res.Added)
			assert.Equal(t, tc.title, res.Added.Title)
			assert.Equal(t, tc.time, res.Added.Time)
			assert.Equal(t, tc.location, res.Added.Location)

			idx := res.Itinerary.DayIndex(tc.day)
			require.GreaterOrEqual(t, idx, 0)
			acts := res.Itinerary[idx].Activities
			assert.Equal(t, tc.title, acts[len(acts)-1].Title)
			assert.Equal(t, in.ActivityCount()+1, res.Itinerary.ActivityCount())
		})
	}
}

func TestInterpret_DoesNotMutateInput(t *testing.T) {
	in := Sample()
	before := in.Clone()

	_ = Interpret(in, "remove lunch")
	_ = Interpret(in, "add rooftop drinks on day 1 at 9 PM")
	_ = Interpret(in, "remove dinner on day 1")

	assert.Equal(t, before, in)
}

func TestInterpret_AppendDoesNotShareBackingArray(t *testing.T) {
	acts := make([]Activity, 1, 8)
	acts[0] = Activity{Title: "Breakfast"}
	in := Itinerary{{Day: 1, Activities: acts}}

	first := Interpret(in, "add museum on day 1")
	second := Interpret(in, "add market on day 1")

	assert.Equal(t, "museum", first.Itinerary[0].Activities[1].Title)
	assert.Equal(t, "market", second.Itinerary[0].Activities[1].Title)
	assert.Len(t, in[0].Activities, 1)
}

func TestInterpret_UntouchedDaysAreKept(t *testing.T) {
	in := Sample()
	res := Interpret(in, "add jazz club on day 2 at 10 PM")

	require.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, in[0], res.Itinerary[0])
	assert.Equal(t, in[2], res.Itinerary[2])
	assert.Equal(t, "evening", res.Added.Period)
}

func TestInterpret_RemovalMonotonicity(t *testing.T) {
	targets := []struct {
		instruction string
		target      string
		day         int
	}{
		{"remove dinner", "dinner", 0},
		{"remove tour on day 1", "tour", 1},
		{"remove Museum on Day 2", "museum", 2},
		{"remove e", "e", 0},
	}
	for _, tc := range targets {
		t.Run(tc.instruction, func(t *testing.T) {
			in := Sample()
			res := Interpret(in, tc.instruction)

			require.Equal(t, OutcomeApplied, res.Outcome)
			assert.Less(t, res.Itinerary.ActivityCount(), in.ActivityCount())
			assert.Len(t, res.Itinerary, len(in))
			for _, d := range res.Itinerary {
				if tc.day != 0 && d.Day != tc.day {
					continue
				}
				for _, a := range d.Activities {
					assert.NotContains(t, strings.ToLower(a.Title), tc.target)
				}
			}
		})
	}
}

func TestInterpret_DayNonCreation(t *testing.T) {
	in := Sample()
	for _, n := range []string{"0", "4", "12", "99999999999999999999999"} {
		res := Interpret(in, "add karaoke on day "+n)
		assert.Equal(t, OutcomeNotFound, res.Outcome)
		assert.Len(t, res.Itinerary, len(in))
	}
}

func TestInterpreter_Options(t *testing.T) {
	in := NewInterpreter(
		WithDefaultTime("12:00 PM"),
		WithDefaultLocation("Somewhere"),
		WithIDGenerator(func() string { return "act-1" }),
	)

	res := in.Interpret(Itinerary{{Day: 1}}, "add picnic")

	require.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, "12:00 PM", res.Added.Time)
	assert.Equal(t, "Somewhere", res.Added.Location)
	assert.Equal(t, "act-1", res.Added.ID)
	assert.True(t, res.Changed())
}
