package itinerary

import (
	"fmt"
	"strings"
)

type Intent string

const (
	IntentAdd          Intent = "add"
	IntentRemove       Intent = "remove"
	IntentUnrecognized Intent = "unrecognized"
)

// Outcome classifies how an instruction resolved. Only OutcomeApplied
// changes the itinerary.
type Outcome string

const (
	OutcomeApplied      Outcome = "applied"
	OutcomeNotFound     Outcome = "not_found"
	OutcomeAmbiguous    Outcome = "ambiguous"
	OutcomeUnrecognized Outcome = "unrecognized"
)

const (
	WelcomeMessage     = "Tell me what to change. Example: “remove lunch on Day 2” or “add sunset cruise on Day 3 at 6:00 PM in Marina”."
	UsageHintMessage   = "I can add or remove items. Try “remove lunch on Day 2” or “add boat tour on Day 3 at 5 PM in Harbor”."
	RemoveUnclearMsg   = "I couldn't tell what to remove. Try “remove museum visit on Day 1”."
	RemoveNotFoundMsg  = "I didn't find that item. Mention the exact title and day if possible."
	AddUnclearMsg      = "What should I add? Try “add museum tour on Day 2 at 10:00 AM in Downtown”."
	DayNotFoundMsg     = "I couldn't find that day. Try “add <item> on Day 1”."
	removedOneMsg      = "Done. I removed that activity."
	removedManyMsgFmt  = "Done. I removed %d activities."
	addedMsgFmt        = "Added “%s” to Day %d."
	customActivityType = "custom"
)

// Result is the outcome of one instruction. Itinerary is always renderable:
// it is the input unchanged unless Outcome is OutcomeApplied.
type Result struct {
	Itinerary Itinerary `json:"itinerary"`
	Message   string    `json:"message"`
	Intent    Intent    `json:"intent"`
	Outcome   Outcome   `json:"outcome"`
	Added     *Activity `json:"added,omitempty"`
	Removed   int       `json:"removed,omitempty"`
}

func (r Result) Changed() bool {
	return r.Outcome == OutcomeApplied
}

// Interpreter applies add/remove instructions to itinerary snapshots.
// It holds configuration only and is safe for concurrent use.
type Interpreter struct {
	defaultTime     string
	defaultLocation string
	newID           func() string
}

type Option func(*Interpreter)

func WithDefaultTime(t string) Option {
	return func(in *Interpreter) { in.defaultTime = t }
}

func WithDefaultLocation(loc string) Option {
	return func(in *Interpreter) { in.defaultLocation = loc }
}

// WithIDGenerator assigns ids to added activities. Without it new
// activities have an empty ID and results stay fully deterministic.
func WithIDGenerator(fn func() string) Option {
	return func(in *Interpreter) { in.newID = fn }
}

func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{
		defaultTime:     DefaultTime,
		defaultLocation: DefaultLocation,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

var defaultInterpreter = NewInterpreter()

// Interpret runs instruction against it with the default settings.
func Interpret(it Itinerary, instruction string) Result {
	return defaultInterpreter.Interpret(it, instruction)
}

// Interpret classifies instruction and applies it to a copy of it.
// Removal wins when both keywords are present.
func (in *Interpreter) Interpret(it Itinerary, instruction string) Result {
	text := strings.TrimSpace(instruction)

	switch {
	case hasKeyword(removeKeywordRe, text):
		return in.remove(it, text)
	case hasKeyword(addKeywordRe, text):
		return in.add(it, text)
	default:
		return unchanged(it, IntentUnrecognized, OutcomeUnrecognized, UsageHintMessage)
	}
}

func unchanged(it Itinerary, intent Intent, outcome Outcome, msg string) Result {
	return Result{Itinerary: it, Message: msg, Intent: intent, Outcome: outcome}
}

func (in *Interpreter) remove(it Itinerary, text string) Result {
	target, ok := removalTarget(text)
	if !ok {
		return unchanged(it, IntentRemove, OutcomeAmbiguous, RemoveUnclearMsg)
	}
	dayNumber, scoped := extractDayNumber(text)

	next := make(Itinerary, len(it))
	removed := 0
	for i, day := range it {
		next[i] = day
		if scoped && day.Day != dayNumber {
			continue
		}
		kept := make([]Activity, 0, len(day.Activities))
		for _, a := range day.Activities {
			if strings.Contains(strings.ToLower(a.Title), target) {
				continue
			}
			kept = append(kept, a)
		}
		if len(kept) != len(day.Activities) {
			removed += len(day.Activities) - len(kept)
			next[i].Activities = kept
		}
	}

	if removed == 0 {
		return unchanged(it, IntentRemove, OutcomeNotFound, RemoveNotFoundMsg)
	}

	msg := removedOneMsg
	if removed > 1 {
		msg = fmt.Sprintf(removedManyMsgFmt, removed)
	}
	return Result{
		Itinerary: next,
		Message:   msg,
		Intent:    IntentRemove,
		Outcome:   OutcomeApplied,
		Removed:   removed,
	}
}

func (in *Interpreter) add(it Itinerary, text string) Result {
	dayNumber, ok := extractDayNumber(text)
	if !ok {
		dayNumber = it.lastDayNumber()
	}

	rest, _ := afterKeyword(addKeywordRe, text)
	rest = extractDayClause(rest)
	clock, hasClock, rest := extractTime(rest)
	location, hasLocation, rest := extractLocation(rest)
	title := cleanTitle(rest)

	if title == "" {
		return unchanged(it, IntentAdd, OutcomeAmbiguous, AddUnclearMsg)
	}
	if !hasClock {
		clock = in.defaultTime
	}
	if !hasLocation {
		location = in.defaultLocation
	}

	idx := it.DayIndex(dayNumber)
	if idx < 0 {
		return unchanged(it, IntentAdd, OutcomeNotFound, DayNotFoundMsg)
	}

	activity := Activity{
		Time:        clock,
		Title:       title,
		Location:    location,
		Type:        customActivityType,
		Description: "Custom activity",
		Duration:    "1 hour",
		Period:      periodFor(clock),
	}
	if in.newID != nil {
		activity.ID = in.newID()
	}

	next := make(Itinerary, len(it))
	copy(next, it)
	target := it[idx]
	activities := make([]Activity, 0, len(target.Activities)+1)
	activities = append(activities, target.Activities...)
	next[idx].Activities = append(activities, activity)

	return Result{
		Itinerary: next,
		Message:   fmt.Sprintf(addedMsgFmt, activity.Title, dayNumber),
		Intent:    IntentAdd,
		Outcome:   OutcomeApplied,
		Added:     &activity,
	}
}
