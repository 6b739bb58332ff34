package itinerary

// DefaultLocation is used for activities added without an "in X" clause.
const DefaultLocation = "TBD"

// DefaultTime is used for activities added without an "at H:MM" clause.
const DefaultTime = "12:00"

type Activity struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Time        string `json:"time" yaml:"time"`
	Title       string `json:"title" yaml:"title"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Tip         string `json:"tip,omitempty" yaml:"tip,omitempty"`
	Period      string `json:"period,omitempty" yaml:"period,omitempty"`
	Notes       string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Day is one numbered day of a trip. Day numbers are unique within an
// itinerary and double as the "Day N" label.
type Day struct {
	Day        int        `json:"day" yaml:"day"`
	Date       string     `json:"date,omitempty" yaml:"date,omitempty"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

// Itinerary is an ordered snapshot of days. Values are treated as immutable:
// every change produces a new Itinerary.
type Itinerary []Day

// ActivityCount returns the number of activities across all days.
func (it Itinerary) ActivityCount() int {
	n := 0
	for _, d := range it {
		n += len(d.Activities)
	}
	return n
}

// DayIndex returns the position of the day numbered n, or -1.
func (it Itinerary) DayIndex(n int) int {
	for i, d := range it {
		if d.Day == n {
			return i
		}
	}
	return -1
}

func (it Itinerary) lastDayNumber() int {
	if len(it) == 0 {
		return 1
	}
	return it[len(it)-1].Day
}

// Clone returns a deep copy.
func (it Itinerary) Clone() Itinerary {
	if it == nil {
		return nil
	}
	out := make(Itinerary, len(it))
	for i, d := range it {
		out[i] = d
		if d.Activities != nil {
			out[i].Activities = append([]Activity(nil), d.Activities...)
		}
	}
	return out
}
