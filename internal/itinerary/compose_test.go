package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderly/internal/catalog"
)

func TestCompose_TwoDaysFullSelection(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	sel := Selection{
		Places:      cat.PlacesByIDs([]int{1, 2, 3, 4, 5, 6}),
		Restaurants: cat.RestaurantsByIDs([]int{1, 2, 3, 4, 5, 6}),
	}

	days := Compose(sel, 2)

	require.Len(t, days, 2)
	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
		require.Len(t, d.Activities, 6)
		assert.Equal(t, []string{"8:00 AM", "9:30 AM", "12:30 PM", "2:30 PM", "5:00 PM", "7:30 PM"}, times(d.Activities))
	}

	first := days[0].Activities
	assert.Equal(t, "La Petite Maison", first[0].Title)
	assert.Equal(t, "Duck Confit with truffle sauce", first[0].Description)
	assert.Equal(t, "Historic Old Town Square", first[1].Title)
	assert.Equal(t, "lunch", first[2].Type)
	assert.Equal(t, "Try: Traditional meat skewers", first[2].Tip)
	assert.Equal(t, "dinner", first[5].Type)
	assert.Equal(t, "evening", first[5].Period)

	assert.Equal(t, "Sunset Viewpoint Trail", days[1].Activities[1].Title)
}

func TestCompose_DistancesGoToNotes(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	sel := Selection{
		Places:      cat.PlacesByIDs([]int{1}),
		Restaurants: cat.RestaurantsByIDs([]int{1, 2}),
	}

	acts := Compose(sel, 1)[0].Activities
	require.Len(t, acts, 3)

	place, lunch := acts[1], acts[2]
	assert.Equal(t, "Historic Old Town Square", place.Title)
	assert.Equal(t, "0.5 km from hotel", place.Notes)
	assert.Empty(t, place.Location)

	assert.Equal(t, "lunch", lunch.Type)
	assert.Equal(t, cat.RestaurantsByIDs([]int{2})[0].WalkTime, lunch.Notes)
	assert.Empty(t, lunch.Location)
}

func TestCompose_SparseSelection(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	sel := Selection{
		Places:      cat.PlacesByIDs([]int{3}),
		Restaurants: nil,
	}

	days := Compose(sel, 2)

	require.Len(t, days, 2)
	assert.Len(t, days[0].Activities, 2)
	assert.Equal(t, "Local Breakfast Spot", days[0].Activities[0].Title)
	assert.Equal(t, "National Art Museum", days[0].Activities[1].Title)

	// Second day only gets the fallback breakfast.
	require.Len(t, days[1].Activities, 1)
	assert.Equal(t, "breakfast", days[1].Activities[0].Type)
}

func TestCompose_DefaultsDayCount(t *testing.T) {
	days := Compose(Selection{}, 0)
	assert.Len(t, days, DefaultDayCount)
	assert.Equal(t, "Day 2", days[1].Date)
}

func TestCompose_ResultIsInterpretable(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	days := Compose(Selection{Restaurants: cat.RestaurantsByIDs([]int{6, 5, 4})}, 1)

	res := Interpret(days, "remove nonna on day 1")

	require.Equal(t, OutcomeApplied, res.Outcome)
	assert.Len(t, res.Itinerary[0].Activities, 2)
}

func times(acts []Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.Time
	}
	return out
}
