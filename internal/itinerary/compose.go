package itinerary

import (
	"fmt"

	"wanderly/internal/catalog"
)

// DefaultDayCount is used when a trip has no usable date range.
const DefaultDayCount = 2

// Selection is what the traveller picked in the wizard, in pick order.
type Selection struct {
	Places      []catalog.Place
	Restaurants []catalog.Restaurant
}

// Compose spreads the selection over dayCount days using a fixed daily
// template: breakfast, a morning place, lunch, an afternoon place, an early
// evening place and dinner. Slots without a pick are skipped, except
// breakfast which falls back to a generic local spot.
func Compose(sel Selection, dayCount int) Itinerary {
	if dayCount < 1 {
		dayCount = DefaultDayCount
	}
	placesPerDay := ceilDiv(len(sel.Places), dayCount)
	restaurantsPerDay := ceilDiv(len(sel.Restaurants), dayCount)

	days := make(Itinerary, 0, dayCount)
	for day := 1; day <= dayCount; day++ {
		places := window(sel.Places, day, placesPerDay)
		restaurants := window(sel.Restaurants, day, restaurantsPerDay)

		activities := make([]Activity, 0, 6)

		breakfast := Activity{
			Time:        "8:00 AM",
			Type:        "breakfast",
			Title:       "Local Breakfast Spot",
			Description: "Start your day with local flavors",
			Duration:    "1 hour",
			Tip:         "Best time to beat the crowds",
			Period:      "morning",
		}
		if len(restaurants) > 0 {
			breakfast.Title = restaurants[0].Name
			breakfast.Description = restaurants[0].MustTry
		}
		activities = append(activities, breakfast)

		if len(places) > 0 {
			activities = append(activities, placeActivity(places[0], "9:30 AM", "morning"))
		}
		if len(restaurants) > 1 {
			activities = append(activities, mealActivity(restaurants[1], "12:30 PM", "lunch", "1.5 hours", "afternoon"))
		}
		if len(places) > 1 {
			activities = append(activities, placeActivity(places[1], "2:30 PM", "afternoon"))
		}
		if len(places) > 2 {
			activities = append(activities, placeActivity(places[2], "5:00 PM", "evening"))
		}
		if len(restaurants) > 2 {
			activities = append(activities, mealActivity(restaurants[2], "7:30 PM", "dinner", "2 hours", "evening"))
		}

		days = append(days, Day{
			Day:        day,
			Date:       fmt.Sprintf("Day %d", day),
			Activities: activities,
		})
	}
	return days
}

func placeActivity(p catalog.Place, clock, period string) Activity {
	return Activity{
		Time:        clock,
		Type:        "place",
		Title:       p.Name,
		Description: p.Type,
		Duration:    p.Duration,
		Tip:         p.Tip,
		Period:      period,
		Notes:       p.Distance,
	}
}

func mealActivity(r catalog.Restaurant, clock, kind, duration, period string) Activity {
	return Activity{
		Time:        clock,
		Type:        kind,
		Title:       r.Name,
		Description: r.Cuisine,
		Duration:    duration,
		Tip:         "Try: " + r.MustTry,
		Period:      period,
		Notes:       r.WalkTime,
	}
}

// window returns the perDay-sized slice for a 1-based day.
func window[T any](items []T, day, perDay int) []T {
	start := (day - 1) * perDay
	if perDay == 0 || start >= len(items) {
		return nil
	}
	end := start + perDay
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func ceilDiv(n, d int) int {
	if n == 0 {
		return 0
	}
	return (n + d - 1) / d
}
