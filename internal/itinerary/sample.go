package itinerary

// Sample returns the three-day starter itinerary shown to new travellers.
func Sample() Itinerary {
	return Itinerary{
		{Day: 1, Date: "Day 1", Activities: []Activity{
			{ID: "a1", Time: "09:00", Title: "Arrival & Check-in", Location: "Hotel", Notes: "Early check-in requested"},
			{ID: "a2", Time: "12:00", Title: "Lunch at Local Restaurant", Location: "City Center"},
			{ID: "a3", Time: "15:00", Title: "Walking Tour", Location: "Historic District"},
			{ID: "a4", Time: "19:00", Title: "Dinner", Location: "Waterfront"},
		}},
		{Day: 2, Date: "Day 2", Activities: []Activity{
			{ID: "b1", Time: "08:00", Title: "Breakfast", Location: "Hotel"},
			{ID: "b2", Time: "10:00", Title: "Museum Visit", Location: "National Museum", Notes: "Book tickets in advance"},
			{ID: "b3", Time: "14:00", Title: "Lunch Break", Location: "Museum Café"},
			{ID: "b4", Time: "16:00", Title: "Shopping", Location: "Main Street"},
		}},
		{Day: 3, Date: "Day 3", Activities: []Activity{
			{ID: "c1", Time: "07:00", Title: "Early Morning Hike", Location: "Mountain Trail"},
			{ID: "c2", Time: "13:00", Title: "Lunch with View", Location: "Mountain Restaurant"},
			{ID: "c3", Time: "16:00", Title: "Return to City", Location: "City Center"},
			{ID: "c4", Time: "20:00", Title: "Farewell Dinner", Location: "Fine Dining"},
		}},
	}
}
