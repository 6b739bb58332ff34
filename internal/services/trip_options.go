package services

import "wanderly/internal/models/response_models"

type tripStep struct {
	key      string
	title    string
	required bool
}

var tripSteps = []tripStep{
	{key: "destination", title: "Destination", required: true},
	{key: "dates", title: "Dates"},
	{key: "budget", title: "Budget"},
	{key: "travel-type", title: "Travel Type", required: true},
	{key: "style", title: "Style"},
	{key: "constraints", title: "Preferences"},
	{key: "hotels", title: "Hotels", required: true},
	{key: "places", title: "Places", required: true},
	{key: "food", title: "Food", required: true},
	{key: "itinerary", title: "Itinerary"},
}

const (
	stepDestination = 0
	stepTravelType  = 3
	stepHotels      = 6
	stepPlaces      = 7
	stepFood        = 8
	stepItinerary   = 9
)

var budgetOptions = []response_models.OptionResponse{
	{ID: "budget", Label: "Budget", Description: "Hostels, street food, free activities"},
	{ID: "moderate", Label: "Moderate", Description: "Mid-range hotels, local restaurants"},
	{ID: "comfort", Label: "Comfort", Description: "4-star hotels, popular restaurants"},
	{ID: "luxury", Label: "Luxury", Description: "5-star hotels, fine dining, VIP experiences"},
}

var travelTypeOptions = []response_models.OptionResponse{
	{ID: "solo", Label: "Solo", Description: "Exploring on my own terms"},
	{ID: "couple", Label: "Couple", Description: "Romantic getaway for two"},
	{ID: "friends", Label: "Friends", Description: "Adventure with my crew"},
	{ID: "family", Label: "Family", Description: "Fun for all ages"},
}

var styleOptions = []response_models.OptionResponse{
	{ID: "relaxed", Label: "Relaxed", Description: "2-3 activities per day, plenty of downtime"},
	{ID: "balanced", Label: "Balanced", Description: "4-5 activities, mix of sights and rest"},
	{ID: "packed", Label: "Packed", Description: "6+ activities, see everything possible"},
}

var constraintOptions = map[string][]response_models.OptionResponse{
	"diet": {
		{ID: "vegetarian", Label: "Vegetarian"},
		{ID: "vegan", Label: "Vegan"},
		{ID: "halal", Label: "Halal"},
		{ID: "kosher", Label: "Kosher"},
		{ID: "gluten-free", Label: "Gluten Free"},
	},
	"mobility": {
		{ID: "limited-walking", Label: "Limited Walking"},
		{ID: "wheelchair", Label: "Wheelchair Access"},
		{ID: "stroller", Label: "Stroller Friendly"},
	},
	"preference": {
		{ID: "avoid-crowds", Label: "Avoid Crowds"},
		{ID: "outdoor-focus", Label: "Outdoor Focus"},
		{ID: "indoor-focus", Label: "Indoor/AC Focus"},
		{ID: "pet-friendly", Label: "Pet Friendly"},
	},
}

// dietConstraints splits the diet ids out of a constraint list.
func dietConstraints(constraints []string) []string {
	var out []string
	for _, c := range constraints {
		for _, o := range constraintOptions["diet"] {
			if o.ID == c {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
