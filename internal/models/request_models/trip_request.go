package request_models

import "time"

// TripDraft carries the wizard answers collected so far.
type TripDraft struct {
	Title         string     `json:"title"`
	Destination   string     `json:"destination"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Budget        string     `json:"budget"`
	TravelType    string     `json:"travel_type"`
	Style         string     `json:"style"`
	Constraints   []string   `json:"constraints"`
	HotelID       *int       `json:"hotel_id"`
	PlaceIDs      []int      `json:"place_ids"`
	RestaurantIDs []int      `json:"restaurant_ids"`
}

type CatalogQuery struct {
	Destination string   `form:"destination"`
	Budget      string   `form:"budget"`
	Style       string   `form:"style"`
	TravelType  string   `form:"travel_type"`
	Constraints []string `form:"constraints"`
}
