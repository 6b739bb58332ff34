package response_models

import "wanderly/internal/itinerary"

type ItineraryResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Destination   string              `json:"destination"`
	StartDate     string              `json:"start_date,omitempty"`
	EndDate       string              `json:"end_date,omitempty"`
	Budget        string              `json:"budget,omitempty"`
	TravelType    string              `json:"travel_type,omitempty"`
	Style         string              `json:"style,omitempty"`
	Constraints   []string            `json:"constraints"`
	HotelID       *int                `json:"hotel_id,omitempty"`
	Days          itinerary.Itinerary `json:"days"`
	GeneratedText string              `json:"generated_text,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

type GeneratedItineraryResponse struct {
	Itinerary string `json:"itinerary"`
	Provider  string `json:"provider"`
	Cached    bool   `json:"cached"`
}

type DeletedResponse struct {
	Success bool `json:"success"`
}
