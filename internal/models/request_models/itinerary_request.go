package request_models

import (
	"time"

	"wanderly/internal/itinerary"
)

// ItineraryRequest is the body for both create and update. Update replaces
// every field.
type ItineraryRequest struct {
	Title         string              `json:"title" binding:"required,max=200"`
	Destination   string              `json:"destination" binding:"max=200"`
	StartDate     *time.Time          `json:"start_date"`
	EndDate       *time.Time          `json:"end_date"`
	Budget        string              `json:"budget"`
	TravelType    string              `json:"travel_type"`
	Style         string              `json:"style"`
	Constraints   []string            `json:"constraints"`
	HotelID       *int                `json:"hotel_id"`
	Days          itinerary.Itinerary `json:"days"`
	GeneratedText string              `json:"generated_text"`
}

type GenerateItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required"`
}
