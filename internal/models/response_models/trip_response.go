package response_models

import (
	"wanderly/internal/catalog"
	"wanderly/internal/itinerary"
)

type TripStepResponse struct {
	Index    int    `json:"index"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Required bool   `json:"required"`
}

type OptionResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type TripOptionsResponse struct {
	Budgets     []OptionResponse            `json:"budgets"`
	TravelTypes []OptionResponse            `json:"travel_types"`
	Styles      []OptionResponse            `json:"styles"`
	Constraints map[string][]OptionResponse `json:"constraints"`
}

type StepValidationResponse struct {
	Step       int    `json:"step"`
	Key        string `json:"key"`
	CanProceed bool   `json:"can_proceed"`
	Reason     string `json:"reason,omitempty"`
}

type ComposedTripResponse struct {
	Destination string              `json:"destination"`
	DayCount    int                 `json:"day_count"`
	Hotel       *catalog.Hotel      `json:"hotel,omitempty"`
	Days        itinerary.Itinerary `json:"days"`
}
