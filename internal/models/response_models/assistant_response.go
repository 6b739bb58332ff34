package response_models

import "wanderly/internal/itinerary"

// AssistantTurnResponse is the reply to one instruction against a stored
// itinerary. Days is the itinerary after the turn, changed or not.
type AssistantTurnResponse struct {
	ItineraryID string              `json:"itinerary_id"`
	Message     string              `json:"message"`
	Intent      itinerary.Intent    `json:"intent"`
	Outcome     itinerary.Outcome   `json:"outcome"`
	Changed     bool                `json:"changed"`
	Added       *itinerary.Activity `json:"added,omitempty"`
	Removed     int                 `json:"removed,omitempty"`
	Days        itinerary.Itinerary `json:"days"`
}

type AssistantMessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Outcome   string `json:"outcome,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
