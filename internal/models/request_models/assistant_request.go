package request_models

import "wanderly/internal/itinerary"

type AssistantCommandRequest struct {
	Instruction string `json:"instruction" binding:"required"`
}

// InterpretRequest runs one instruction against a caller supplied snapshot
// without touching storage.
type InterpretRequest struct {
	Days        itinerary.Itinerary `json:"days"`
	Instruction string              `json:"instruction" binding:"required"`
}
