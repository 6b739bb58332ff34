package db_models

import "github.com/google/uuid"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AssistantMessage is one line of the chat transcript kept per itinerary.
// Sequence orders lines written within the same second.
type AssistantMessage struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	AccountID   uuid.UUID `gorm:"type:uuid"`
	Sequence    int64     `gorm:"index"`
	Role        string
	Content     string `gorm:"type:text"`
	Outcome     string
}
