package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"wanderly/internal/itinerary"
)

// Itinerary is one saved trip. Days are stored as a single jsonb document
// since the assistant always rewrites them as a whole snapshot.
type Itinerary struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Destination string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      string
	TravelType  string
	Style       string
	Constraints pq.StringArray `gorm:"type:text[]"`
	HotelID     *int

	Days          itinerary.Itinerary `gorm:"type:jsonb;serializer:json"`
	GeneratedText string              `gorm:"type:text"`

	Messages []AssistantMessage `gorm:"foreignKey:ItineraryID"`
}
