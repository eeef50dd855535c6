package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	Name            string    `gorm:"not null"`
	Destination     string
	CurrentLocation string
	StartDate       time.Time
	EndDate         time.Time

	BudgetMin      float64
	BudgetMax      float64
	BudgetCurrency string

	Interests pq.StringArray `gorm:"type:text[]"`

	// Serialized day-by-day plan plus transport recommendation, stored as
	// produced by the itinerary pipeline.
	Itinerary               string `gorm:"type:jsonb"`
	TransportRecommendation string `gorm:"type:jsonb"`
}
