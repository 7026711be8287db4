package db_models

import (
	"github.com/google/uuid"
)

const (
	TripStatusPlanning  = "planning"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
)

const DefaultCurrency = "VND"

type Trip struct {
	BaseModel
	OwnerID       uuid.UUID
	Title         string
	Description   string
	Departure     string
	DestinationID uuid.UUID
	DistanceKm    float64
	StartDate     int64
	EndDate       int64
	Difficulty    int // 1 (easy) .. 5 (hard)
	BudgetTotal   float64
	Status        string
	Currency      string

	Routes  []Route
	Members []TripMember
}

func IsValidTripStatus(s string) bool {
	switch s {
	case TripStatusPlanning, TripStatusOngoing, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// DifficultyLabel converts the stored 1-5 difficulty to the label the mobile
// clients historically displayed. Conversion happens only at the response
// boundary; the column is always an int.
func DifficultyLabel(d int) string {
	switch d {
	case 1:
		return "Easy"
	case 2:
		return "Relaxed"
	case 3:
		return "Moderate"
	case 4:
		return "Challenging"
	case 5:
		return "Hard"
	default:
		return "Unknown"
	}
}

type TripMember struct {
	BaseModel
	TripID    uuid.UUID `gorm:"uniqueIndex:idx_trip_account"`
	AccountID uuid.UUID `gorm:"uniqueIndex:idx_trip_account"`
}
