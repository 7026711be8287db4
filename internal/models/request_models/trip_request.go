package request_models

import "wander/internal/models/wire_models"

type CreateTripRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Departure     string  `json:"departure"`
	DestinationID string  `json:"destination_id" binding:"omitempty,uuid4"`
	DistanceKm    float64 `json:"distance_km"`
	// RFC3339 (e.g. "2025-10-10T09:00:00+07:00")
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date"`
	Difficulty  int     `json:"difficulty" binding:"omitempty,min=1,max=5"`
	BudgetTotal float64 `json:"budget_total" binding:"omitempty,gte=0"`
	Currency    string  `json:"currency"`
}

type UpdateTripStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planning ongoing completed cancelled"`
}

// ImportRoutesRequest carries legacy route records synced from older clients.
// Records may use either coordinate naming convention; the wire normalizer is
// the compatibility boundary.
type ImportRoutesRequest struct {
	Routes []wire_models.RouteRecord `json:"routes" binding:"required"`
}

type AddCostRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category" binding:"omitempty,oneof=transport accommodation food entertainment shopping other"`
	Currency    string  `json:"currency"`
}
