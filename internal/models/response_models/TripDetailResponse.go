package response_models

import "github.com/google/uuid"

// Top-level payload returned to FE for the trip detail view. Routes are the
// geometrically valid ones only, sorted ascending by index, and SpentAmount
// is recomputed from the cost tree on every assembly.
type TripDetailResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Departure       string    `json:"departure"`
	DestinationID   string    `json:"destination_id,omitempty"`
	DistanceKm      float64   `json:"distance_km"`
	StartDate       string    `json:"start_date"` // RFC3339
	EndDate         string    `json:"end_date"`   // RFC3339
	Difficulty      int       `json:"difficulty"`
	DifficultyLabel string    `json:"difficulty_label"`
	Status          string    `json:"status"`
	BudgetTotal     float64   `json:"budget_total"`
	SpentAmount     float64   `json:"spent_amount"`
	Currency        string    `json:"currency"`
	MemberCount     int       `json:"member_count"`

	Routes []RouteResponse `json:"routes"`
}

type RouteResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Index       int       `json:"index"`
	LatStart    float64   `json:"lat_start"`
	LngStart    float64   `json:"lng_start"`
	LatEnd      float64   `json:"lat_end"`
	LngEnd      float64   `json:"lng_end"`
	Details     []string  `json:"details"`

	Costs      []CostResponse `json:"costs"`
	RouteTotal float64        `json:"route_total"`
}

type CostResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Currency    string    `json:"currency"`
}
