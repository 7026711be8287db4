package response_models

type TripResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Status          string  `json:"status"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Departure       string  `json:"departure"`
	DistanceKm      float64 `json:"distance_km"`
	Difficulty      int     `json:"difficulty"`
	DifficultyLabel string  `json:"difficulty_label"`
	BudgetTotal     float64 `json:"budget_total"`
	SpentAmount     float64 `json:"spent_amount"`
	Currency        string  `json:"currency"`
	MemberCount     int     `json:"member_count"`
}
