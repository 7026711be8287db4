package db_models

import (
	"github.com/google/uuid"

	"wander/internal/models/response_models"
	"wander/pkg/utils"
)

// CalculateSpentAmount recomputes the trip's spent total from the full
// route/cost tree. It is invoked on every assembly and after every mutation;
// a full recompute keeps the derived value from drifting, nothing patches it
// incrementally.
func CalculateSpentAmount(routes []Route) float64 {
	total := 0.0
	for _, route := range routes {
		for _, cost := range route.Costs {
			total += cost.Amount
		}
	}
	return total
}

// MaxRouteIndex returns the highest ordering index among routes, 0 if empty.
func MaxRouteIndex(routes []Route) int {
	max := 0
	for _, route := range routes {
		if route.Index > max {
			max = route.Index
		}
	}
	return max
}

// BuildTripDetailResponse maps an assembled trip tree onto the FE payload.
// Routes are expected to be pre-filtered and pre-sorted by the trip service.
func BuildTripDetailResponse(trip *Trip, routes []Route, memberCount int) *response_models.TripDetailResponse {
	routeViews := make([]response_models.RouteResponse, 0, len(routes))
	for _, route := range routes {
		costs := make([]response_models.CostResponse, 0, len(route.Costs))
		routeTotal := 0.0
		for _, cost := range route.Costs {
			routeTotal += cost.Amount
			costs = append(costs, response_models.CostResponse{
				ID:          cost.ID,
				Title:       cost.Title,
				Description: cost.Description,
				Amount:      cost.Amount,
				Category:    cost.Category,
				Currency:    cost.Currency,
			})
		}

		routeViews = append(routeViews, response_models.RouteResponse{
			ID:          route.ID,
			Title:       route.Title,
			Description: route.Description,
			Index:       route.Index,
			LatStart:    route.LatStart,
			LngStart:    route.LngStart,
			LatEnd:      route.LatEnd,
			LngEnd:      route.LngEnd,
			Details:     append([]string{}, route.Details...),
			Costs:       costs,
			RouteTotal:  routeTotal,
		})
	}

	destinationID := ""
	if trip.DestinationID != uuid.Nil {
		destinationID = trip.DestinationID.String()
	}

	return &response_models.TripDetailResponse{
		ID:              trip.ID,
		Title:           trip.Title,
		Description:     trip.Description,
		Departure:       trip.Departure,
		DestinationID:   destinationID,
		DistanceKm:      trip.DistanceKm,
		StartDate:       utils.FormatRFC3339VN(utils.FromUnixSecondsVN(trip.StartDate)),
		EndDate:         utils.FormatRFC3339VN(utils.FromUnixSecondsVN(trip.EndDate)),
		Difficulty:      trip.Difficulty,
		DifficultyLabel: DifficultyLabel(trip.Difficulty),
		Status:          trip.Status,
		BudgetTotal:     trip.BudgetTotal,
		SpentAmount:     CalculateSpentAmount(routes),
		Currency:        trip.Currency,
		MemberCount:     memberCount,
		Routes:          routeViews,
	}
}
