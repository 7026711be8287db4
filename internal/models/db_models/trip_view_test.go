package db_models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSpentAmount(t *testing.T) {
	assert.Equal(t, 0.0, CalculateSpentAmount(nil))
	assert.Equal(t, 0.0, CalculateSpentAmount([]Route{}))

	routes := []Route{
		{Costs: []Cost{{Amount: 150000}, {Amount: 50000}}},
		{Costs: []Cost{}},
		{Costs: []Cost{{Amount: 300000}}},
	}
	assert.Equal(t, 500000.0, CalculateSpentAmount(routes))
}

func TestMaxRouteIndex(t *testing.T) {
	assert.Equal(t, 0, MaxRouteIndex(nil))
	assert.Equal(t, 7, MaxRouteIndex([]Route{{Index: 3}, {Index: 7}, {Index: 1}}))
}

func TestBuildTripDetailResponseTotals(t *testing.T) {
	trip := &Trip{
		Title:       "Central coast loop",
		Status:      TripStatusPlanning,
		Difficulty:  3,
		Currency:    "VND",
		BudgetTotal: 2000000,
	}
	trip.ID = uuid.New()

	routes := []Route{
		{Index: 1, Costs: []Cost{{Amount: 120000}, {Amount: 30000}}},
		{Index: 2, Costs: []Cost{{Amount: 50000}}},
	}

	out := BuildTripDetailResponse(trip, routes, 2)

	assert.Equal(t, 200000.0, out.SpentAmount)
	assert.Equal(t, 150000.0, out.Routes[0].RouteTotal)
	assert.Equal(t, 50000.0, out.Routes[1].RouteTotal)
	assert.Equal(t, "Moderate", out.DifficultyLabel)
	assert.Equal(t, 2, out.MemberCount)
}
