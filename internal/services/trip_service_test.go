package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/wire_models"
	"wander/pkg/utils"
)

type fakeTripRepo struct {
	trips   map[string]*db_models.Trip
	members map[string]map[string]bool
	spent   map[uuid.UUID]float64
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		trips:   make(map[string]*db_models.Trip),
		members: make(map[string]map[string]bool),
		spent:   make(map[uuid.UUID]float64),
	}
}

func (f *fakeTripRepo) Create(ctx context.Context, trip *db_models.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID.String()] = trip
	return nil
}

func (f *fakeTripRepo) GetById(ctx context.Context, tripId string) (*db_models.Trip, error) {
	trip, ok := f.trips[tripId]
	if !ok {
		return nil, nil
	}
	return trip, nil
}

func (f *fakeTripRepo) ListByAccount(ctx context.Context, accountId string, page, pageSize int) ([]db_models.Trip, error) {
	var out []db_models.Trip
	for _, trip := range f.trips {
		if trip.OwnerID.String() == accountId {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) UpdateStatus(ctx context.Context, tripId string, status string) error {
	trip, ok := f.trips[tripId]
	if !ok {
		return errors.New("missing trip")
	}
	trip.Status = status
	return nil
}

func (f *fakeTripRepo) AddMember(ctx context.Context, member *db_models.TripMember) error {
	key := member.TripID.String()
	if f.members[key] == nil {
		f.members[key] = make(map[string]bool)
	}
	f.members[key][member.AccountID.String()] = true
	return nil
}

func (f *fakeTripRepo) IsMember(ctx context.Context, tripId, accountId string) (bool, error) {
	return f.members[tripId][accountId], nil
}

func (f *fakeTripRepo) CountMembers(ctx context.Context, tripId string) (int64, error) {
	return int64(len(f.members[tripId])), nil
}

func (f *fakeTripRepo) SpentAmounts(ctx context.Context, tripIds []uuid.UUID) (map[uuid.UUID]float64, error) {
	return f.spent, nil
}

type fakeRouteRepo struct {
	routes        []*db_models.Route
	failGetByTrip bool
	createCalls   int
}

func (f *fakeRouteRepo) Create(ctx context.Context, route *db_models.Route) error {
	f.createCalls++
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	f.routes = append(f.routes, route)
	return nil
}

func (f *fakeRouteRepo) CreateBatch(ctx context.Context, routes []db_models.Route) error {
	for i := range routes {
		route := routes[i]
		if err := f.Create(ctx, &route); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRouteRepo) GetById(ctx context.Context, routeId string) (*db_models.Route, error) {
	for _, route := range f.routes {
		if route.ID.String() == routeId {
			return route, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) GetByTripId(ctx context.Context, tripId string) ([]db_models.Route, error) {
	if f.failGetByTrip {
		return nil, errors.New("routes query failed")
	}
	var out []db_models.Route
	for _, route := range f.routes {
		if route.TripID.String() == tripId {
			out = append(out, *route)
		}
	}
	return out, nil
}

type fakeCostRepo struct {
	costs       map[string][]db_models.Cost
	failRoutes  map[string]bool
	createCalls int
}

func newFakeCostRepo() *fakeCostRepo {
	return &fakeCostRepo{
		costs:      make(map[string][]db_models.Cost),
		failRoutes: make(map[string]bool),
	}
}

func (f *fakeCostRepo) Create(ctx context.Context, cost *db_models.Cost) error {
	f.createCalls++
	if cost.ID == uuid.Nil {
		cost.ID = uuid.New()
	}
	key := cost.RouteID.String()
	f.costs[key] = append(f.costs[key], *cost)
	return nil
}

func (f *fakeCostRepo) GetByRouteId(ctx context.Context, routeId string) ([]db_models.Cost, error) {
	if f.failRoutes[routeId] {
		return nil, errors.New("costs query failed")
	}
	return append([]db_models.Cost{}, f.costs[routeId]...), nil
}

func (f *fakeCostRepo) DeleteById(ctx context.Context, costId string) (int64, error) {
	for routeId, list := range f.costs {
		for i, cost := range list {
			if cost.ID.String() == costId {
				f.costs[routeId] = append(list[:i], list[i+1:]...)
				return 1, nil
			}
		}
	}
	return 0, nil
}

type tripFixture struct {
	service   TripServiceInterface
	tripRepo  *fakeTripRepo
	routeRepo *fakeRouteRepo
	costRepo  *fakeCostRepo
	trip      *db_models.Trip
}

func newTripFixture(t *testing.T) *tripFixture {
	t.Helper()

	tripRepo := newFakeTripRepo()
	routeRepo := &fakeRouteRepo{}
	costRepo := newFakeCostRepo()

	trip := &db_models.Trip{
		OwnerID:     uuid.New(),
		Title:       "Sai Gon to Da Lat",
		Status:      db_models.TripStatusPlanning,
		Currency:    "VND",
		BudgetTotal: 5000000,
	}
	require.NoError(t, tripRepo.Create(context.Background(), trip))

	return &tripFixture{
		service:   NewTripService(tripRepo, routeRepo, costRepo),
		tripRepo:  tripRepo,
		routeRepo: routeRepo,
		costRepo:  costRepo,
		trip:      trip,
	}
}

func (f *tripFixture) addRoute(t *testing.T, index int, latStart, lngStart, latEnd, lngEnd float64) *db_models.Route {
	t.Helper()
	route := &db_models.Route{
		TripID:   f.trip.ID,
		Title:    "leg",
		Index:    index,
		LatStart: latStart,
		LngStart: lngStart,
		LatEnd:   latEnd,
		LngEnd:   lngEnd,
	}
	require.NoError(t, f.routeRepo.Create(context.Background(), route))
	return route
}

func TestGetTripDetailTripNotFound(t *testing.T) {
	f := newTripFixture(t)

	_, err := f.service.GetTripDetail(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTripDetailExcludesInvalidRoutes(t *testing.T) {
	f := newTripFixture(t)
	f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)
	// Start pair is the 0,0 placeholder even though the end pair is fine.
	f.addRoute(t, 2, 0, 0, 10.77, 106.70)

	detail, err := f.service.GetTripDetail(context.Background(), f.trip.ID.String())
	require.NoError(t, err)
	require.Len(t, detail.Routes, 1)
	assert.Equal(t, 1, detail.Routes[0].Index)
}

func TestGetTripDetailSortsRoutesByIndex(t *testing.T) {
	f := newTripFixture(t)
	f.addRoute(t, 3, 10.77, 106.70, 11.94, 108.44)
	f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)
	f.addRoute(t, 2, 10.77, 106.70, 11.94, 108.44)

	detail, err := f.service.GetTripDetail(context.Background(), f.trip.ID.String())
	require.NoError(t, err)

	indices := make([]int, 0, len(detail.Routes))
	for _, route := range detail.Routes {
		indices = append(indices, route.Index)
	}
	assert.Equal(t, []int{1, 2, 3}, indices)
}

func TestGetTripDetailRoutesFetchDegrades(t *testing.T) {
	f := newTripFixture(t)
	f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)
	f.routeRepo.failGetByTrip = true

	detail, err := f.service.GetTripDetail(context.Background(), f.trip.ID.String())
	require.NoError(t, err, "route-level failure must not fail the load")
	assert.Empty(t, detail.Routes)
	assert.Equal(t, 0.0, detail.SpentAmount)
}

func TestGetTripDetailCostFetchDegrades(t *testing.T) {
	f := newTripFixture(t)
	okRoute := f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)
	badRoute := f.addRoute(t, 2, 10.77, 106.70, 11.94, 108.44)

	f.costRepo.costs[okRoute.ID.String()] = []db_models.Cost{
		{RouteID: okRoute.ID, Title: "fuel", Amount: 300000},
	}
	f.costRepo.costs[badRoute.ID.String()] = []db_models.Cost{
		{RouteID: badRoute.ID, Title: "hotel", Amount: 900000},
	}
	f.costRepo.failRoutes[badRoute.ID.String()] = true

	detail, err := f.service.GetTripDetail(context.Background(), f.trip.ID.String())
	require.NoError(t, err)
	require.Len(t, detail.Routes, 2)

	assert.Equal(t, 300000.0, detail.SpentAmount, "spent reflects only the costs that loaded")
	assert.Empty(t, detail.Routes[1].Costs, "failed route degrades to an empty cost list")
}

func TestAddRouteAssignsNextIndex(t *testing.T) {
	f := newTripFixture(t)
	f.addRoute(t, 2, 10.77, 106.70, 11.94, 108.44)
	// Invalid routes are not part of the valid set, so their index is ignored.
	f.addRoute(t, 9, 0, 0, 0, 0)

	detail, err := f.service.AddRoute(context.Background(), f.trip.ID.String(), wire_models.RouteRecord{
		Title:    "Nha Trang stop",
		LatStart: 12.24, LngStart: 109.19,
		LatEnd: 11.94, LngEnd: 108.44,
	})
	require.NoError(t, err)
	require.Len(t, detail.Routes, 2)
	assert.Equal(t, 3, detail.Routes[1].Index)
}

func TestAddRouteFirstRouteGetsIndexOne(t *testing.T) {
	f := newTripFixture(t)

	detail, err := f.service.AddRoute(context.Background(), f.trip.ID.String(), wire_models.RouteRecord{
		Title:    "start",
		LatStart: 10.77, LngStart: 106.70,
		LatEnd: 11.94, LngEnd: 108.44,
	})
	require.NoError(t, err)
	require.Len(t, detail.Routes, 1)
	assert.Equal(t, 1, detail.Routes[0].Index)
}

func TestAddRouteRequiresTitle(t *testing.T) {
	f := newTripFixture(t)

	_, err := f.service.AddRoute(context.Background(), f.trip.ID.String(), wire_models.RouteRecord{
		LatStart: 10.77, LngStart: 106.70, LatEnd: 11.94, LngEnd: 108.44,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, f.routeRepo.createCalls)
}

func TestSpendConsistencyAcrossMutations(t *testing.T) {
	f := newTripFixture(t)
	route := f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)
	tripId := f.trip.ID.String()
	routeId := route.ID.String()

	detail, err := f.service.GetTripDetail(context.Background(), tripId)
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.SpentAmount)

	detail, err = f.service.AddCost(context.Background(), tripId, routeId, request_models.AddCostRequest{
		Title: "bus ticket", Amount: 150000,
	})
	require.NoError(t, err)
	assert.Equal(t, 150000.0, detail.SpentAmount)

	detail, err = f.service.AddCost(context.Background(), tripId, routeId, request_models.AddCostRequest{
		Title: "dinner", Amount: 50000, Category: "food",
	})
	require.NoError(t, err)
	assert.Equal(t, 200000.0, detail.SpentAmount)

	firstCostId := detail.Routes[0].Costs[0].ID.String()
	detail, err = f.service.DeleteCost(context.Background(), tripId, routeId, firstCostId)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, detail.SpentAmount)
}

func TestAddCostRejectsNonPositiveAmount(t *testing.T) {
	f := newTripFixture(t)
	route := f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)
	tripId := f.trip.ID.String()

	for _, amount := range []float64{0, -10} {
		_, err := f.service.AddCost(context.Background(), tripId, route.ID.String(), request_models.AddCostRequest{
			Title: "suspicious", Amount: amount,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	}
	assert.Zero(t, f.costRepo.createCalls, "rejected drafts never reach the repository")

	detail, err := f.service.GetTripDetail(context.Background(), tripId)
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.SpentAmount)
}

func TestAddCostRejectsEmptyTitle(t *testing.T) {
	f := newTripFixture(t)
	route := f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)

	_, err := f.service.AddCost(context.Background(), f.trip.ID.String(), route.ID.String(), request_models.AddCostRequest{
		Amount: 10000,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAddCostUnknownRoute(t *testing.T) {
	f := newTripFixture(t)

	_, err := f.service.AddCost(context.Background(), f.trip.ID.String(), uuid.New().String(), request_models.AddCostRequest{
		Title: "taxi", Amount: 10000,
	})
	assert.ErrorIs(t, err, utils.ErrRouteNotFound)
}

func TestAddCostAppliesTripCurrencyDefault(t *testing.T) {
	f := newTripFixture(t)
	route := f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)

	detail, err := f.service.AddCost(context.Background(), f.trip.ID.String(), route.ID.String(), request_models.AddCostRequest{
		Title: "taxi", Amount: 80000,
	})
	require.NoError(t, err)

	cost := detail.Routes[0].Costs[0]
	assert.Equal(t, "VND", cost.Currency)
	assert.Equal(t, db_models.CostCategoryOther, cost.Category)
	assert.Equal(t, "taxi", cost.Description)
}

func TestDeleteCostIsIdempotent(t *testing.T) {
	f := newTripFixture(t)
	route := f.addRoute(t, 1, 10.77, 106.70, 11.94, 108.44)
	tripId := f.trip.ID.String()
	routeId := route.ID.String()

	detail, err := f.service.AddCost(context.Background(), tripId, routeId, request_models.AddCostRequest{
		Title: "ticket", Amount: 70000,
	})
	require.NoError(t, err)
	costId := detail.Routes[0].Costs[0].ID.String()

	detail, err = f.service.DeleteCost(context.Background(), tripId, routeId, costId)
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.SpentAmount)

	// A retried delete of the same id matches nothing and is still a success.
	detail, err = f.service.DeleteCost(context.Background(), tripId, routeId, costId)
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.SpentAmount)
}

func TestImportRoutesNormalizesBothConventions(t *testing.T) {
	f := newTripFixture(t)

	detail, err := f.service.ImportRoutes(context.Background(), f.trip.ID.String(), []wire_models.RouteRecord{
		{Title: "camel", Index: 1.0, LatStart: 10.77, LngStart: 106.70, LatEnd: 11.94, LngEnd: 108.44},
		{Title: "snake", Index: 2.0, LatStartSnake: 16.05, LngStartSnake: 108.20, LatEndSnake: 17.47, LngEndSnake: 106.60},
	})
	require.NoError(t, err)
	require.Len(t, detail.Routes, 2)
	assert.Equal(t, 10.77, detail.Routes[0].LatStart)
	assert.Equal(t, 16.05, detail.Routes[1].LatStart)
}

func TestUpdateTripStatusOwnerOnly(t *testing.T) {
	f := newTripFixture(t)

	err := f.service.UpdateTripStatus(context.Background(), f.trip.ID.String(), uuid.New().String(), db_models.TripStatusOngoing)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = f.service.UpdateTripStatus(context.Background(), f.trip.ID.String(), f.trip.OwnerID.String(), db_models.TripStatusOngoing)
	require.NoError(t, err)
	assert.Equal(t, db_models.TripStatusOngoing, f.tripRepo.trips[f.trip.ID.String()].Status)
}

func TestJoinTripTwiceConflicts(t *testing.T) {
	f := newTripFixture(t)
	accountId := uuid.New().String()

	require.NoError(t, f.service.JoinTrip(context.Background(), f.trip.ID.String(), accountId))
	err := f.service.JoinTrip(context.Background(), f.trip.ID.String(), accountId)
	assert.ErrorIs(t, err, utils.ErrAlreadyMember)
}
