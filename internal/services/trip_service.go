package services

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/models/wire_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerId string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error)
	ListTripsByAccount(ctx context.Context, accountId string, page, pageSize int) ([]response_models.TripResponse, error)
	GetTripDetail(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error)
	UpdateTripStatus(ctx context.Context, tripId, accountId, status string) error
	JoinTrip(ctx context.Context, tripId, accountId string) error
	AddRoute(ctx context.Context, tripId string, record wire_models.RouteRecord) (*response_models.TripDetailResponse, error)
	ImportRoutes(ctx context.Context, tripId string, records []wire_models.RouteRecord) (*response_models.TripDetailResponse, error)
	AddCost(ctx context.Context, tripId, routeId string, req request_models.AddCostRequest) (*response_models.TripDetailResponse, error)
	DeleteCost(ctx context.Context, tripId, routeId, costId string) (*response_models.TripDetailResponse, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	routeRepo repositories.RouteRepository
	costRepo  repositories.CostRepository
}

func NewTripService(
	tripRepo repositories.TripRepository,
	routeRepo repositories.RouteRepository,
	costRepo repositories.CostRepository,
) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		routeRepo: routeRepo,
		costRepo:  costRepo,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, ownerId string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error) {
	ownerUUID, err := uuid.Parse(ownerId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var endDate int64
	if req.EndDate != "" {
		end, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil || end.Before(startDate) {
			return nil, utils.ErrInvalidInput
		}
		endDate = end.Unix()
	}

	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}

	currency := req.Currency
	if currency == "" {
		currency = db_models.DefaultCurrency
	}

	trip := &db_models.Trip{
		OwnerID:     ownerUUID,
		Title:       req.Title,
		Description: req.Description,
		Departure:   req.Departure,
		DistanceKm:  req.DistanceKm,
		StartDate:   startDate.Unix(),
		EndDate:     endDate,
		Difficulty:  difficulty,
		BudgetTotal: req.BudgetTotal,
		Status:      db_models.TripStatusPlanning,
		Currency:    currency,
	}
	if req.DestinationID != "" {
		destUUID, err := uuid.Parse(req.DestinationID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.DestinationID = destUUID
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// The owner is the first member.
	if err := s.tripRepo.AddMember(ctx, &db_models.TripMember{TripID: trip.ID, AccountID: ownerUUID}); err != nil {
		log.Printf("add owner membership for trip %s failed: %v", trip.ID, err)
	}

	return s.assembleDetail(ctx, trip)
}

func (s *TripService) ListTripsByAccount(ctx context.Context, accountId string, page, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByAccount(ctx, accountId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(trips))
	for _, trip := range trips {
		ids = append(ids, trip.ID)
	}

	spent, err := s.tripRepo.SpentAmounts(ctx, ids)
	if err != nil {
		log.Printf("spent amounts for account %s degraded: %v", accountId, err)
		spent = map[uuid.UUID]float64{}
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		memberCount, err := s.tripRepo.CountMembers(ctx, trip.ID.String())
		if err != nil {
			log.Printf("member count for trip %s degraded: %v", trip.ID, err)
		}

		out = append(out, response_models.TripResponse{
			ID:              trip.ID.String(),
			Title:           trip.Title,
			Status:          trip.Status,
			StartDate:       utils.FormatRFC3339VN(utils.FromUnixSecondsVN(trip.StartDate)),
			EndDate:         utils.FormatRFC3339VN(utils.FromUnixSecondsVN(trip.EndDate)),
			Departure:       trip.Departure,
			DistanceKm:      trip.DistanceKm,
			Difficulty:      trip.Difficulty,
			DifficultyLabel: db_models.DifficultyLabel(trip.Difficulty),
			BudgetTotal:     trip.BudgetTotal,
			SpentAmount:     spent[trip.ID],
			Currency:        trip.Currency,
			MemberCount:     int(memberCount),
		})
	}
	return out, nil
}

// GetTripDetail assembles the full trip tree. A failed trip fetch is fatal;
// a failed routes or per-route costs fetch degrades to an empty list so the
// rest of the view still renders.
func (s *TripService) GetTripDetail(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return s.assembleDetail(ctx, trip)
}

func (s *TripService) assembleDetail(ctx context.Context, trip *db_models.Trip) (*response_models.TripDetailResponse, error) {
	routes := s.loadValidRoutes(ctx, trip.ID.String())

	memberCount, err := s.tripRepo.CountMembers(ctx, trip.ID.String())
	if err != nil {
		log.Printf("member count for trip %s degraded: %v", trip.ID, err)
	}

	return db_models.BuildTripDetailResponse(trip, routes, int(memberCount)), nil
}

// loadValidRoutes fetches the trip's routes, drops the ones with unusable
// coordinates, attaches each route's costs (fetched concurrently, degrading
// to empty on failure) and sorts by ascending index.
func (s *TripService) loadValidRoutes(ctx context.Context, tripId string) []db_models.Route {
	all, err := s.routeRepo.GetByTripId(ctx, tripId)
	if err != nil {
		log.Printf("routes for trip %s degraded to empty: %v", tripId, err)
		return []db_models.Route{}
	}

	routes := make([]db_models.Route, 0, len(all))
	for _, route := range all {
		if route.HasValidCoordinates() {
			routes = append(routes, route)
		}
	}

	var wg sync.WaitGroup
	for i := range routes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			costs, err := s.costRepo.GetByRouteId(ctx, routes[i].ID.String())
			if err != nil {
				log.Printf("costs for route %s degraded to empty: %v", routes[i].ID, err)
				routes[i].Costs = []db_models.Cost{}
				return
			}
			routes[i].Costs = costs
		}(i)
	}
	wg.Wait()

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Index < routes[j].Index
	})

	return routes
}

func (s *TripService) UpdateTripStatus(ctx context.Context, tripId, accountId, status string) error {
	if !db_models.IsValidTripStatus(status) {
		return utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.OwnerID.String() != accountId {
		return utils.ErrForbidden
	}

	if err := s.tripRepo.UpdateStatus(ctx, tripId, status); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) JoinTrip(ctx context.Context, tripId, accountId string) error {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	member, err := s.tripRepo.IsMember(ctx, tripId, accountId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member {
		return utils.ErrAlreadyMember
	}

	if err := s.tripRepo.AddMember(ctx, &db_models.TripMember{TripID: trip.ID, AccountID: accountUUID}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// AddRoute appends a new route to the trip. The ordering index is assigned
// server-side as max(index of the currently valid routes)+1, so indices grow
// but are not necessarily contiguous. Nothing is written on validation
// failure.
func (s *TripService) AddRoute(ctx context.Context, tripId string, record wire_models.RouteRecord) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	route := record.Normalize()
	if route.Title == "" {
		return nil, utils.ErrInvalidInput
	}

	current := s.loadValidRoutes(ctx, tripId)
	route.TripID = trip.ID
	route.Index = db_models.MaxRouteIndex(current) + 1

	if err := s.routeRepo.Create(ctx, &route); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.assembleDetail(ctx, trip)
}

// ImportRoutes ingests legacy route records in bulk, e.g. from an older
// client syncing offline data. Records keep the index they carry; the
// normalizers absorb both coordinate naming conventions.
func (s *TripService) ImportRoutes(ctx context.Context, tripId string, records []wire_models.RouteRecord) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	routes := make([]db_models.Route, 0, len(records))
	for _, record := range records {
		route := record.Normalize()
		route.TripID = trip.ID
		routes = append(routes, route)
	}

	if err := s.routeRepo.CreateBatch(ctx, routes); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.assembleDetail(ctx, trip)
}

// AddCost attaches an expense line to a route. Drafts with a non-positive
// amount or an empty title are rejected before any repository access.
func (s *TripService) AddCost(ctx context.Context, tripId, routeId string, req request_models.AddCostRequest) (*response_models.TripDetailResponse, error) {
	if req.Amount <= 0 || req.Title == "" {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	route, err := s.routeRepo.GetById(ctx, routeId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if route == nil || route.TripID != trip.ID {
		return nil, utils.ErrRouteNotFound
	}

	record := wire_models.CostRecord{
		Title:       req.Title,
		Description: req.Description,
		Amount:      &req.Amount,
		Category:    req.Category,
		Currency:    req.Currency,
	}
	cost := record.Normalize(trip.Currency)
	cost.RouteID = route.ID

	if err := s.costRepo.Create(ctx, &cost); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.assembleDetail(ctx, trip)
}

// DeleteCost removes an expense line. A delete that matches no row is
// treated as already satisfied, so retries are no-ops rather than errors.
func (s *TripService) DeleteCost(ctx context.Context, tripId, routeId, costId string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	route, err := s.routeRepo.GetById(ctx, routeId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if route == nil || route.TripID != trip.ID {
		return nil, utils.ErrRouteNotFound
	}

	rows, err := s.costRepo.DeleteById(ctx, costId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rows == 0 {
		log.Printf("delete cost %s on route %s matched no rows, treating as done", costId, routeId)
	}

	return s.assembleDetail(ctx, trip)
}
