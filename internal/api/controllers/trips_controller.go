package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/models/wire_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a new trip owned by the authenticated account
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripsController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and start date are required")
		return
	}

	ownerId := c.GetString("user_id")

	trip, err := t.tripService.CreateTrip(c.Request.Context(), ownerId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

// ListMyTrips godoc
// @Summary List trips of the authenticated account
// @Tags Trip
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripsController) ListMyTrips(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, 10)
	if !ok {
		return
	}

	accountId := c.GetString("user_id")

	trips, err := t.tripService.ListTripsByAccount(c.Request.Context(), accountId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTripDetail godoc
// @Summary Get trip detail by ID
// @Description Fetch the trip with its routes, costs and spend totals
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripsController) GetTripDetail(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripDetail(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip detail fetched successfully")
}

// UpdateTripStatus godoc
// @Summary Update trip status
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/status [patch]
func (t *TripsController) UpdateTripStatus(c *gin.Context) {
	tripId := c.Param("tripId")

	var req request_models.UpdateTripStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Status must be one of planning, ongoing, completed, cancelled")
		return
	}

	accountId := c.GetString("user_id")

	if err := t.tripService.UpdateTripStatus(c.Request.Context(), tripId, accountId, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip status updated successfully")
}

// JoinTrip godoc
// @Summary Join a trip as a member
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/join [post]
func (t *TripsController) JoinTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	accountId := c.GetString("user_id")

	if err := t.tripService.JoinTrip(c.Request.Context(), tripId, accountId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Joined trip successfully")
}

// AddRoute godoc
// @Summary Add a route stop to a trip
// @Description Accepts both camelCase and snake_case coordinate fields
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body wire_models.RouteRecord true "Route payload"
// @Success 200 {object} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips/{tripId}/routes [post]
func (t *TripsController) AddRoute(c *gin.Context) {
	tripId := c.Param("tripId")

	var record wire_models.RouteRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid route payload")
		return
	}

	trip, err := t.tripService.AddRoute(c.Request.Context(), tripId, record)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Route added successfully")
}

// ImportRoutes godoc
// @Summary Bulk import legacy route records into a trip
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ImportRoutesRequest true "Route records"
// @Success 200 {object} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips/{tripId}/routes/import [post]
func (t *TripsController) ImportRoutes(c *gin.Context) {
	tripId := c.Param("tripId")

	var req request_models.ImportRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Routes are required")
		return
	}

	trip, err := t.tripService.ImportRoutes(c.Request.Context(), tripId, req.Routes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Routes imported successfully")
}

// AddCost godoc
// @Summary Add a cost entry to a route
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param routeId path string true "Route ID"
// @Param request body request_models.AddCostRequest true "Cost payload"
// @Success 200 {object} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips/{tripId}/routes/{routeId}/costs [post]
func (t *TripsController) AddCost(c *gin.Context) {
	tripId := c.Param("tripId")
	routeId := c.Param("routeId")

	var req request_models.AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid cost payload")
		return
	}

	trip, err := t.tripService.AddCost(c.Request.Context(), tripId, routeId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Cost added successfully")
}

// DeleteCost godoc
// @Summary Delete a cost entry
// @Description Deleting an already removed cost still succeeds
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param routeId path string true "Route ID"
// @Param costId path string true "Cost ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips/{tripId}/routes/{routeId}/costs/{costId} [delete]
func (t *TripsController) DeleteCost(c *gin.Context) {
	tripId := c.Param("tripId")
	routeId := c.Param("routeId")
	costId := c.Param("costId")

	trip, err := t.tripService.DeleteCost(c.Request.Context(), tripId, routeId, costId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Cost deleted successfully")
}

func parsePaging(c *gin.Context, defaultSize int) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", strconv.Itoa(defaultSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}
