package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/internal/services"
	"wander/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

// SearchDestinations godoc
// @Summary Search destinations
// @Tags Destination
// @Produce json
// @Param name query string false "Name filter"
// @Param region query string false "Region filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.DestinationResponse
// @Router /destinations [get]
func (d *DestinationsController) SearchDestinations(c *gin.Context) {
	page, pageSize, ok := parsePaging(c, 10)
	if !ok {
		return
	}

	destinations, err := d.destinationService.SearchDestinations(
		c.Request.Context(), c.Query("name"), c.Query("region"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// GetDestinationById godoc
// @Summary Get a destination by ID
// @Tags Destination
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} response_models.DestinationResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{destinationId} [get]
func (d *DestinationsController) GetDestinationById(c *gin.Context) {
	destinationId := c.Param("destinationId")
	if destinationId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	destination, err := d.destinationService.GetDestinationById(c.Request.Context(), destinationId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination fetched successfully")
}
