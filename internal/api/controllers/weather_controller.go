package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wander/internal/services"
	"wander/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetCurrentWeather godoc
// @Summary Get current weather for a coordinate
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} response_models.WeatherResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /weather [get]
func (w *WeatherController) GetCurrentWeather(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	weather, err := w.weatherService.GetCurrentWeather(c.Request.Context(), lat, lon)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, weather, "Weather fetched successfully")
}
