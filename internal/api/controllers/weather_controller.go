package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voyagemind/internal/services"
	"voyagemind/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetWeatherHandler handles GET /api/weather?location=&dates=start,end.
// Upstream failure never surfaces as a non-200: the service degrades to a
// placeholder marked mock.
func (wc *WeatherController) GetWeatherHandler(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing required parameter: location")
		return
	}

	var startDate, endDate string
	if dates := c.Query("dates"); dates != "" {
		parts := strings.SplitN(dates, ",", 2)
		startDate = parts[0]
		endDate = startDate
		if len(parts) == 2 && parts[1] != "" {
			endDate = parts[1]
		}
	}

	forecast := wc.weatherService.GetForecast(c.Request.Context(), location, startDate, endDate)
	utils.RespondSuccess(c, forecast)
}
