package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetWeather handles GET /weather/:city.
func (w *WeatherController) GetWeather(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondDetail(c, http.StatusBadRequest, "City name is required")
		return
	}

	report, err := w.weatherService.GetCurrent(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
