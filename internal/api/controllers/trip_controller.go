package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GetProfile handles GET /api/user/profile.
func (t *TripController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := t.tripService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListTrips handles GET /api/user/trips.
func (t *TripController) ListTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

// SaveTrip handles POST /api/user/trips.
func (t *TripController) SaveTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.tripService.SaveTrip(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip saved successfully"})
}
