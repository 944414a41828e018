package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateItinerary handles POST /trip/itinerary. The raw reply text is always
// returned alongside the parsed plan so the client can fall back to plain
// display when the structured tree came out empty.
func (ic *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tree, err := ic.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"itinerary": tree.RawText,
		"plan":      tree,
	})
}
