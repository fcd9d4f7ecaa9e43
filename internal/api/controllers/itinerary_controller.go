package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyagemind/internal/models/request_models"
	"voyagemind/internal/services"
	"voyagemind/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItineraryHandler handles POST /api/generate-itinerary. A budget
// below the computed floor still answers 200: the rejection rides inside
// data.error so existing clients keep working.
func (ic *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !req.Validate() {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: destination, startDate, endDate")
		return
	}

	log.Printf("Generating itinerary for %s...", req.Destination.Name)

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary)
}
