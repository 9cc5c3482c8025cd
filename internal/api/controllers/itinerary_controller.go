package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// ParseItineraryHandler godoc
// @Summary Parse a raw model response into an itinerary
// @Description Extracts, repairs and normalizes the itinerary contained in a language-model response
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ParseItineraryRequest true "Raw response and trip start date"
// @Success 200 {object} response_models.ParseItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /itineraries/parse [post]
func (ic *ItineraryController) ParseItineraryHandler(c *gin.Context) {
	var req request_models.ParseItineraryRequest
	if !ic.bind(c, &req, "raw_response and start_date are required") {
		return
	}

	resp, err := ic.itineraryService.ParseItinerary(c.Request.Context(), req.RawResponse, req.StartDate)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary parsed successfully")
}

// ValidateItineraryHandler godoc
// @Summary Validate an itinerary
// @Description Reports every structural problem of an itinerary document
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ValidateItineraryRequest true "Itinerary document"
// @Success 200 {object} itinerary.ValidationResult
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/validate [post]
func (ic *ItineraryController) ValidateItineraryHandler(c *gin.Context) {
	var req request_models.ValidateItineraryRequest
	if !ic.bind(c, &req, "Invalid request format") {
		return
	}

	result, err := ic.itineraryService.ValidateItinerary(c.Request.Context(), req.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary validated")
}

// NormalizeItineraryHandler godoc
// @Summary Normalize an itinerary
// @Description Renumbers days, re-dates them from start_date and fills every activity field
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.NormalizeItineraryRequest true "Itinerary document and trip start date"
// @Success 200 {object} response_models.NormalizeItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /itineraries/normalize [post]
func (ic *ItineraryController) NormalizeItineraryHandler(c *gin.Context) {
	var req request_models.NormalizeItineraryRequest
	if !ic.bind(c, &req, "start_date is required") {
		return
	}

	resp, err := ic.itineraryService.NormalizeItinerary(c.Request.Context(), req.Itinerary, req.StartDate)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary normalized")
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response_models.HealthResponse
// @Router /healthz [get]
func (ic *ItineraryController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{Status: "ok"}, "")
}

// bind decodes the JSON body and writes the error response itself on failure.
func (ic *ItineraryController) bind(c *gin.Context, req any, message string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.HandleServiceError(c, ic.logger, utils.ErrPayloadTooLarge)
		return false
	}

	ic.logger.Debug("rejected request body", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
	utils.RespondError(c, http.StatusBadRequest, message)
	return false
}
