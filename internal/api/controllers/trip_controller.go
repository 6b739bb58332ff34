package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

type TripController struct {
	tripService    services.TripPlannerServiceInterface
	catalogService services.CatalogServiceInterface
}

func NewTripController(tripService services.TripPlannerServiceInterface, catalogService services.CatalogServiceInterface) *TripController {
	return &TripController{
		tripService:    tripService,
		catalogService: catalogService,
	}
}

// Steps godoc
// @Summary Wizard steps in order
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripStepResponse
// @Router /trips/steps [get]
func (t *TripController) Steps(c *gin.Context) {
	utils.RespondSuccess(c, t.tripService.Steps(), "Steps fetched successfully")
}

// Options godoc
// @Summary Choices offered by the wizard
// @Tags Trips
// @Produce json
// @Success 200 {object} response_models.TripOptionsResponse
// @Router /trips/options [get]
func (t *TripController) Options(c *gin.Context) {
	utils.RespondSuccess(c, t.tripService.Options(), "Options fetched successfully")
}

// Validate godoc
// @Summary Check whether the wizard may leave a step
// @Tags Trips
// @Accept json
// @Produce json
// @Param step query int true "Step index"
// @Param request body request_models.TripDraft true "Draft so far"
// @Success 200 {object} response_models.StepValidationResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/validate [post]
func (t *TripController) Validate(c *gin.Context) {
	step, err := strconv.Atoi(c.Query("step"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid step")
		return
	}

	var draft request_models.TripDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := t.tripService.Validate(step, draft)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Step validated")
}

// Compose godoc
// @Summary Build a day by day plan from the wizard picks
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripDraft true "Completed draft"
// @Success 200 {object} response_models.ComposedTripResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/compose [post]
func (t *TripController) Compose(c *gin.Context) {
	var draft request_models.TripDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := t.tripService.Compose(draft)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Trip composed successfully")
}

// Save godoc
// @Summary Compose and save a trip as an itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripDraft true "Completed draft"
// @Success 201 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /trips/save [post]
func (t *TripController) Save(c *gin.Context) {
	var draft request_models.TripDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	saved, err := t.tripService.Save(c.Request.Context(), c.GetString("user_id"), draft)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, saved, "Trip saved successfully")
}

func bindCatalogQuery(c *gin.Context) (request_models.CatalogQuery, bool) {
	var q request_models.CatalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query")
		return q, false
	}
	q.Constraints = services.SplitConstraints(q.Constraints)
	return q, true
}

// Hotels godoc
// @Summary Hotels for a destination, ordered for the budget
// @Tags Catalog
// @Produce json
// @Param destination query string false "Destination"
// @Param budget query string false "Budget tier"
// @Success 200 {array} catalog.Hotel
// @Router /catalog/hotels [get]
func (t *TripController) Hotels(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, t.catalogService.Hotels(q), "Hotels fetched successfully")
}

// Places godoc
// @Summary Places for a destination, ranked for the traveller
// @Tags Catalog
// @Produce json
// @Param destination query string false "Destination"
// @Param style query string false "Travel style"
// @Param constraints query string false "Comma separated constraint ids"
// @Success 200 {array} catalog.Place
// @Router /catalog/places [get]
func (t *TripController) Places(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, t.catalogService.Places(q), "Places fetched successfully")
}

// Restaurants godoc
// @Summary Restaurants for a destination, filtered by diet
// @Tags Catalog
// @Produce json
// @Param destination query string false "Destination"
// @Param style query string false "Travel style"
// @Param constraints query string false "Comma separated constraint ids"
// @Success 200 {array} catalog.Restaurant
// @Router /catalog/restaurants [get]
func (t *TripController) Restaurants(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, t.catalogService.Restaurants(q), "Restaurants fetched successfully")
}
