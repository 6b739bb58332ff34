package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderly/internal/models/request_models"
	"wanderly/internal/services"
	"wanderly/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Interpret godoc
// @Summary Apply one instruction to an itinerary snapshot
// @Description Stateless. The reply carries the resulting days, changed or not.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.InterpretRequest true "Days and instruction"
// @Success 200 {object} itinerary.Result
// @Failure 400 {object} utils.APIResponse
// @Router /assistant/interpret [post]
func (a *AssistantController) Interpret(c *gin.Context) {
	var req request_models.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Instruction is required")
		return
	}

	result := a.assistantService.Interpret(req.Days, req.Instruction)
	utils.RespondSuccess(c, result, result.Message)
}

// Command godoc
// @Summary Apply one instruction to a saved itinerary
// @Tags Assistant
// @Accept json
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param request body request_models.AssistantCommandRequest true "Instruction"
// @Success 200 {object} response_models.AssistantTurnResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/assistant [post]
func (a *AssistantController) Command(c *gin.Context) {
	var req request_models.AssistantCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Instruction is required")
		return
	}

	turn, err := a.assistantService.ApplyToItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Instruction)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, turn, turn.Message)
}

// Transcript godoc
// @Summary Assistant transcript of a saved itinerary
// @Tags Assistant
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {array} response_models.AssistantMessageResponse
// @Security BearerAuth
// @Router /itineraries/{id}/assistant [get]
func (a *AssistantController) Transcript(c *gin.Context) {
	messages, err := a.assistantService.Transcript(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Transcript fetched successfully")
}
