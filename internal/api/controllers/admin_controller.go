package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderly/internal/infra"
	"wanderly/internal/models/response_models"
	"wanderly/pkg/utils"
)

// JanitorRunner is the part of infra.Janitor the admin endpoints need.
type JanitorRunner interface {
	Run(ctx context.Context) infra.SweepReport
}

type AdminController struct {
	janitor JanitorRunner
}

func NewAdminController(janitor JanitorRunner) *AdminController {
	return &AdminController{
		janitor: janitor,
	}
}

// RunJanitor godoc
// @Summary Run the transcript and cache janitor now
// @Description Purges transcripts past retention and sweeps expired generation cache entries. Admin only.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response_models.JanitorRunResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /admin/janitor/run [post]
func (a *AdminController) RunJanitor(c *gin.Context) {
	report := a.janitor.Run(c.Request.Context())
	res := response_models.JanitorRunResponse{
		PurgedMessages: report.PurgedMessages,
		SweptEntries:   report.SweptEntries,
		Errors:         report.Errors,
	}
	if len(report.Errors) > 0 {
		c.JSON(http.StatusInternalServerError, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Janitor run finished with errors",
			TraceID: c.GetString("trace_id"),
			Data:    res,
		})
		return
	}

	utils.RespondSuccess(c, res, "Janitor run completed")
}
