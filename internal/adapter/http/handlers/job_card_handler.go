package handlers

import (
	"net/http"

	request "jobcard_service/internal/adapter/http/dto/request"
	response "jobcard_service/internal/adapter/http/dto/response"
	"jobcard_service/internal/adapter/http/middleware"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase"
	"jobcard_service/pkg"

	"github.com/gin-gonic/gin"
)

// JobCardHandler handles intake, reads and cancellation of job cards.

type JobCardHandler struct {
	usecase usecase.IJobCardUseCase
}

func NewJobCardHandler(uc usecase.IJobCardUseCase) *JobCardHandler {
	return &JobCardHandler{usecase: uc}
}

func (h *JobCardHandler) CreateJobCard(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.CreateJobCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	card, err := h.usecase.Create(c.Request.Context(), actor, usecase.CreateJobCardInput{
		Title:                  payload.Title,
		Description:            payload.Description,
		Priority:               entities.JobCardPriority(payload.ResolvePriority()),
		CustomerID:             payload.CustomerID,
		CustomerName:           payload.CustomerName,
		AssignedTechnicianID:   payload.AssignedTechnicianID,
		AssignedTechnicianName: payload.AssignedTechnicianName,
		Tasks:                  payload.Tasks,
		EstimatedCost: entities.CostEstimate{
			LaborCost:       payload.EstimatedCost.LaborCost,
			MaterialsCost:   payload.EstimatedCost.MaterialsCost,
			AdditionalCosts: payload.EstimatedCost.AdditionalCosts,
		},
		ScheduledStartDate:     payload.ScheduledStartDate,
		ExpectedCompletionDate: payload.ExpectedCompletionDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJobCard(card))
}

func (h *JobCardHandler) GetJobCard(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	card, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

// ListJobCards answers the technician worklist. The technician_id query
// parameter is mandatory; unfiltered listing is not offered.
func (h *JobCardHandler) ListJobCards(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	cards, err := h.usecase.ListByTechnician(c.Request.Context(), actor, c.Query("technician_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCards(cards))
}

func (h *JobCardHandler) GetCostSummary(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	summary, err := h.usecase.CostSummary(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCostSummary(summary))
}

func (h *JobCardHandler) CancelJobCard(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.CancelJobCardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	card, err := h.usecase.Cancel(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

func respondUnauthenticated(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing identity", http.StatusUnauthorized)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
