package handlers

import (
	"net/http"

	request "jobcard_service/internal/adapter/http/dto/request"
	response "jobcard_service/internal/adapter/http/dto/response"
	"jobcard_service/internal/adapter/http/middleware"
	"jobcard_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the office-manager review surface: the aggregated
// cost view and the approval decision.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	summary, err := h.usecase.Review(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSummary(summary))
}

func (h *ReviewHandler) Decide(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	var adjustments *usecase.FinalAdjustments
	if payload.Adjustments != nil {
		adjustments = &usecase.FinalAdjustments{
			LaborCost:       payload.Adjustments.LaborCost,
			MaterialsCost:   payload.Adjustments.MaterialsCost,
			AdditionalCosts: payload.Adjustments.AdditionalCosts,
		}
	}

	card, err := h.usecase.Decide(c.Request.Context(), actor, c.Param("id"), *payload.Approved, adjustments, payload.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}
