package handlers

import (
	"context"
	"net/http"

	request "jobcard_service/internal/adapter/http/dto/request"
	response "jobcard_service/internal/adapter/http/dto/response"
	"jobcard_service/internal/adapter/http/middleware"
	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkSessionHandler exposes the technician's day-to-day operations on a job
// card: status moves, the live timer, labor, materials, tasks and notes.

type WorkSessionHandler struct {
	usecase usecase.IWorkSessionUseCase
}

func NewWorkSessionHandler(uc usecase.IWorkSessionUseCase) *WorkSessionHandler {
	return &WorkSessionHandler{usecase: uc}
}

func (h *WorkSessionHandler) StartWork(c *gin.Context) {
	h.applyTrigger(c, h.usecase.StartWork)
}

func (h *WorkSessionHandler) Hold(c *gin.Context) {
	h.applyTrigger(c, h.usecase.Hold)
}

func (h *WorkSessionHandler) Resume(c *gin.Context) {
	h.applyTrigger(c, h.usecase.Resume)
}

func (h *WorkSessionHandler) AwaitParts(c *gin.Context) {
	h.applyTrigger(c, h.usecase.AwaitParts)
}

func (h *WorkSessionHandler) PartsArrived(c *gin.Context) {
	h.applyTrigger(c, h.usecase.PartsArrived)
}

func (h *WorkSessionHandler) RequestApproval(c *gin.Context) {
	h.applyTrigger(c, h.usecase.RequestApproval)
}

func (h *WorkSessionHandler) applyTrigger(
	c *gin.Context,
	op func(ctx context.Context, actor entities.Identity, cardID string) (entities.JobCard, error),
) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	card, err := op(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

func (h *WorkSessionHandler) StartTimer(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.StartTimerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	card, err := h.usecase.StartTimer(c.Request.Context(), actor, c.Param("id"), payload.Description, payload.HourlyRate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

func (h *WorkSessionHandler) StopTimer(c *gin.Context) {
	h.applyTrigger(c, h.usecase.StopTimer)
}

func (h *WorkSessionHandler) GetOpenTimer(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	snapshot, open := h.usecase.OpenTimer(actor, c.Param("id"))
	c.JSON(http.StatusOK, response.FromTimerSnapshot(snapshot, open))
}

func (h *WorkSessionHandler) LogTime(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.LogTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	card, err := h.usecase.LogTime(c.Request.Context(), actor, c.Param("id"), payload.Hours, payload.HourlyRate, payload.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJobCard(card))
}

func (h *WorkSessionHandler) AddMaterial(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.AddMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	card, err := h.usecase.AddMaterial(c.Request.Context(), actor, c.Param("id"), usecase.MaterialInput{
		Name:       payload.Name,
		PartNumber: payload.PartNumber,
		Quantity:   payload.Quantity,
		UnitPrice:  payload.UnitPrice,
		Category:   entities.MaterialCategory(payload.Category),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJobCard(card))
}

func (h *WorkSessionHandler) RemoveMaterial(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	card, err := h.usecase.RemoveMaterial(c.Request.Context(), actor, c.Param("id"), c.Param("material_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

func (h *WorkSessionHandler) AddTask(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.AddTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	card, err := h.usecase.AddTask(c.Request.Context(), actor, c.Param("id"), payload.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJobCard(card))
}

func (h *WorkSessionHandler) UpdateTaskProgress(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.TaskProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	card, err := h.usecase.UpdateTaskProgress(c.Request.Context(), actor, c.Param("id"), *payload.Index, payload.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

func (h *WorkSessionHandler) AddNote(c *gin.Context) {
	actor, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	card, err := h.usecase.AppendNote(c.Request.Context(), actor, c.Param("id"), payload.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJobCard(card))
}
