package handlers

import (
	"errors"
	"net/http"

	"jobcard_service/internal/domain/lifecycle"
	"jobcard_service/internal/usecase"
	"jobcard_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapDomainError translates the engine's error taxonomy into the transport
// shape. Every handler funnels its use case errors through here so the same
// condition always yields the same status and code.
func mapDomainError(err error) *pkg.AppError {
	var (
		transitionErr *lifecycle.InvalidTransitionError
		validationErr *usecase.ValidationError
		handoffErr    *usecase.HandoffError
	)
	switch {
	// HandoffError wraps its cause; match it before the sentinel checks so the
	// wrapped error cannot shadow the handoff outcome.
	case errors.As(err, &handoffErr):
		return pkg.NewDomainError("INVOICE_HANDOFF_FAILED", "Job card completed but invoice handoff failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidJobCardID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid job card id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobCardNotFound):
		return pkg.NewDomainErrorSimple("JOB_CARD_NOT_FOUND", "Job card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller is not allowed to perform this operation", http.StatusForbidden)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation is not allowed in the card's current state", http.StatusConflict)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity).
			WithDetails(validationErr.Reasons...)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapDomainError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
