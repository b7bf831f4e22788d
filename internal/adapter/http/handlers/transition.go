package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gestao_backoffice/internal/adapter/http/dto/request"
	response "gestao_backoffice/internal/adapter/http/dto/response"
	"gestao_backoffice/internal/adapter/http/middleware"
	"gestao_backoffice/internal/infrastructure/notify"
	"gestao_backoffice/internal/usecase"
	"gestao_backoffice/internal/workflow"
	"gestao_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidAction  = pkg.NewDomainErrorSimple("INVALID_ACTION", "Unknown action", http.StatusBadRequest)
)

// bindAction reads the action body. An authenticated actor replaces whatever the
// body claims.
func bindAction(c *gin.Context) (request.ActionRequest, bool) {
	var payload request.ActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest, nil)
		return payload, false
	}
	if id, name, ok := middleware.Actor(c); ok {
		payload.ActorID = id
		payload.ActorName = name
	}
	return payload, true
}

// mapTransitionError maps the errors shared by every workflow. ok is false for
// anything else.
func mapTransitionError(err error) (appErr *pkg.AppError, ok bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return errInvalidRequest, true
	case errors.Is(err, usecase.ErrInvalidAction):
		return errInvalidAction, true
	}

	rej, isRejection := workflow.AsRejection(err)
	if !isRejection {
		return nil, false
	}
	switch rej.Reason {
	case workflow.ReasonIllegalTransition:
		return pkg.NewDomainError("ACTION_NOT_AVAILABLE", "Action not available for the current status", err, http.StatusConflict), true
	case workflow.ReasonValidationError:
		return pkg.NewDomainError("VALIDATION_ERROR", "Validation failed", err, http.StatusUnprocessableEntity).WithDetails(rej.Violations...), true
	default:
		return pkg.NewDomainError("PERSISTENCE_ERROR", rej.Message, err, http.StatusBadGateway), true
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, appErr *pkg.AppError, col *notify.Collector) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] %s %s failed: %v", c.Request.Method, c.FullPath(), appErr)
	}
	body := response.ErrorResponse{HTTPError: appErr.ToHTTPError()}
	if col != nil {
		body.Notifications = response.FromNotifications(col.Notifications())
	}
	c.JSON(appErr.HTTPStatus, body)
}

func writeEnvelope[T any](c *gin.Context, data T, col *notify.Collector) {
	c.JSON(http.StatusOK, response.Envelope[T]{
		Data:          data,
		Notifications: response.FromNotifications(col.Notifications()),
	})
}
