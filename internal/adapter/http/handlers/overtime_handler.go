package handlers

import (
	"errors"
	"net/http"
	"time"

	request "gestao_backoffice/internal/adapter/http/dto/request"
	response "gestao_backoffice/internal/adapter/http/dto/response"
	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/infrastructure/notify"
	"gestao_backoffice/internal/usecase"
	"gestao_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOvertimePayload = pkg.NewDomainErrorSimple("INVALID_OVERTIME_INPUT", "Invalid overtime payload", http.StatusBadRequest)
)

type OvertimeHandler struct {
	usecase usecase.IOvertimeUseCase
	loc     *time.Location
}

func NewOvertimeHandler(uc usecase.IOvertimeUseCase, loc *time.Location) *OvertimeHandler {
	return &OvertimeHandler{usecase: uc, loc: loc}
}

// CreateOvertime godoc
// @Summary  Log a day of overtime
// @Tags     overtime
// @Accept   json
// @Produce  json
// @Param    overtime  body      request.OvertimeRequest  true  "Overtime"
// @Success  201       {object}  response.OvertimeResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /overtime [post]
func (h *OvertimeHandler) CreateOvertime(c *gin.Context) {
	var payload request.OvertimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOvertimePayload.HTTPStatus, errInvalidOvertimePayload.ToHTTPError())
		return
	}
	record, err := payload.ToEntity(h.loc)
	if err != nil {
		appErr := errInvalidOvertimePayload.WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), record)
	if err != nil {
		writeError(c, mapOvertimeError(err), nil)
		return
	}
	c.JSON(http.StatusCreated, response.FromOvertime(created, h.usecase.AvailableActions(created)))
}

// ListOvertime godoc
// @Summary  List overtime records
// @Tags     overtime
// @Produce  json
// @Success  200  {array}  response.OvertimeResponse
// @Router   /overtime [get]
func (h *OvertimeHandler) ListOvertime(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapOvertimeError(err), nil)
		return
	}
	out := make([]response.OvertimeResponse, 0, len(records))
	for _, o := range records {
		out = append(out, response.FromOvertime(o, h.usecase.AvailableActions(o)))
	}
	c.JSON(http.StatusOK, out)
}

// GetOvertime godoc
// @Summary  Get an overtime record
// @Tags     overtime
// @Produce  json
// @Param    id   path      string  true  "Overtime record ID"
// @Success  200  {object}  response.OvertimeResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /overtime/{id} [get]
func (h *OvertimeHandler) GetOvertime(c *gin.Context) {
	record, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOvertimeError(err), nil)
		return
	}
	c.JSON(http.StatusOK, response.FromOvertime(record, h.usecase.AvailableActions(record)))
}

// ExecuteOvertimeAction godoc
// @Summary      Approve or reject an overtime record
// @Description  Actions: APROVAR_HORAS_EXTRAS (payload.horasExtrasAprovadas optional), REPROVAR_HORAS_EXTRAS.
// @Tags         overtime
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Overtime record ID"
// @Param        action  body      request.ActionRequest  true  "Action"
// @Success      200     {object}  response.Envelope[response.OvertimeResponse]
// @Failure      409     {object}  response.ErrorResponse
// @Failure      422     {object}  response.ErrorResponse
// @Failure      502     {object}  response.ErrorResponse
// @Router       /overtime/{id}/actions [post]
func (h *OvertimeHandler) ExecuteOvertimeAction(c *gin.Context) {
	payload, ok := bindAction(c)
	if !ok {
		return
	}

	ctx, col := notify.WithCollector(c.Request.Context())
	record, err := h.usecase.Transition(ctx, request.ToWorkflow[entities.OvertimeAction](payload, c.Param("id")))
	if err != nil {
		writeError(c, mapOvertimeError(err), col)
		return
	}
	writeEnvelope(c, response.FromOvertime(record, h.usecase.AvailableActions(record)), col)
}

// GetOvertimeHistory godoc
// @Summary  List the audit trail of an overtime record
// @Tags     overtime
// @Produce  json
// @Param    id   path     string  true  "Overtime record ID"
// @Success  200  {array}  response.AuditRecordResponse
// @Router   /overtime/{id}/history [get]
func (h *OvertimeHandler) GetOvertimeHistory(c *gin.Context) {
	records, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOvertimeError(err), nil)
		return
	}
	c.JSON(http.StatusOK, response.FromAuditRecords(records))
}

func mapOvertimeError(err error) *pkg.AppError {
	if appErr, ok := mapTransitionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOvertime):
		return errInvalidOvertimePayload.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrOvertimeNotFound):
		return pkg.NewDomainErrorSimple("OVERTIME_NOT_FOUND", "Overtime record not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
