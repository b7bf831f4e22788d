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
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
)

// ContractHandler exposes the contract approval workflow.
type ContractHandler struct {
	usecase usecase.IContractUseCase
	loc     *time.Location
}

// NewContractHandler reads plain dates in loc.
func NewContractHandler(uc usecase.IContractUseCase, loc *time.Location) *ContractHandler {
	return &ContractHandler{usecase: uc, loc: loc}
}

// CreateContract godoc
// @Summary      Register a draft contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        contract  body      request.ContractRequest  true  "Contract"
// @Success      201       {object}  response.ContractResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	contract, err := payload.ToEntity(h.loc)
	if err != nil {
		appErr := errInvalidContractPayload.WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), contract)
	if err != nil {
		writeError(c, mapContractError(err), nil)
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(created, h.usecase.AvailableActions(created)))
}

// ListContracts godoc
// @Summary  List contracts
// @Tags     contracts
// @Produce  json
// @Success  200  {array}  response.ContractResponse
// @Router   /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapContractError(err), nil)
		return
	}
	out := make([]response.ContractResponse, 0, len(contracts))
	for _, ct := range contracts {
		out = append(out, response.FromContract(ct, h.usecase.AvailableActions(ct)))
	}
	c.JSON(http.StatusOK, out)
}

// GetContract godoc
// @Summary  Get a contract and the actions available in its status
// @Tags     contracts
// @Produce  json
// @Param    id   path      string  true  "Contract ID"
// @Success  200  {object}  response.ContractResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapContractError(err), nil)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract, h.usecase.AvailableActions(contract)))
}

// ExecuteContractAction godoc
// @Summary      Execute a workflow action on a contract
// @Description  Actions: ENVIAR_APROVACAO, APROVAR, REPROVAR, ATIVAR, ENCERRAR, CANCELAR.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Contract ID"
// @Param        action  body      request.ActionRequest  true  "Action"
// @Success      200     {object}  response.Envelope[response.ContractResponse]
// @Failure      409     {object}  response.ErrorResponse
// @Failure      422     {object}  response.ErrorResponse
// @Failure      502     {object}  response.ErrorResponse
// @Router       /contracts/{id}/actions [post]
func (h *ContractHandler) ExecuteContractAction(c *gin.Context) {
	payload, ok := bindAction(c)
	if !ok {
		return
	}

	ctx, col := notify.WithCollector(c.Request.Context())
	contract, err := h.usecase.Transition(ctx, request.ToWorkflow[entities.ContractAction](payload, c.Param("id")))
	if err != nil {
		writeError(c, mapContractError(err), col)
		return
	}
	writeEnvelope(c, response.FromContract(contract, h.usecase.AvailableActions(contract)), col)
}

// GetContractHistory godoc
// @Summary  List the audit trail of a contract, oldest first
// @Tags     contracts
// @Produce  json
// @Param    id   path     string  true  "Contract ID"
// @Success  200  {array}  response.AuditRecordResponse
// @Failure  404  {object} pkg.HTTPError
// @Router   /contracts/{id}/history [get]
func (h *ContractHandler) GetContractHistory(c *gin.Context) {
	records, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapContractError(err), nil)
		return
	}
	c.JSON(http.StatusOK, response.FromAuditRecords(records))
}

func mapContractError(err error) *pkg.AppError {
	if appErr, ok := mapTransitionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidContract):
		return errInvalidContractPayload.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
