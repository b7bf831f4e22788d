package handlers

import (
	"errors"
	"net/http"

	request "gestao_backoffice/internal/adapter/http/dto/request"
	response "gestao_backoffice/internal/adapter/http/dto/response"
	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/infrastructure/notify"
	"gestao_backoffice/internal/usecase"
	"gestao_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAccountPayload = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_INPUT", "Invalid account payload", http.StatusBadRequest)
)

type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// CreateAccount godoc
// @Summary  Register a user account
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    account  body      request.AccountRequest  true  "Account"
// @Success  201      {object}  response.AccountResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var payload request.AccountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapAccountError(err), nil)
		return
	}
	c.JSON(http.StatusCreated, response.FromAccount(created, h.usecase.AvailableActions(created)))
}

// ListAccounts godoc
// @Summary  List user accounts
// @Tags     accounts
// @Produce  json
// @Success  200  {array}  response.AccountResponse
// @Router   /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapAccountError(err), nil)
		return
	}
	out := make([]response.AccountResponse, 0, len(accounts))
	for _, u := range accounts {
		out = append(out, response.FromAccount(u, h.usecase.AvailableActions(u)))
	}
	c.JSON(http.StatusOK, out)
}

// GetAccount godoc
// @Summary  Get a user account
// @Tags     accounts
// @Produce  json
// @Param    id   path      string  true  "Account ID"
// @Success  200  {object}  response.AccountResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAccountError(err), nil)
		return
	}
	c.JSON(http.StatusOK, response.FromAccount(account, h.usecase.AvailableActions(account)))
}

// ExecuteAccountAction godoc
// @Summary      Suspend or reactivate a user account
// @Description  Actions: SUSPENDER (payload: tipoSuspensao, motivoSuspensao, dataInicioSuspensao, dataFimSuspensao), REATIVAR.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Account ID"
// @Param        action  body      request.ActionRequest  true  "Action"
// @Success      200     {object}  response.Envelope[response.AccountResponse]
// @Failure      409     {object}  response.ErrorResponse
// @Failure      422     {object}  response.ErrorResponse
// @Failure      502     {object}  response.ErrorResponse
// @Router       /accounts/{id}/actions [post]
func (h *AccountHandler) ExecuteAccountAction(c *gin.Context) {
	payload, ok := bindAction(c)
	if !ok {
		return
	}

	ctx, col := notify.WithCollector(c.Request.Context())
	account, err := h.usecase.Transition(ctx, request.ToWorkflow[entities.AccountAction](payload, c.Param("id")))
	if err != nil {
		writeError(c, mapAccountError(err), col)
		return
	}
	writeEnvelope(c, response.FromAccount(account, h.usecase.AvailableActions(account)), col)
}

// GetAccountHistory godoc
// @Summary  List the suspension history of a user account
// @Tags     accounts
// @Produce  json
// @Param    id   path     string  true  "Account ID"
// @Success  200  {array}  response.AuditRecordResponse
// @Router   /accounts/{id}/history [get]
func (h *AccountHandler) GetAccountHistory(c *gin.Context) {
	records, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAccountError(err), nil)
		return
	}
	c.JSON(http.StatusOK, response.FromAuditRecords(records))
}

func mapAccountError(err error) *pkg.AppError {
	if appErr, ok := mapTransitionError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidAccount):
		return errInvalidAccountPayload.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
