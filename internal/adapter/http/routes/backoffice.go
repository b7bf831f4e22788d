package routes

import (
	"gestao_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts = "/contracts"
	PathOvertime  = "/overtime"
	PathAccounts  = "/accounts"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	contractHandler *handlers.ContractHandler,
	overtimeHandler *handlers.OvertimeHandler,
	accountHandler *handlers.AccountHandler,
) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.POST("/:id/actions", contractHandler.ExecuteContractAction)
		contracts.GET("/:id/history", contractHandler.GetContractHistory)
	}

	overtime := rg.Group(PathOvertime)
	{
		overtime.POST("", overtimeHandler.CreateOvertime)
		overtime.GET("", overtimeHandler.ListOvertime)
		overtime.GET("/:id", overtimeHandler.GetOvertime)
		overtime.POST("/:id/actions", overtimeHandler.ExecuteOvertimeAction)
		overtime.GET("/:id/history", overtimeHandler.GetOvertimeHistory)
	}

	accounts := rg.Group(PathAccounts)
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("", accountHandler.ListAccounts)
		accounts.GET("/:id", accountHandler.GetAccount)
		accounts.POST("/:id/actions", accountHandler.ExecuteAccountAction)
		accounts.GET("/:id/history", accountHandler.GetAccountHistory)
	}
}
