package request

import (
	"strings"

	"gestao_backoffice/internal/domain/entities"
)

type AccountRequest struct {
	Nome   string `json:"nome" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Perfil string `json:"perfil"`
	Status string `json:"status"`
}

func (r AccountRequest) ToEntity() entities.UserAccount {
	return entities.UserAccount{
		Nome:   r.Nome,
		Email:  r.Email,
		Perfil: r.Perfil,
		Status: entities.AccountStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
}
