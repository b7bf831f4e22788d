package response

import (
	"time"

	"gestao_backoffice/internal/domain/entities"
)

type AccountResponse struct {
	ID                  string     `json:"id"`
	Nome                string     `json:"nome"`
	Email               string     `json:"email"`
	Perfil              string     `json:"perfil,omitempty"`
	Status              string     `json:"status"`
	TipoSuspensao       string     `json:"tipo_suspensao,omitempty"`
	MotivoSuspensao     string     `json:"motivo_suspensao,omitempty"`
	DataInicioSuspensao *time.Time `json:"data_inicio_suspensao,omitempty"`
	DataFimSuspensao    *time.Time `json:"data_fim_suspensao,omitempty"`
	SuspensoPorID       string     `json:"suspenso_por_id,omitempty"`
	SuspensoPorNome     string     `json:"suspenso_por_nome,omitempty"`
	DataReativacao      *time.Time `json:"data_reativacao,omitempty"`
	AvailableActions    []string   `json:"available_actions"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromAccount(u entities.UserAccount, actions []entities.AccountAction) AccountResponse {
	return AccountResponse{
		ID:                  u.ID,
		Nome:                u.Nome,
		Email:               u.Email,
		Perfil:              u.Perfil,
		Status:              string(u.Status),
		TipoSuspensao:       string(u.TipoSuspensao),
		MotivoSuspensao:     u.MotivoSuspensao,
		DataInicioSuspensao: u.DataInicioSuspensao,
		DataFimSuspensao:    u.DataFimSuspensao,
		SuspensoPorID:       u.SuspensoPorID,
		SuspensoPorNome:     u.SuspensoPorNome,
		DataReativacao:      u.DataReativacao,
		AvailableActions:    actionNames(actions),
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
