package response

import (
	"time"

	"gestao_backoffice/internal/domain/entities"
)

type OvertimeResponse struct {
	ID                   string     `json:"id"`
	FuncionarioID        string     `json:"funcionario_id"`
	FuncionarioNome      string     `json:"funcionario_nome"`
	Data                 string     `json:"data"`
	HorasExtras          float64    `json:"horas_extras"`
	HorasExtrasAprovadas *float64   `json:"horas_extras_aprovadas,omitempty"`
	Status               string     `json:"status"`
	AprovadorID          string     `json:"aprovador_id,omitempty"`
	AprovadorNome        string     `json:"aprovador_nome,omitempty"`
	DataAprovacao        *time.Time `json:"data_aprovacao,omitempty"`
	Observacao           string     `json:"observacao,omitempty"`
	AvailableActions     []string   `json:"available_actions"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// FromOvertime renders the overtime day as a plain YYYY-MM-DD date.
func FromOvertime(o entities.OvertimeRecord, actions []entities.OvertimeAction) OvertimeResponse {
	return OvertimeResponse{
		ID:                   o.ID,
		FuncionarioID:        o.FuncionarioID,
		FuncionarioNome:      o.FuncionarioNome,
		Data:                 o.Data.Format("2006-01-02"),
		HorasExtras:          o.HorasExtras,
		HorasExtrasAprovadas: o.HorasExtrasAprovadas,
		Status:               string(o.Status),
		AprovadorID:          o.AprovadorID,
		AprovadorNome:        o.AprovadorNome,
		DataAprovacao:        o.DataAprovacao,
		Observacao:           o.Observacao,
		AvailableActions:     actionNames(actions),
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
