package response

import (
	"time"

	"gestao_backoffice/internal/domain/entities"
)

type ContractResponse struct {
	ID               string     `json:"id"`
	Numero           string     `json:"numero"`
	Descricao        string     `json:"descricao"`
	Fornecedor       string     `json:"fornecedor"`
	Valor            float64    `json:"valor"`
	DataInicio       *time.Time `json:"data_inicio,omitempty"`
	DataFim          *time.Time `json:"data_fim,omitempty"`
	Status           string     `json:"status"`
	AprovadorID      string     `json:"aprovador_id,omitempty"`
	AprovadorNome    string     `json:"aprovador_nome,omitempty"`
	DataAprovacao    *time.Time `json:"data_aprovacao,omitempty"`
	DataAtivacao     *time.Time `json:"data_ativacao,omitempty"`
	DataEncerramento *time.Time `json:"data_encerramento,omitempty"`
	Observacao       string     `json:"observacao,omitempty"`
	AvailableActions []string   `json:"available_actions"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromContract(c entities.Contract, actions []entities.ContractAction) ContractResponse {
	return ContractResponse{
		ID:               c.ID,
		Numero:           c.Numero,
		Descricao:        c.Descricao,
		Fornecedor:       c.Fornecedor,
		Valor:            c.Valor,
		DataInicio:       c.DataInicio,
		DataFim:          c.DataFim,
		Status:           string(c.Status),
		AprovadorID:      c.AprovadorID,
		AprovadorNome:    c.AprovadorNome,
		DataAprovacao:    c.DataAprovacao,
		DataAtivacao:     c.DataAtivacao,
		DataEncerramento: c.DataEncerramento,
		Observacao:       c.Observacao,
		AvailableActions: actionNames(actions),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func actionNames[A ~string](actions []A) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a))
	}
	return out
}
