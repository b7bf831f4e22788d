package entities

import "time"

// ContractStatus represents the lifecycle of a contract (contrato).
type ContractStatus string

const (
	ContractStatusRascunho  ContractStatus = "RASCUNHO"
	ContractStatusEmAnalise ContractStatus = "EM_ANALISE"
	ContractStatusAprovado  ContractStatus = "APROVADO"
	ContractStatusReprovado ContractStatus = "REPROVADO"
	ContractStatusEmVigor   ContractStatus = "EM_VIGOR"
	ContractStatusEncerrado ContractStatus = "ENCERRADO"
	ContractStatusCancelado ContractStatus = "CANCELADO"
)

// ContractStatuses lists every declared contract status.
var ContractStatuses = []ContractStatus{
	ContractStatusRascunho,
	ContractStatusEmAnalise,
	ContractStatusAprovado,
	ContractStatusReprovado,
	ContractStatusEmVigor,
	ContractStatusEncerrado,
	ContractStatusCancelado,
}

// Terminal reports whether no further action is possible from s.
func (s ContractStatus) Terminal() bool {
	switch s {
	case ContractStatusReprovado, ContractStatusEncerrado, ContractStatusCancelado:
		return true
	}
	return false
}

// ContractAction is an intent to move a contract between statuses.
type ContractAction string

const (
	ContractActionEnviarAprovacao ContractAction = "ENVIAR_APROVACAO"
	ContractActionAprovar         ContractAction = "APROVAR"
	ContractActionReprovar        ContractAction = "REPROVAR"
	ContractActionAtivar          ContractAction = "ATIVAR"
	ContractActionEncerrar        ContractAction = "ENCERRAR"
	ContractActionCancelar        ContractAction = "CANCELAR"
)

var ContractActions = []ContractAction{
	ContractActionEnviarAprovacao,
	ContractActionAprovar,
	ContractActionReprovar,
	ContractActionAtivar,
	ContractActionEncerrar,
	ContractActionCancelar,
}

// Contract is a supplier contract going through analysis and approval.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Aprovador* and DataAprovacao are stamped on APROVAR and REPROVAR.
type Contract struct {
	ID               string         `json:"id"`
	Numero           string         `json:"numero"`
	Descricao        string         `json:"descricao"`
	Fornecedor       string         `json:"fornecedor"`
	Valor            float64        `json:"valor"`
	DataInicio       *time.Time     `json:"data_inicio,omitempty"`
	DataFim          *time.Time     `json:"data_fim,omitempty"`
	Status           ContractStatus `json:"status"`
	AprovadorID      string         `json:"aprovador_id,omitempty"`
	AprovadorNome    string         `json:"aprovador_nome,omitempty"`
	DataAprovacao    *time.Time     `json:"data_aprovacao,omitempty"`
	DataAtivacao     *time.Time     `json:"data_ativacao,omitempty"`
	DataEncerramento *time.Time     `json:"data_encerramento,omitempty"`
	Observacao       string         `json:"observacao,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
