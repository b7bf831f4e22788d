package entities

import "time"

// OvertimeStatus represents the approval state of an overtime entry (horas extras).
type OvertimeStatus string

const (
	OvertimeStatusPendente  OvertimeStatus = "PENDENTE"
	OvertimeStatusAprovado  OvertimeStatus = "APROVADO"
	OvertimeStatusReprovado OvertimeStatus = "REPROVADO"
)

var OvertimeStatuses = []OvertimeStatus{
	OvertimeStatusPendente,
	OvertimeStatusAprovado,
	OvertimeStatusReprovado,
}

type OvertimeAction string

const (
	OvertimeActionAprovar  OvertimeAction = "APROVAR_HORAS_EXTRAS"
	OvertimeActionReprovar OvertimeAction = "REPROVAR_HORAS_EXTRAS"
)

var OvertimeActions = []OvertimeAction{
	OvertimeActionAprovar,
	OvertimeActionReprovar,
}

// OvertimeRecord is one day of overtime logged by an employee.
//
// HorasExtras is what the employee logged; HorasExtrasAprovadas is what the approver
// accepted and is never greater than HorasExtras.
type OvertimeRecord struct {
	ID                   string         `json:"id"`
	FuncionarioID        string         `json:"funcionario_id"`
	FuncionarioNome      string         `json:"funcionario_nome"`
	Data                 time.Time      `json:"data"`
	HorasExtras          float64        `json:"horas_extras"`
	HorasExtrasAprovadas *float64       `json:"horas_extras_aprovadas,omitempty"`
	Status               OvertimeStatus `json:"status"`
	AprovadorID          string         `json:"aprovador_id,omitempty"`
	AprovadorNome        string         `json:"aprovador_nome,omitempty"`
	DataAprovacao        *time.Time     `json:"data_aprovacao,omitempty"`
	Observacao           string         `json:"observacao,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
