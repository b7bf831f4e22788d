package entities

import "time"

type AccountStatus string

const (
	AccountStatusAtivo    AccountStatus = "ATIVO"
	AccountStatusSuspenso AccountStatus = "SUSPENSO"
	AccountStatusInativo  AccountStatus = "INATIVO"
)

var AccountStatuses = []AccountStatus{
	AccountStatusAtivo,
	AccountStatusSuspenso,
	AccountStatusInativo,
}

// SuspensionType distinguishes a suspension with an end date from an open-ended one.
type SuspensionType string

const (
	SuspensionTypeTemporaria SuspensionType = "TEMPORARIA"
	SuspensionTypePermanente SuspensionType = "PERMANENTE"
)

type AccountAction string

const (
	AccountActionSuspender AccountAction = "SUSPENDER"
	AccountActionReativar  AccountAction = "REATIVAR"
)

var AccountActions = []AccountAction{
	AccountActionSuspender,
	AccountActionReativar,
}

// UserAccount is a back-office login. Suspension fields are only meaningful while
// Status is SUSPENSO and are cleared on reactivation.
type UserAccount struct {
	ID                  string         `json:"id"`
	Nome                string         `json:"nome"`
	Email               string         `json:"email"`
	Perfil              string         `json:"perfil,omitempty"`
	Status              AccountStatus  `json:"status"`
	TipoSuspensao       SuspensionType `json:"tipo_suspensao,omitempty"`
	MotivoSuspensao     string         `json:"motivo_suspensao,omitempty"`
	DataInicioSuspensao *time.Time     `json:"data_inicio_suspensao,omitempty"`
	DataFimSuspensao    *time.Time     `json:"data_fim_suspensao,omitempty"`
	SuspensoPorID       string         `json:"suspenso_por_id,omitempty"`
	SuspensoPorNome     string         `json:"suspenso_por_nome,omitempty"`
	DataReativacao      *time.Time     `json:"data_reativacao,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}
