package repository

import (
	"context"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/infrastructure/config"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"
)

type accountItem struct {
	ID                  string `dynamodbav:"id"`
	Nome                string `dynamodbav:"nome"`
	Email               string `dynamodbav:"email"`
	Perfil              string `dynamodbav:"perfil,omitempty"`
	Status              string `dynamodbav:"status"`
	TipoSuspensao       string `dynamodbav:"tipo_suspensao,omitempty"`
	MotivoSuspensao     string `dynamodbav:"motivo_suspensao,omitempty"`
	DataInicioSuspensao string `dynamodbav:"data_inicio_suspensao,omitempty"`
	DataFimSuspensao    string `dynamodbav:"data_fim_suspensao,omitempty"`
	SuspensoPorID       string `dynamodbav:"suspenso_por_id,omitempty"`
	SuspensoPorNome     string `dynamodbav:"suspenso_por_nome,omitempty"`
	DataReativacao      string `dynamodbav:"data_reativacao,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// AccountDynamoRepository persists UserAccount entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Reactivation clears the suspension attributes; omitempty drops them from the stored
// item because Update replaces the whole item.

type AccountDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	auditTable string
	timeout    time.Duration
}

var (
	_ interfaces.IAccountRepository          = (*AccountDynamoRepository)(nil)
	_ workflow.Gateway[entities.UserAccount] = (*AccountDynamoRepository)(nil)
)

func NewAccountDynamoRepository(ddb DynamoAPI, cfg config.DynamoDB) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:        ddb,
		tableName:  cfg.AccountsTable,
		auditTable: cfg.AuditTable,
		timeout:    cfg.GatewayTimeout,
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, u entities.UserAccount) (entities.UserAccount, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toAccountItem(u)); err != nil {
		return entities.UserAccount{}, err
	}
	return u, nil
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserAccount, error) {
	it, ok, err := getByID[accountItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.UserAccount{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) List(ctx context.Context) ([]entities.UserAccount, error) {
	items, err := scanAll[accountItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.UserAccount, 0, len(items))
	for _, it := range items {
		out = append(out, fromAccountItem(it))
	}
	return out, nil
}

func (r *AccountDynamoRepository) Update(ctx context.Context, change workflow.Change[entities.UserAccount]) (workflow.Result[entities.UserAccount], error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := commitTransition(ctx, r.ddb, r.tableName, r.auditTable, toAccountItem(change.Entity), change.Audit)
	return toResult(entities.EntityKindUserAccount, change.EntityID, change.Entity, err)
}

func toAccountItem(u entities.UserAccount) accountItem {
	return accountItem{
		ID:                  u.ID,
		Nome:                u.Nome,
		Email:               u.Email,
		Perfil:              u.Perfil,
		Status:              string(u.Status),
		TipoSuspensao:       string(u.TipoSuspensao),
		MotivoSuspensao:     u.MotivoSuspensao,
		DataInicioSuspensao: formatTimePtr(u.DataInicioSuspensao),
		DataFimSuspensao:    formatTimePtr(u.DataFimSuspensao),
		SuspensoPorID:       u.SuspensoPorID,
		SuspensoPorNome:     u.SuspensoPorNome,
		DataReativacao:      formatTimePtr(u.DataReativacao),
		CreatedAt:           formatTime(u.CreatedAt),
		UpdatedAt:           formatTime(u.UpdatedAt),
	}
}

func fromAccountItem(it accountItem) entities.UserAccount {
	return entities.UserAccount{
		ID:                  it.ID,
		Nome:                it.Nome,
		Email:               it.Email,
		Perfil:              it.Perfil,
		Status:              entities.AccountStatus(it.Status),
		TipoSuspensao:       entities.SuspensionType(it.TipoSuspensao),
		MotivoSuspensao:     it.MotivoSuspensao,
		DataInicioSuspensao: parseTimePtr(it.DataInicioSuspensao),
		DataFimSuspensao:    parseTimePtr(it.DataFimSuspensao),
		SuspensoPorID:       it.SuspensoPorID,
		SuspensoPorNome:     it.SuspensoPorNome,
		DataReativacao:      parseTimePtr(it.DataReativacao),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
