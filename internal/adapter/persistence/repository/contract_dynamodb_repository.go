package repository

import (
	"context"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/infrastructure/config"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"
)

type contractItem struct {
	ID               string  `dynamodbav:"id"`
	Numero           string  `dynamodbav:"numero"`
	Descricao        string  `dynamodbav:"descricao,omitempty"`
	Fornecedor       string  `dynamodbav:"fornecedor,omitempty"`
	Valor            float64 `dynamodbav:"valor"`
	DataInicio       string  `dynamodbav:"data_inicio,omitempty"`
	DataFim          string  `dynamodbav:"data_fim,omitempty"`
	Status           string  `dynamodbav:"status"`
	AprovadorID      string  `dynamodbav:"aprovador_id,omitempty"`
	AprovadorNome    string  `dynamodbav:"aprovador_nome,omitempty"`
	DataAprovacao    string  `dynamodbav:"data_aprovacao,omitempty"`
	DataAtivacao     string  `dynamodbav:"data_ativacao,omitempty"`
	DataEncerramento string  `dynamodbav:"data_encerramento,omitempty"`
	Observacao       string  `dynamodbav:"observacao,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ContractDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	auditTable string
	timeout    time.Duration
}

var (
	_ interfaces.IContractRepository      = (*ContractDynamoRepository)(nil)
	_ workflow.Gateway[entities.Contract] = (*ContractDynamoRepository)(nil)
)

func NewContractDynamoRepository(ddb DynamoAPI, cfg config.DynamoDB) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:        ddb,
		tableName:  cfg.ContractsTable,
		auditTable: cfg.AuditTable,
		timeout:    cfg.GatewayTimeout,
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toContractItem(c)); err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	it, ok, err := getByID[contractItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	items, err := scanAll[contractItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Contract, 0, len(items))
	for _, it := range items {
		out = append(out, fromContractItem(it))
	}
	return out, nil
}

func (r *ContractDynamoRepository) Update(ctx context.Context, change workflow.Change[entities.Contract]) (workflow.Result[entities.Contract], error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := commitTransition(ctx, r.ddb, r.tableName, r.auditTable, toContractItem(change.Entity), change.Audit)
	return toResult(entities.EntityKindContract, change.EntityID, change.Entity, err)
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:               c.ID,
		Numero:           c.Numero,
		Descricao:        c.Descricao,
		Fornecedor:       c.Fornecedor,
		Valor:            c.Valor,
		DataInicio:       formatTimePtr(c.DataInicio),
		DataFim:          formatTimePtr(c.DataFim),
		Status:           string(c.Status),
		AprovadorID:      c.AprovadorID,
		AprovadorNome:    c.AprovadorNome,
		DataAprovacao:    formatTimePtr(c.DataAprovacao),
		DataAtivacao:     formatTimePtr(c.DataAtivacao),
		DataEncerramento: formatTimePtr(c.DataEncerramento),
		Observacao:       c.Observacao,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:               it.ID,
		Numero:           it.Numero,
		Descricao:        it.Descricao,
		Fornecedor:       it.Fornecedor,
		Valor:            it.Valor,
		DataInicio:       parseTimePtr(it.DataInicio),
		DataFim:          parseTimePtr(it.DataFim),
		Status:           entities.ContractStatus(it.Status),
		AprovadorID:      it.AprovadorID,
		AprovadorNome:    it.AprovadorNome,
		DataAprovacao:    parseTimePtr(it.DataAprovacao),
		DataAtivacao:     parseTimePtr(it.DataAtivacao),
		DataEncerramento: parseTimePtr(it.DataEncerramento),
		Observacao:       it.Observacao,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
