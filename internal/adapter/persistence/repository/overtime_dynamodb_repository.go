package repository

import (
	"context"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/infrastructure/config"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"
)

type overtimeItem struct {
	ID                   string   `dynamodbav:"id"`
	FuncionarioID        string   `dynamodbav:"funcionario_id"`
	FuncionarioNome      string   `dynamodbav:"funcionario_nome,omitempty"`
	Data                 string   `dynamodbav:"data"`
	HorasExtras          float64  `dynamodbav:"horas_extras"`
	HorasExtrasAprovadas *float64 `dynamodbav:"horas_extras_aprovadas,omitempty"`
	Status               string   `dynamodbav:"status"`
	AprovadorID          string   `dynamodbav:"aprovador_id,omitempty"`
	AprovadorNome        string   `dynamodbav:"aprovador_nome,omitempty"`
	DataAprovacao        string   `dynamodbav:"data_aprovacao,omitempty"`
	Observacao           string   `dynamodbav:"observacao,omitempty"`
	CreatedAt            string   `dynamodbav:"created_at"`
	UpdatedAt            string   `dynamodbav:"updated_at"`
}

// OvertimeDynamoRepository persists OvertimeRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OvertimeDynamoRepository struct {
	ddb        DynamoAPI
	tableName  string
	auditTable string
	timeout    time.Duration
}

var (
	_ interfaces.IOvertimeRepository            = (*OvertimeDynamoRepository)(nil)
	_ workflow.Gateway[entities.OvertimeRecord] = (*OvertimeDynamoRepository)(nil)
)

func NewOvertimeDynamoRepository(ddb DynamoAPI, cfg config.DynamoDB) *OvertimeDynamoRepository {
	return &OvertimeDynamoRepository{
		ddb:        ddb,
		tableName:  cfg.OvertimeTable,
		auditTable: cfg.AuditTable,
		timeout:    cfg.GatewayTimeout,
	}
}

func (r *OvertimeDynamoRepository) Create(ctx context.Context, o entities.OvertimeRecord) (entities.OvertimeRecord, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOvertimeItem(o)); err != nil {
		return entities.OvertimeRecord{}, err
	}
	return o, nil
}

func (r *OvertimeDynamoRepository) GetByID(ctx context.Context, id string) (entities.OvertimeRecord, error) {
	it, ok, err := getByID[overtimeItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.OvertimeRecord{}, err
	}
	return fromOvertimeItem(it), nil
}

func (r *OvertimeDynamoRepository) List(ctx context.Context) ([]entities.OvertimeRecord, error) {
	items, err := scanAll[overtimeItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.OvertimeRecord, 0, len(items))
	for _, it := range items {
		out = append(out, fromOvertimeItem(it))
	}
	return out, nil
}

func (r *OvertimeDynamoRepository) Update(ctx context.Context, change workflow.Change[entities.OvertimeRecord]) (workflow.Result[entities.OvertimeRecord], error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := commitTransition(ctx, r.ddb, r.tableName, r.auditTable, toOvertimeItem(change.Entity), change.Audit)
	return toResult(entities.EntityKindOvertime, change.EntityID, change.Entity, err)
}

func toOvertimeItem(o entities.OvertimeRecord) overtimeItem {
	return overtimeItem{
		ID:                   o.ID,
		FuncionarioID:        o.FuncionarioID,
		FuncionarioNome:      o.FuncionarioNome,
		Data:                 formatTime(o.Data),
		HorasExtras:          o.HorasExtras,
		HorasExtrasAprovadas: o.HorasExtrasAprovadas,
		Status:               string(o.Status),
		AprovadorID:          o.AprovadorID,
		AprovadorNome:        o.AprovadorNome,
		DataAprovacao:        formatTimePtr(o.DataAprovacao),
		Observacao:           o.Observacao,
		CreatedAt:            formatTime(o.CreatedAt),
		UpdatedAt:            formatTime(o.UpdatedAt),
	}
}

func fromOvertimeItem(it overtimeItem) entities.OvertimeRecord {
	return entities.OvertimeRecord{
		ID:                   it.ID,
		FuncionarioID:        it.FuncionarioID,
		FuncionarioNome:      it.FuncionarioNome,
		Data:                 parseTime(it.Data),
		HorasExtras:          it.HorasExtras,
		HorasExtrasAprovadas: it.HorasExtrasAprovadas,
		Status:               entities.OvertimeStatus(it.Status),
		AprovadorID:          it.AprovadorID,
		AprovadorNome:        it.AprovadorNome,
		DataAprovacao:        parseTimePtr(it.DataAprovacao),
		Observacao:           it.Observacao,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
