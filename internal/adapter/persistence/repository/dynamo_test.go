package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/infrastructure/config"
	"gestao_backoffice/internal/workflow"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var testTables = config.DynamoDB{
	ContractsTable: "t_contracts",
	OvertimeTable:  "t_overtime",
	AccountsTable:  "t_accounts",
	AuditTable:     "t_audit",
	GatewayTimeout: 2 * time.Second,
}

// fakeDynamo records calls; methods not overridden panic through the nil embedded interface.
type fakeDynamo struct {
	DynamoAPI

	transactIn       *dynamodb.TransactWriteItemsInput
	transactErr      error
	transactDeadline time.Time

	queryIn    []*dynamodb.QueryInput
	queryPages []*dynamodb.QueryOutput

	getOut *dynamodb.GetItemOutput
	putIn  *dynamodb.PutItemInput
	putErr error
}

func (f *fakeDynamo) TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactIn = in
	f.transactDeadline, _ = ctx.Deadline()
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = append(f.queryIn, in)
	page := f.queryPages[0]
	f.queryPages = f.queryPages[1:]
	return page, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func accountChange() workflow.Change[entities.UserAccount] {
	at := time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC)
	return workflow.Change[entities.UserAccount]{
		EntityID: "usr-1",
		Entity:   entities.UserAccount{ID: "usr-1", Nome: "Ana", Status: entities.AccountStatusAtivo, DataReativacao: &at},
		Audit: entities.AuditRecord{
			ID: "aud-1", EntityKind: entities.EntityKindUserAccount, EntityID: "usr-1",
			Action: "REATIVAR", StatusBefore: "SUSPENSO", StatusAfter: "ATIVO", ActorID: "adm-1", OccurredAt: at,
		},
	}
}

func canceled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{Message: aws.String("canceled"), CancellationReasons: reasons}
}

func TestAccountDynamoRepository_Update(t *testing.T) {
	t.Run("writes entity and audit in one transaction", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewAccountDynamoRepository(ddb, testTables)

		res, err := repo.Update(context.Background(), accountChange())
		if err != nil || !res.IsSuccess {
			t.Fatalf("expected success, got %+v %v", res, err)
		}
		items := ddb.transactIn.TransactItems
		if len(items) != 2 {
			t.Fatalf("expected 2 transact items, got %d", len(items))
		}
		if aws.ToString(items[0].Put.TableName) != testTables.AccountsTable || aws.ToString(items[1].Put.TableName) != testTables.AuditTable {
			t.Fatalf("unexpected tables: %s, %s", aws.ToString(items[0].Put.TableName), aws.ToString(items[1].Put.TableName))
		}
		if _, ok := items[0].Put.Item["motivo_suspensao"]; ok {
			t.Fatalf("cleared suspension fields must not be stored")
		}
		var audit auditItem
		if err := attributevalue.UnmarshalMap(items[1].Put.Item, &audit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if audit.EntityKey != "user_account#usr-1" || audit.OccurredAt != "2026-10-19T13:00:00.000000000Z" {
			t.Fatalf("unexpected audit item: %+v", audit)
		}
	})

	t.Run("missing entity", func(t *testing.T) {
		repo := NewAccountDynamoRepository(&fakeDynamo{transactErr: canceled("ConditionalCheckFailed", "None")}, testTables)

		res, err := repo.Update(context.Background(), accountChange())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsSuccess || res.Error.StatusCode != http.StatusNotFound || !strings.Contains(res.Error.Message, "usr-1") {
			t.Fatalf("unexpected result: %+v", res.Error)
		}
	})

	t.Run("duplicated audit id", func(t *testing.T) {
		repo := NewAccountDynamoRepository(&fakeDynamo{transactErr: canceled("None", "ConditionalCheckFailed")}, testTables)

		res, _ := repo.Update(context.Background(), accountChange())
		if res.IsSuccess || res.Error.StatusCode != http.StatusConflict {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("write is bounded by the configured timeout", func(t *testing.T) {
		ddb := &fakeDynamo{}
		cfg := testTables
		cfg.GatewayTimeout = 750 * time.Millisecond
		repo := NewAccountDynamoRepository(ddb, cfg)

		before := time.Now()
		if _, err := repo.Update(context.Background(), accountChange()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		budget := ddb.transactDeadline.Sub(before)
		if ddb.transactDeadline.IsZero() || budget <= 0 || budget > cfg.GatewayTimeout {
			t.Fatalf("expected a deadline within %s, got %s", cfg.GatewayTimeout, budget)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		repo := NewAccountDynamoRepository(&fakeDynamo{transactErr: fmt.Errorf("operation error: %w", context.DeadlineExceeded)}, testTables)

		res, err := repo.Update(context.Background(), accountChange())
		if err != nil || res.Error == nil || res.Error.StatusCode != http.StatusGatewayTimeout {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("transport error is returned", func(t *testing.T) {
		repo := NewAccountDynamoRepository(&fakeDynamo{transactErr: errors.New("connection reset")}, testTables)

		_, err := repo.Update(context.Background(), accountChange())
		if err == nil || err.Error() != "connection reset" {
			t.Fatalf("expected transport error, got %v", err)
		}
	})
}

func TestAuditRecordDynamoRepository_ListByEntity(t *testing.T) {
	page := func(ids ...string) *dynamodb.QueryOutput {
		out := &dynamodb.QueryOutput{}
		for _, id := range ids {
			av, _ := attributevalue.MarshalMap(auditItem{ID: id, EntityKind: "contract", EntityID: "ct-1", OccurredAt: id})
			out.Items = append(out.Items, av)
		}
		return out
	}
	first := page("2026-10-19T10:00:00.000000002Z", "2026-10-19T10:00:00.000000001Z")
	first.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "x"}}
	ddb := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{first, page("2026-10-19T10:00:00.000000003Z")}}
	repo := NewAuditRecordDynamoRepository(ddb, testTables)

	records, err := repo.ListByEntity(context.Background(), entities.EntityKindContract, "ct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 || len(ddb.queryIn) != 2 {
		t.Fatalf("expected 3 records over 2 pages, got %d records %d queries", len(records), len(ddb.queryIn))
	}
	for i := 1; i < len(records); i++ {
		if !records[i].OccurredAt.After(records[i-1].OccurredAt) {
			t.Fatalf("records not in chronological order: %v", records)
		}
	}
	if v := ddb.queryIn[0].ExpressionAttributeValues[":k"].(*types.AttributeValueMemberS).Value; v != "contract#ct-1" {
		t.Fatalf("unexpected entity key %q", v)
	}
	if aws.ToString(ddb.queryIn[0].IndexName) != auditEntityKeyIndex {
		t.Fatalf("unexpected index %q", aws.ToString(ddb.queryIn[0].IndexName))
	}
}

func TestContractDynamoRepository_CreateAndGet(t *testing.T) {
	start := time.Date(2026, 11, 1, 3, 0, 0, 0, time.UTC)
	c := entities.Contract{ID: "ct-1", Numero: "2026/001", Valor: 10.5, DataInicio: &start, Status: entities.ContractStatusRascunho}

	t.Run("conditional put", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewContractDynamoRepository(ddb, testTables)
		if _, err := repo.Create(context.Background(), c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(ddb.putIn.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("expected conditional put, got %q", aws.ToString(ddb.putIn.ConditionExpression))
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := NewContractDynamoRepository(&fakeDynamo{putErr: &types.ConditionalCheckFailedException{}}, testTables)
		if _, err := repo.Create(context.Background(), c); !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("get maps item", func(t *testing.T) {
		av, _ := attributevalue.MarshalMap(toContractItem(c))
		repo := NewContractDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: av}}, testTables)
		got, err := repo.GetByID(context.Background(), "ct-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ct-1" || got.Valor != 10.5 || got.DataInicio == nil || !got.DataInicio.Equal(start) || got.DataFim != nil {
			t.Fatalf("unexpected contract: %+v", got)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		repo := NewContractDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{}}, testTables)
		got, err := repo.GetByID(context.Background(), "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty contract, got %+v %v", got, err)
		}
	})
}
