package repository

import (
	"context"
	"sort"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/infrastructure/config"
	"gestao_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const auditEntityKeyIndex = "entity_key-index"

type auditItem struct {
	ID           string         `dynamodbav:"id"`
	EntityKey    string         `dynamodbav:"entity_key"`
	EntityKind   string         `dynamodbav:"entity_kind"`
	EntityID     string         `dynamodbav:"entity_id"`
	Action       string         `dynamodbav:"action"`
	StatusBefore string         `dynamodbav:"status_before"`
	StatusAfter  string         `dynamodbav:"status_after"`
	Observation  string         `dynamodbav:"observation,omitempty"`
	ActorID      string         `dynamodbav:"actor_id"`
	ActorName    string         `dynamodbav:"actor_name,omitempty"`
	OccurredAt   string         `dynamodbav:"occurred_at"`
	Extra        map[string]any `dynamodbav:"extra,omitempty"`
}

// AuditRecordDynamoRepository reads audit records from DynamoDB. Writes happen only
// inside the entity repositories' transactions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: entity_key-index (PK: entity_key, SK: occurred_at)

type AuditRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAuditRecordRepository = (*AuditRecordDynamoRepository)(nil)

func NewAuditRecordDynamoRepository(ddb DynamoAPI, cfg config.DynamoDB) *AuditRecordDynamoRepository {
	return &AuditRecordDynamoRepository{
		ddb:       ddb,
		tableName: cfg.AuditTable,
	}
}

func (r *AuditRecordDynamoRepository) ListByEntity(ctx context.Context, kind entities.EntityKind, entityID string) ([]entities.AuditRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditEntityKeyIndex),
		KeyConditionExpression: aws.String("entity_key = :k"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: entityKey(kind, entityID)},
		},
		ScanIndexForward: aws.Bool(true),
	})

	records := []entities.AuditRecord{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it auditItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromAuditItem(it))
		}
	}
	// Index reads are eventually consistent; keep the order stable regardless.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OccurredAt.Before(records[j].OccurredAt)
	})
	return records, nil
}

func entityKey(kind entities.EntityKind, entityID string) string {
	return string(kind) + "#" + entityID
}

func toAuditItem(a entities.AuditRecord) auditItem {
	return auditItem{
		ID:           a.ID,
		EntityKey:    entityKey(a.EntityKind, a.EntityID),
		EntityKind:   string(a.EntityKind),
		EntityID:     a.EntityID,
		Action:       a.Action,
		StatusBefore: a.StatusBefore,
		StatusAfter:  a.StatusAfter,
		Observation:  a.Observation,
		ActorID:      a.ActorID,
		ActorName:    a.ActorName,
		OccurredAt:   formatTime(a.OccurredAt),
		Extra:        a.Extra,
	}
}

func fromAuditItem(it auditItem) entities.AuditRecord {
	return entities.AuditRecord{
		ID:           it.ID,
		EntityKind:   entities.EntityKind(it.EntityKind),
		EntityID:     it.EntityID,
		Action:       it.Action,
		StatusBefore: it.StatusBefore,
		StatusAfter:  it.StatusAfter,
		Observation:  it.Observation,
		ActorID:      it.ActorID,
		ActorName:    it.ActorName,
		OccurredAt:   parseTime(it.OccurredAt),
		Extra:        it.Extra,
	}
}
