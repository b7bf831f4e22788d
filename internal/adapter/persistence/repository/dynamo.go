package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"gestao_backoffice/internal/domain/entities"
	"gestao_backoffice/internal/workflow"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the part of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

var (
	ErrAlreadyExists = errors.New("item already exists")

	errEntityMissing   = errors.New("entity does not exist")
	errAuditDuplicated = errors.New("audit record already exists")
)

func putNew(ctx context.Context, ddb DynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return ErrAlreadyExists
	}
	return err
}

// getByID unmarshals the item with the given id into I. ok is false when there is none.
func getByID[I any](ctx context.Context, ddb DynamoAPI, table, id string) (it I, ok bool, err error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func scanAll[I any](ctx context.Context, ddb DynamoAPI, table string) ([]I, error) {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	var items []I
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it I
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}
	return items, nil
}

// commitTransition replaces an existing entity item and inserts its audit record in
// one transaction, so neither is visible without the other.
func commitTransition(ctx context.Context, ddb DynamoAPI, entityTable, auditTable string, entityItem any, audit entities.AuditRecord) error {
	entityAV, err := attributevalue.MarshalMap(entityItem)
	if err != nil {
		return err
	}
	auditAV, err := attributevalue.MarshalMap(toAuditItem(audit))
	if err != nil {
		return err
	}

	_, err = ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(entityTable),
				Item:                     entityAV,
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(auditTable),
				Item:                     auditAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err == nil {
		return nil
	}

	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for i, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
				continue
			}
			if i == 0 {
				return errEntityMissing
			}
			return errAuditDuplicated
		}
	}
	return err
}

// toResult turns a commitTransition error into the gateway envelope. Transport errors
// are returned as-is so the engine can fall back to its generic message.
func toResult[E any](kind entities.EntityKind, entityID string, entity E, err error) (workflow.Result[E], error) {
	switch {
	case err == nil:
		return workflow.Success(entity), nil
	case errors.Is(err, errEntityMissing):
		return workflow.Failure[E](http.StatusNotFound, fmt.Sprintf("%s %s not found", kind, entityID)), nil
	case errors.Is(err, errAuditDuplicated):
		return workflow.Failure[E](http.StatusConflict, "audit record already registered"), nil
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("[%s][repository] update timed out entity_id=%s", kind, entityID)
		return workflow.Failure[E](http.StatusGatewayTimeout, "storage did not answer in time"), nil
	default:
		log.Printf("[%s][repository] update failed entity_id=%s err=%v", kind, entityID, err)
		return workflow.Result[E]{}, err
	}
}
