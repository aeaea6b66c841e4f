package dynamo

import (
	"context"
	"fmt"
	"time"

	"fast-delivery-orders/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const markDeliveredExpr = "SET #status = :status, updated_at = :timestamp"

// OrderStore keeps orders in a DynamoDB table keyed by order_id.
type OrderStore struct {
	api   API
	table string
}

// NewOrderStore creates an OrderStore over the given table.
func NewOrderStore(api API, table string) *OrderStore {
	return &OrderStore{api: api, table: table}
}

// Put writes the full order item.
func (s *OrderStore) Put(ctx context.Context, o *domain.Order) error {
	item, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", o.ID, err)
	}
	if _, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put order %s: %w", o.ID, err)
	}
	return nil
}

// Get returns the order by id, or (nil, nil) when the item does not exist.
func (s *OrderStore) Get(ctx context.Context, id string) (*domain.Order, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       orderKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	return it.toDomain()
}

// MarkDelivered sets status DELIVERED and updated_at without any condition.
func (s *OrderStore) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	_, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.table),
		Key:              orderKey(id),
		UpdateExpression: aws.String(markDeliveredExpr),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: string(domain.StatusDelivered)},
			":timestamp": &types.AttributeValueMemberS{Value: domain.FormatTime(at)},
		},
	})
	if err != nil {
		return fmt.Errorf("mark order %s delivered: %w", id, err)
	}
	return nil
}

func orderKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"order_id": &types.AttributeValueMemberS{Value: id},
	}
}
