package dynamo

import (
	"context"
	"fmt"

	"fast-delivery-orders/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// TokenStore keeps tracking tokens in a DynamoDB table keyed by tracking_token.
type TokenStore struct {
	api   API
	table string
}

// NewTokenStore creates a TokenStore over the given table.
func NewTokenStore(api API, table string) *TokenStore {
	return &TokenStore{api: api, table: table}
}

// Put writes a tracking token item.
func (s *TokenStore) Put(ctx context.Context, t domain.TrackingToken) error {
	item, err := attributevalue.MarshalMap(toTokenItem(t))
	if err != nil {
		return fmt.Errorf("marshal tracking token %s: %w", t.Token, err)
	}
	if _, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put tracking token %s: %w", t.Token, err)
	}
	return nil
}
