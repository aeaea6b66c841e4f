//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenRepositorySuite struct {
	suite.Suite
	repo *repository.TokenRepo
}

func (s *TokenRepositorySuite) SetupSuite() {
	s.repo = repository.NewTokenRepo(tcPool, testTokensTable)
}

func (s *TokenRepositorySuite) SetupTest() {
	_, err := tcPool.Exec(context.Background(), `TRUNCATE "Tokens"`)
	s.Require().NoError(err)
}

func (s *TokenRepositorySuite) countFor(orderID string) int {
	var n int
	err := tcPool.QueryRow(context.Background(),
		`SELECT count(*) FROM "Tokens" WHERE order_id = $1`, orderID).Scan(&n)
	s.Require().NoError(err)
	return n
}

func (s *TokenRepositorySuite) TestPut_StoresEveryColumn() {
	ctx := context.Background()
	tok := domain.TrackingToken{
		Token:            uuid.NewString(),
		OrderID:          "o-1",
		Status:           domain.EventStatusDelivered,
		Action:           domain.ActionDelivered,
		Customer:         "Ana",
		DeliveredAt:      "2025-01-02T03:04:05.000000",
		CreatedAt:        time.Date(2025, 1, 2, 3, 4, 6, 0, time.UTC),
		NotificationSent: true,
	}
	s.Require().NoError(s.repo.Put(ctx, tok))

	var got domain.TrackingToken
	err := tcPool.QueryRow(ctx, `
		SELECT tracking_token, order_id, status, acao, cliente, entregue_em, created_at, notification_sent
		FROM "Tokens" WHERE tracking_token = $1`, tok.Token,
	).Scan(&got.Token, &got.OrderID, &got.Status, &got.Action, &got.Customer,
		&got.DeliveredAt, &got.CreatedAt, &got.NotificationSent)
	s.Require().NoError(err)
	s.True(tok.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = tok.CreatedAt
	s.Equal(tok, got)
}

func (s *TokenRepositorySuite) TestPut_SameOrderTwiceKeepsBoth() {
	ctx := context.Background()
	base := domain.TrackingToken{
		OrderID:          "o-2",
		Status:           domain.EventStatusCreated,
		Action:           domain.ActionCreated,
		Customer:         domain.DefaultCustomer,
		DeliveredAt:      "2025-01-02T03:04:05.000000",
		CreatedAt:        time.Now().UTC(),
		NotificationSent: true,
	}

	first, second := base, base
	first.Token = uuid.NewString()
	second.Token = uuid.NewString()

	s.Require().NoError(s.repo.Put(ctx, first))
	s.Require().NoError(s.repo.Put(ctx, second))
	s.Equal(2, s.countFor("o-2"))
}

func (s *TokenRepositorySuite) TestPut_DuplicateTokenFails() {
	ctx := context.Background()
	tok := domain.TrackingToken{
		Token:     uuid.NewString(),
		OrderID:   "o-3",
		Status:    domain.EventStatusCreated,
		Action:    domain.ActionCreated,
		Customer:  domain.DefaultCustomer,
		CreatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.repo.Put(ctx, tok))

	err := s.repo.Put(ctx, tok)
	s.Require().Error(err)
	s.True(repository.IsDuplicate(err))
}

func TestTokenRepositorySuite(t *testing.T) {
	suite.Run(t, new(TokenRepositorySuite))
}
