package app

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/dig"

	"fast-delivery-orders/internal/config"
	"fast-delivery-orders/internal/logx"
	"fast-delivery-orders/internal/repository"
	"fast-delivery-orders/internal/repository/dynamo"
	"fast-delivery-orders/internal/service/delivery"
	"fast-delivery-orders/internal/service/orders"
	"fast-delivery-orders/internal/service/tracking"
)

// orderStore is what both order services need from the orders table.
type orderStore interface {
	orders.OrderWriter
	delivery.OrderStore
}

// storeCloser releases store connections. It is never nil.
type storeCloser func()

type storeOut struct {
	dig.Out

	Orders orderStore
	Tokens tracking.TokenWriter
	Closer storeCloser
}

type storeIn struct {
	dig.In

	Ctx    context.Context
	Config *config.Config
	Logger logx.Logger
	Dynamo *dynamodb.Client
}

func registerStore(container *dig.Container, dbConnect dbConnectFunc) error {
	return provideAll(container,
		func(in storeIn) (storeOut, error) {
			return provideStores(in, dbConnect)
		},
	)
}

func provideStores(in storeIn, dbConnect dbConnectFunc) (storeOut, error) {
	cfg := in.Config
	switch cfg.Store {
	case config.StorePostgres:
		pool, err := dbConnect(in.Ctx, in.Logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return storeOut{}, err
		}
		if err := repository.EnsureSchema(in.Ctx, pool, cfg.Tables.Orders, cfg.Tables.Tokens); err != nil {
			pool.Close()
			return storeOut{}, err
		}
		return storeOut{
			Orders: repository.NewOrderRepo(pool, cfg.Tables.Orders),
			Tokens: repository.NewTokenRepo(pool, cfg.Tables.Tokens),
			Closer: pool.Close,
		}, nil
	case config.StoreDynamoDB:
		return storeOut{
			Orders: dynamo.NewOrderStore(in.Dynamo, cfg.Tables.Orders),
			Tokens: dynamo.NewTokenStore(in.Dynamo, cfg.Tables.Tokens),
			Closer: func() {},
		}, nil
	default:
		return storeOut{}, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}
