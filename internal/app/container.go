package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"fast-delivery-orders/internal/config"
	"fast-delivery-orders/internal/http/handlers"
	"fast-delivery-orders/internal/http/middleware"
	"fast-delivery-orders/internal/http/router"
	"fast-delivery-orders/internal/logx"
	"fast-delivery-orders/internal/metrics"
	"fast-delivery-orders/internal/notify"
	"fast-delivery-orders/internal/service/delivery"
	"fast-delivery-orders/internal/service/orders"
	"fast-delivery-orders/internal/service/tracking"
	"fast-delivery-orders/internal/transport/apigw"
	"fast-delivery-orders/internal/transport/envelope"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	awsConfig  func(context.Context, *config.Config) (aws.Config, error)
	dbConnect  dbConnectFunc
	logFatalf  func(string, ...interface{})
	localRelay bool
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		awsConfig:  loadAWSConfig,
		dbConnect:  connectDbWithRetry,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig replaces config loading.
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithAWSConfig replaces AWS SDK config loading.
func (b *ContainerBuilder) WithAWSConfig(fn func(context.Context, *config.Config) (aws.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.awsConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// WithLocalRelay makes the publisher hand events straight to the tracking processor
// when no notification backend is configured.
func (b *ContainerBuilder) WithLocalRelay() *ContainerBuilder {
	b.localRelay = true
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerClients(container, b.awsConfig); err != nil {
		return nil, fmt.Errorf("clients: %w", err)
	}
	if err := registerStore(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if err := registerNotify(container, b.localRelay); err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerLambda(container); err != nil {
		return nil, fmt.Errorf("lambda: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the container used by the lambdas and the worker.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildServiceContainer builds the container of the local HTTP service.
func MustBuildServiceContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().WithLocalRelay().MustBuild(ctx)
}

// Resolve extracts a single value of type T from the container.
func Resolve[T any](container *dig.Container) (T, error) {
	var out T
	err := container.Invoke(func(v T) { out = v })
	return out, err
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		loadConfig,
		newRegistry,
		provideMetrics,
	)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

type metricsOut struct {
	dig.Out

	OrdersCreated   prometheus.Counter     `name:"orders_created_total"`
	OrdersDelivered prometheus.Counter     `name:"orders_delivered_total"`
	RelayRecords    *prometheus.CounterVec `name:"relay_records_total"`
	Published       *prometheus.CounterVec `name:"notifications_published_total"`
	HTTP            middleware.HTTPMetrics
}

func provideMetrics(reg *prometheus.Registry) (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.OrdersCreated, err = metrics.Register(reg, "orders_created_total", metrics.NewOrdersCreatedTotal()); err != nil {
		return out, err
	}
	if out.OrdersDelivered, err = metrics.Register(reg, "orders_delivered_total", metrics.NewOrdersDeliveredTotal()); err != nil {
		return out, err
	}
	if out.RelayRecords, err = metrics.Register(reg, "relay_records_total", metrics.NewRelayRecordsTotal()); err != nil {
		return out, err
	}
	if out.Published, err = metrics.Register(reg, "notifications_published_total", metrics.NewNotificationsPublishedTotal()); err != nil {
		return out, err
	}
	if out.HTTP.Requests, err = metrics.Register(reg, "http_requests_total", metrics.NewHTTPRequestsTotal()); err != nil {
		return out, err
	}
	if out.HTTP.Duration, err = metrics.Register(reg, "http_request_duration_seconds", metrics.NewHTTPRequestDuration()); err != nil {
		return out, err
	}
	return out, nil
}

type serviceIn struct {
	dig.In

	Config          *config.Config
	Logger          logx.Logger
	Orders          orderStore
	Tokens          tracking.TokenWriter
	OrdersCreated   prometheus.Counter     `name:"orders_created_total"`
	OrdersDelivered prometheus.Counter     `name:"orders_delivered_total"`
	RelayRecords    *prometheus.CounterVec `name:"relay_records_total"`
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(in serviceIn) *tracking.Processor {
			return tracking.NewProcessor(in.Tokens, in.RelayRecords, in.Config.OperationTimeout, in.Logger)
		},
		func(in serviceIn, pub notify.Publisher) *orders.Service {
			return orders.NewService(in.Orders, pub, in.OrdersCreated, in.Config.OperationTimeout, in.Logger)
		},
		func(in serviceIn, pub notify.Publisher) *delivery.Service {
			return delivery.NewService(in.Orders, pub, in.OrdersDelivered, in.Config.OperationTimeout, in.Logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(h *handlers.Handlers, logger logx.Logger, m middleware.HTTPMetrics, reg *prometheus.Registry) http.Handler {
		return router.New(h,
			router.WithMiddleware(middleware.Observability(logger, m)),
			router.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
		)
	}
	return provideAll(container,
		func(logger logx.Logger, o *orders.Service, d *delivery.Service) *handlers.Handlers {
			return handlers.New(logger, o, d)
		},
		routerProvider,
		serverProvider,
	)
}

func registerLambda(container *dig.Container) error {
	return provideAll(container,
		func(o *orders.Service, d *delivery.Service, logger logx.Logger) *apigw.Handlers {
			return apigw.New(o, d, logger)
		},
		func(p *tracking.Processor, logger logx.Logger) *envelope.Handler {
			return envelope.NewHandler(p, logger)
		},
	)
}
