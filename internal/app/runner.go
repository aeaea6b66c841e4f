package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/dig"

	"fast-delivery-orders/internal/logx"
)

// Runner runs the local HTTP service
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger, lerr := Resolve[logx.Logger](container)
	if lerr != nil {
		logger = NewLogger()
	}
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		panic(err)
	}
}

func run(container *dig.Container) error {
	return container.Invoke(serve)
}

func serve(
	ctx context.Context,
	server *http.Server,
	logger logx.Logger,
	closeStore storeCloser,
	closePublisher publisherCloser,
) error {
	startServer(server, logger)
	waitForShutdown(ctx, logger)
	gracefulShutdown(server, logger, 15*time.Second)
	closeResources(server, logger, closeStore, closePublisher)
	return ctx.Err()
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("service-orders listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.Err(err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down service-orders")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(server *http.Server, logger logx.Logger, closeStore storeCloser, closePublisher publisherCloser) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
	if closePublisher != nil {
		if err := closePublisher(); err != nil {
			logger.Error("publisher close error", logx.Err(err))
		}
	}
	if closeStore != nil {
		closeStore()
	}
}
