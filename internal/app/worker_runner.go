package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/dig"

	"fast-delivery-orders/internal/config"
	"fast-delivery-orders/internal/logx"
	"fast-delivery-orders/internal/service/tracking"
	"fast-delivery-orders/internal/transport/kafka"
	"fast-delivery-orders/internal/transport/queue"
)

// source feeds lifecycle event messages to the relay until ctx is done.
type source interface {
	Run(ctx context.Context) error
}

// sourceCloser releases the source's connections. It is never nil.
type sourceCloser func() error

type sourceOut struct {
	dig.Out

	Source source
	Closer sourceCloser
}

type sourceIn struct {
	dig.In

	Config *config.Config
	Logger logx.Logger
	SQS    *sqs.Client
	Relay  *tracking.Processor
}

var newKafkaConsumer = kafka.NewConsumer

func registerWorker(container *dig.Container) error {
	return provideAll(container, provideSource)
}

func provideSource(in sourceIn) (sourceOut, error) {
	cfg := in.Config
	switch cfg.Worker.Source {
	case config.WorkerSourceSQS:
		if cfg.Notify.QueueURL == "" {
			return sourceOut{}, fmt.Errorf("worker source sqs requires SQS_QUEUE_URL")
		}
		p := queue.NewPoller(in.SQS, cfg.Notify.QueueURL, cfg.Worker.WaitTime, cfg.Worker.MaxMessages, in.Relay.Handle, in.Logger)
		return sourceOut{Source: p, Closer: func() error { return nil }}, nil
	case config.WorkerSourceKafka:
		c, err := newKafkaConsumer(in.Logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, in.Relay.Handle)
		if err != nil {
			return sourceOut{}, err
		}
		if c == nil {
			return sourceOut{}, fmt.Errorf("worker source kafka requires KAFKA_BROKERS and KAFKA_TOPIC")
		}
		return sourceOut{Source: c, Closer: c.Close}, nil
	default:
		return sourceOut{}, fmt.Errorf("unknown worker source %q", cfg.Worker.Source)
	}
}

// WorkerRunner runs the relay worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	cfg *config.Config,
	logger logx.Logger,
	src source,
	closeSource sourceCloser,
	closeStore storeCloser,
) error {
	if src == nil {
		return fmt.Errorf("relay source is nil: worker container misconfigured")
	}
	defer closeWorker(logger, closeSource, closeStore)

	logger.Info("relay worker started", logx.String("source", cfg.Worker.Source))
	return src.Run(ctx)
}

func closeWorker(logger logx.Logger, closeSource sourceCloser, closeStore storeCloser) {
	if closeSource != nil {
		if err := closeSource(); err != nil {
			logger.Error("source close error", logx.Err(err))
		}
	}
	if closeStore != nil {
		closeStore()
	}
}
