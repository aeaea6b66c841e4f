package app

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"fast-delivery-orders/internal/config"
	"fast-delivery-orders/internal/logx"
	"fast-delivery-orders/internal/notify"
	"fast-delivery-orders/internal/service/tracking"
)

const backendDirect = "direct"

// publisherCloser releases broker connections held by the publisher. It is never nil.
type publisherCloser func() error

type publisherOut struct {
	dig.Out

	Publisher notify.Publisher
	Closer    publisherCloser
}

type publisherIn struct {
	dig.In

	Config    *config.Config
	Logger    logx.Logger
	Published *prometheus.CounterVec `name:"notifications_published_total"`
	SNS       *sns.Client
	SQS       *sqs.Client
	Relay     *tracking.Processor
}

var newKafkaProducer = notify.NewKafkaProducer

func registerNotify(container *dig.Container, localRelay bool) error {
	return provideAll(container,
		func(in publisherIn) (publisherOut, error) {
			return providePublisher(in, localRelay)
		},
	)
}

func providePublisher(in publisherIn, localRelay bool) (publisherOut, error) {
	cfg := in.Config
	noClose := func() error { return nil }

	var (
		pub    notify.Publisher
		closer publisherCloser = noClose
	)
	switch cfg.Notify.Backend {
	case config.NotifySNS:
		pub = notify.NewSNS(in.SNS, cfg.Notify.TopicARN)
	case config.NotifySQS:
		pub = notify.NewSQS(in.SQS, cfg.Notify.QueueURL)
	case config.NotifyKafka:
		producer, err := newKafkaProducer(cfg.Kafka.Brokers)
		if err != nil {
			return publisherOut{}, err
		}
		kp := notify.NewKafka(producer, cfg.Kafka.Topic)
		pub, closer = kp, kp.Close
	case config.NotifyNone, "":
		if !localRelay {
			in.Logger.Info("notifications disabled")
			return publisherOut{Publisher: notify.Nop{}, Closer: noClose}, nil
		}
		in.Logger.Info("notifications relayed in-process")
		return publisherOut{
			Publisher: notify.NewInstrumented(notify.NewDirect(in.Relay.Sink, in.Logger), backendDirect, in.Published, in.Logger),
			Closer:    noClose,
		}, nil
	default:
		return publisherOut{}, fmt.Errorf("unknown notify backend %q", cfg.Notify.Backend)
	}

	return publisherOut{
		Publisher: notify.NewInstrumented(pub, cfg.Notify.Backend, in.Published, in.Logger),
		Closer:    closer,
	}, nil
}
