// Package queue feeds the relay from an SQS queue using long polling.
package queue

import (
	"context"
	"time"

	"fast-delivery-orders/internal/logx"
	"fast-delivery-orders/internal/service/tracking"
	"fast-delivery-orders/internal/transport/envelope"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// API is the subset of the SQS client used by Poller.
type API interface {
	ReceiveMessage(ctx context.Context, in *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, in *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// HandleFunc relays a single message body.
type HandleFunc func(ctx context.Context, message string) tracking.Outcome

// Poller receives messages in batches and deletes those that were stored or skipped.
// Failed messages stay on the queue and reappear after the visibility timeout.
type Poller struct {
	api         API
	queueURL    string
	waitTime    time.Duration
	maxMessages int
	handler     HandleFunc
	logger      logx.Logger
	backoff     time.Duration
}

// NewPoller creates a Poller.
func NewPoller(api API, queueURL string, waitTime time.Duration, maxMessages int, h HandleFunc, logger logx.Logger) *Poller {
	if logger == nil {
		logger = logx.Nop()
	}
	if maxMessages <= 0 || maxMessages > 10 {
		maxMessages = 10
	}
	return &Poller{
		api:         api,
		queueURL:    queueURL,
		waitTime:    waitTime,
		maxMessages: maxMessages,
		handler:     h,
		logger:      logger.With(logx.String("queue_url", queueURL)),
		backoff:     time.Second,
	}
}

// Run polls until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := p.PollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Error("sqs receive failed", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.backoff):
			}
		}
	}
}

// PollOnce receives one batch and relays it. It returns the number of messages received.
func (p *Poller) PollOnce(ctx context.Context) (int, error) {
	out, err := p.api.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(p.queueURL),
		MaxNumberOfMessages: int32(p.maxMessages),
		WaitTimeSeconds:     int32(p.waitTime / time.Second),
	})
	if err != nil {
		return 0, err
	}

	for _, msg := range out.Messages {
		p.handle(ctx, msg)
	}
	return len(out.Messages), nil
}

func (p *Poller) handle(ctx context.Context, msg types.Message) {
	id := aws.ToString(msg.MessageId)
	outcome := p.handler(ctx, envelope.Unwrap(aws.ToString(msg.Body)))
	if outcome == tracking.OutcomeFailed {
		p.logger.Warn("sqs message failed, leaving on queue", logx.String("message_id", id))
		return
	}

	if _, err := p.api.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(p.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	}); err != nil {
		p.logger.Error("sqs delete failed", logx.String("message_id", id), logx.Err(err))
	}
}
