package notify

import (
	"context"
	"fmt"

	"fast-delivery-orders/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI is the subset of the SQS client used by SQSPublisher.
type SQSAPI interface {
	SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends events straight to a queue.
type SQSPublisher struct {
	api      SQSAPI
	queueURL string
}

// NewSQS creates an SQSPublisher for queueURL.
func NewSQS(api SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{api: api, queueURL: queueURL}
}

// Publish implements Publisher.
func (p *SQSPublisher) Publish(ctx context.Context, ev domain.LifecycleEvent) error {
	msg, err := Encode(ev)
	if err != nil {
		return err
	}
	if _, err := p.api.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(msg),
	}); err != nil {
		return fmt.Errorf("sqs send for order %s: %w", ev.OrderID, err)
	}
	return nil
}
