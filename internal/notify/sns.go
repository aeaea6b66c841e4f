package notify

import (
	"context"
	"fmt"

	"fast-delivery-orders/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSAPI is the subset of the SNS client used by SNSPublisher.
type SNSAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes events to a topic.
type SNSPublisher struct {
	api      SNSAPI
	topicARN string
}

// NewSNS creates an SNSPublisher for topicARN.
func NewSNS(api SNSAPI, topicARN string) *SNSPublisher {
	return &SNSPublisher{api: api, topicARN: topicARN}
}

// Publish implements Publisher.
func (p *SNSPublisher) Publish(ctx context.Context, ev domain.LifecycleEvent) error {
	msg, err := Encode(ev)
	if err != nil {
		return err
	}
	if _, err := p.api.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(msg),
	}); err != nil {
		return fmt.Errorf("sns publish for order %s: %w", ev.OrderID, err)
	}
	return nil
}
