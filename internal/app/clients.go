package app

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/dig"

	"fast-delivery-orders/internal/config"
)

func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWS.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

// endpoint returns the override for local stacks such as LocalStack, or nil.
func endpoint(cfg *config.Config) *string {
	if cfg.AWS.Endpoint == "" {
		return nil
	}
	return aws.String(cfg.AWS.Endpoint)
}

// registerClients provides AWS SDK clients. Building them needs no network access.
func registerClients(
	container *dig.Container,
	awsConfig func(context.Context, *config.Config) (aws.Config, error),
) error {
	return provideAll(container,
		awsConfig,
		func(awsCfg aws.Config, cfg *config.Config) *dynamodb.Client {
			return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
				o.BaseEndpoint = endpoint(cfg)
			})
		},
		func(awsCfg aws.Config, cfg *config.Config) *sns.Client {
			return sns.NewFromConfig(awsCfg, func(o *sns.Options) {
				o.BaseEndpoint = endpoint(cfg)
			})
		},
		func(awsCfg aws.Config, cfg *config.Config) *sqs.Client {
			return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
				o.BaseEndpoint = endpoint(cfg)
			})
		},
	)
}
