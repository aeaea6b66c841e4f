package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"fast-delivery-orders/internal/app"
	"fast-delivery-orders/internal/transport/envelope"
)

func main() {
	container := app.MustBuildContainer(context.Background())

	h, err := app.Resolve[*envelope.Handler](container)
	if err != nil {
		log.Fatalf("resolve handler: %v", err)
	}
	lambda.Start(h.Handle)
}
