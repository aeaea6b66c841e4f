package main

import (
	"context"
	"os/signal"
	"syscall"

	"fast-delivery-orders/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildServiceContainer(ctx)
	app.NewRunner().MustRun(container)
}
