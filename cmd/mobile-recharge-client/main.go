package main

import (
	"context"
	"log"
	"os"

	"mobile-recharge-client/internal/app/runtime"
)

func main() {
	ctx := context.Background()

	app, err := runtime.New(ctx)
	if err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}
	runErr := app.Run(ctx, os.Args[1:])
	app.Shutdown(ctx)
	if runErr != nil {
		log.Fatalf("Error: %v", runErr)
	}
}
