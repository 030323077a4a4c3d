package main

import (
	"context"
	"log"

	"github.com/dalemusser/hellocountry/internal/app/bootstrap"
	"github.com/dalemusser/waffle/logging"
	"github.com/dalemusser/waffle/server"
)

func main() {
	// The app logger is built from config inside Run; signals are reported
	// through the bootstrap logger until then.
	ctx, cancel := server.WithShutdownSignals(context.Background(), logging.BootstrapLogger())
	defer cancel()

	if err := bootstrap.Run(ctx, bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
