package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dprasetya/storyline/internal/buildinfo"
	"github.com/dprasetya/storyline/internal/client/cli"
	"github.com/dprasetya/storyline/internal/client/config"
	"github.com/dprasetya/storyline/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
