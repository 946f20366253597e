package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/game-discovery/internal/app"
	"github.com/jbeshir/game-discovery/internal/command"
	"github.com/jbeshir/game-discovery/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "profile rebuild failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "profile rebuild completed",
		"rebuilt", result.Rebuilt,
		"failed", result.Failed,
	)
}

func run(ctx context.Context) (command.RebuildStaleProfilesResult, error) {
	stores, err := app.SetupStores(ctx)
	if err != nil {
		return command.RebuildStaleProfilesResult{}, fmt.Errorf("setting up stores: %w", err)
	}

	getOrBuildCmd := command.NewGetOrBuildProfile(
		stores.Profiles,
		stores.Activity,
		stores.Directory,
		stores.Directory,
		app.DefaultProfileConfig(),
	)

	rebuildCmd := command.NewRebuildStaleProfiles(
		stores.Profiles,
		getOrBuildCmd,
		app.DefaultRebuildStaleProfilesConfig(),
	)

	return rebuildCmd.Execute(ctx, command.Empty{})
}
