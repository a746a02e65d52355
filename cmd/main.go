package main

import (
	"context"
	"os"

	"github.com/gta5broo/cizgihubdeneme/internal/auth"
	"github.com/gta5broo/cizgihubdeneme/internal/repositories"
	"github.com/gta5broo/cizgihubdeneme/internal/server"
	"github.com/gta5broo/cizgihubdeneme/internal/services"
	"github.com/gta5broo/cizgihubdeneme/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open session database: %v", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := repositories.Migrate(db); err != nil {
		logger.Fatalf("failed to migrate session database: %v", err)
	}

	apiService := services.NewCizgiHubService(config.API.BaseURL, nil, config.API.RateLimit)
	sessionRepo := repositories.NewSessionRepository(db)
	sessionManager := auth.NewManager(apiService, sessionRepo, logger)

	newReceiver := func() (auth.Receiver, error) {
		return server.NewCallbackServer(config.Auth.CallbackHost, config.Auth.CallbackPort, logger)
	}
	flow := auth.NewFlow(sessionManager, config.Auth.ProviderURL, newReceiver, logger)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		API:     apiService,
		Session: sessionManager,
		Flow:    flow,
		DB:      db,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "cizgihub",
		Usage:    "Browse and watch Turkish-subtitled animated shows from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
