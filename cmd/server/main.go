package main

import (
	"context"
	"fmt"

	"github.com/joms1025/company-management-app/internal/config"
	httphandler "github.com/joms1025/company-management-app/internal/handler/http"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/server"
	"github.com/joms1025/company-management-app/internal/service"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("comms-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("closing database failed")
		}
	}()

	if err = migrations.Migrate(repos.DB().DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(repos, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
