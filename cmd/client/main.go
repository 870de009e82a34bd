package main

import (
	"errors"
	"fmt"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/client"
	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("comms-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend := adapter.NewHTTPBackendClient(adapter.HTTPClientConfig{
		BaseURL: cfg.Client.ServerURL,
		Timeout: cfg.Client.RequestTimeout,
	})

	// Voice-note processing is optional: without an API key the client
	// runs with the feature disabled.
	transcriber, err := adapter.NewGeminiClient(cfg.AI)
	if err != nil {
		if !errors.Is(err, adapter.ErrAIKeyMissing) {
			log.Fatal().Err(err).Msg("create transcription client")
		}
		transcriber = nil
		log.Info().Msg("no AI API key configured, voice-note processing disabled")
	}

	storages, err := store.NewClientStorages(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	reconciler := session.NewReconciler(backend, log)
	ui := tui.New(reconciler, backend, transcriber, storages.Messages, log)

	app, err := client.NewApp(backend, reconciler, storages, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
