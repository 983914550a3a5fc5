package main

import (
	"fmt"
	"os"

	"github.com/atomwalk/hrm-client/internal/adapter"
	"github.com/atomwalk/hrm-client/internal/biometric"
	"github.com/atomwalk/hrm-client/internal/client"
	"github.com/atomwalk/hrm-client/internal/config"
	"github.com/atomwalk/hrm-client/internal/crypto"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/internal/store"
	"github.com/atomwalk/hrm-client/internal/tui"
	"github.com/atomwalk/hrm-client/internal/validators"
	"github.com/atomwalk/hrm-client/internal/workers"
	"github.com/atomwalk/hrm-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("hrm-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	localStore, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStore, backendAdapter, crypto.NewKeyChainService(), log)

	prompter := biometric.NewExecPrompter(cfg.App.BiometricCmd, log)
	gate := service.NewAuthGate(services.Session, services.Profiles, backendAdapter, prompter, log)

	intake := service.NewIntakeWorkflow(
		backendAdapter,
		service.NewLineScanner(os.Stdin),
		services.Profiles,
		validators.NewIntakeValidator(),
		log,
	)

	refresh := workers.NewActivityRefreshJob(services.Activities, log)

	ui, err := tui.New(services, gate, intake, refresh, prompter.Available(), models.AppBuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, refresh, cfg.Workers, log)
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
