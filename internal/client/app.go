package client

import (
	"context"
	"errors"

	"github.com/atomwalk/hrm-client/internal/config"
	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/internal/tui"
	"github.com/atomwalk/hrm-client/internal/workers"
)

// App runs the client lifecycle: the unlock gate first, then the signed-in
// main loop with the activity refresh running in the background. A logout
// stops the refresh and restarts at the gate.
type App struct {
	services   *service.ClientServices
	ui         *tui.TUI
	refresh    workers.ActivityRefreshJob
	workersCfg config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, refresh workers.ActivityRefreshJob, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || refresh == nil {
		return nil, errors.New("client app: missing dependency")
	}

	return &App{
		services:   services,
		ui:         ui,
		refresh:    refresh,
		workersCfg: workersCfg,
		logger:     logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	token, err := a.ui.GateFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.logger.Info().Bool("token_present", token.Key != "").Msg("session established")

	// Warm the profile cache so the home screen greets by name.
	if _, err := a.services.Profiles.FetchProfile(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("profile not cached")
	}

	background := workers.NewWorkers(workers.WorkerFunc(func() {
		a.refresh.Start(ctx, service.CallModeUserActivity, a.workersCfg.RefreshInterval)
	}))
	background.Run()
	defer a.refresh.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.refresh.Stop()
		return a.Run()
	}

	return nil
}
