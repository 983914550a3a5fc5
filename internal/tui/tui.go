package tui

import (
	"context"
	"errors"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/internal/workers"
	"github.com/atomwalk/hrm-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services        *service.ClientServices
	gate            service.AuthGate
	intake          service.IntakeWorkflow
	refresh         workers.ActivityRefreshJob
	sensorAvailable bool
	buildInfo       models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, gate service.AuthGate, intake service.IntakeWorkflow, refresh workers.ActivityRefreshJob, sensorAvailable bool, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:        services,
		gate:            gate,
		intake:          intake,
		refresh:         refresh,
		sensorAvailable: sensorAvailable,
		buildInfo:       buildInfo,
		logger:          logger,
	}, nil
}

// GateFlow runs the unlock program: the gate screens, the full credential
// login fallback and the PIN setup page. It returns the fresh backend token.
func (t *TUI) GateFlow(ctx context.Context) (models.Token, error) {
	pages := map[string]tea.Model{
		"gate":     NewGateModel(ctx, t.gate),
		"login":    NewLoginModel(ctx, t.services.Session),
		"pinsetup": NewPinSetupModel(ctx, t.services.Session, t.sensorAvailable),
	}

	t.logger.Info().Bool("sensor_available", t.sensorAvailable).Msg("gate program started")

	root := NewRootModel(pages, "gate", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Token{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Token{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("gate program quit by user")
		return models.Token{}, ErrUserQuit
	}

	return result.resultToken, nil
}

// MainLoop runs the signed-in program. It returns true when the user logged
// out, in which case the caller restarts at the gate.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	pages := map[string]tea.Model{
		"home":       newHomeModel(ctx, t.services.Session, t.services.Profiles, t.refresh),
		"activities": newActivitiesModel(ctx, t.services.Activities, t.services.Profiles),
		"lines":      newLinesModel(ctx, t.services.Activities),
		"intake":     newIntakeModel(ctx, t.intake),
		"serial":     newSerialModel(ctx, t.services.Activities),
		"profile":    newProfileModel(ctx, t.services.Profiles),
	}

	t.logger.Info().Msg("main program started")

	root := NewRootModel(pages, "home", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	t.logger.Info().Bool("logout", result.logout).Msg("main program finished")
	return result.logout, nil
}
