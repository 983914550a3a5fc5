package tui

import (
	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// re-delivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type gateStartedMsg struct {
	state    service.GateState
	greeting string
}

type pinResultMsg struct {
	state service.GateState
	token models.Token
	err   error
}

type fingerprintResultMsg struct {
	state service.GateState
	token models.Token
	err   error
}

// unlockDoneMsg finalizes the gate flow: RootModel quits the program and
// hands the fresh token back to the caller.
type unlockDoneMsg struct {
	token models.Token
}

type loginResultMsg struct {
	token    models.Token
	username string
	err      error
}

type pinSavedMsg struct {
	err error
}

type pinSetupDoneMsg struct{}

type summaryLoadedMsg struct {
	summary   models.ActivitySummary
	manager   models.ManagerActivitySummary
	isManager bool
	err       error
}

type linesRequestMsg struct {
	activity models.Activity
}

type linesLoadedMsg struct {
	qc  []models.QCLine
	inv []models.InventoryLine
	err error
}

type commitDoneMsg struct {
	err error
}

type scanHandledMsg struct {
	state service.IntakeState
	err   error
}

type submitDoneMsg struct {
	state service.IntakeState
	err   error
}

type serialItemsLoadedMsg struct {
	items []models.InventoryItem
	err   error
}

type serialSavedMsg struct {
	err error
}

type binsLoadedMsg struct {
	bins []models.BinLocation
	err  error
}

type profileLoadedMsg struct {
	profile models.Profile
	offline bool
	err     error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
