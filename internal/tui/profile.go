// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// profileModel shows the employee card. The profile is re-fetched on every
// visit and falls back to the locally cached copy when the backend is
// unreachable.
type profileModel struct {
	ctx      context.Context
	profiles service.ProfileService

	loading bool
	offline bool
	profile models.Profile
	status  string
	errMsg  string
}

func newProfileModel(ctx context.Context, profiles service.ProfileService) *profileModel {
	return &profileModel{ctx: ctx, profiles: profiles}
}

func (m *profileModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.offline = msg.offline
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Employee ID copied"
		return m, m.cmdClearStatusLater()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	case "c":
		if m.loading || m.profile.EmpData.EmpID == "" {
			return m, nil
		}
		return m, m.cmdCopyEmpID()
	}

	return m, nil
}

func (m *profileModel) View() string {
	if m.loading {
		return renderPage("PROFILE", "Loading...", "esc: back")
	}

	var b strings.Builder
	emp := m.profile.EmpData
	b.WriteString(fmt.Sprintf("Name        │ %s\n", valueOrDash(emp.Name)))
	b.WriteString(fmt.Sprintf("Employee ID │ %s\n", valueOrDash(emp.EmpID)))
	b.WriteString(fmt.Sprintf("Department  │ %s\n", valueOrDash(emp.DepartmentName)))
	b.WriteString(fmt.Sprintf("Email       │ %s\n", valueOrDash(emp.EmailID)))
	b.WriteString(fmt.Sprintf("Mobile      │ %s\n", valueOrDash(emp.MobileNumber)))
	if m.profile.UserGroup.IsManager {
		b.WriteString("Role        │ manager\n")
	}
	if m.offline {
		b.WriteString("\nShowing the cached copy; the backend is unreachable.\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "c: copy employee ID │ esc: back")
}

func (m *profileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	profiles := m.profiles

	return func() tea.Msg {
		profile, err := profiles.FetchProfile(ctx)
		if err != nil {
			if cached, cacheErr := profiles.CachedProfile(ctx); cacheErr == nil {
				return profileLoadedMsg{profile: cached, offline: true}
			}
			return profileLoadedMsg{err: err}
		}
		return profileLoadedMsg{profile: profile}
	}
}

func (m *profileModel) cmdCopyEmpID() tea.Cmd {
	empID := m.profile.EmpData.EmpID

	return func() tea.Msg {
		if err := clipboard.WriteAll(empID); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *profileModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
