// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// activitiesModel lists the activities assigned to the signed-in user. A
// manager can flip between the personal and the team view; selecting an
// activity opens its line items.
type activitiesModel struct {
	ctx        context.Context
	activities service.ActivityService
	profiles   service.ProfileService

	loading     bool
	managerView bool
	summary     models.ActivitySummary
	manager     models.ManagerActivitySummary
	idx         int
	errMsg      string
}

func newActivitiesModel(ctx context.Context, activities service.ActivityService, profiles service.ProfileService) *activitiesModel {
	return &activitiesModel{
		ctx:        ctx,
		activities: activities,
		profiles:   profiles,
	}
}

func (m *activitiesModel) Init() tea.Cmd {
	m.loading = true
	m.idx = 0
	return m.cmdLoad()
}

func (m *activitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(summaryLoadedMsg); ok {
		m.loading = false
		if loaded.err != nil {
			m.errMsg = humanizeServerUnavailableError(loaded.err)
			return m, nil
		}
		m.errMsg = ""
		m.managerView = loaded.isManager
		m.summary = loaded.summary
		m.manager = loaded.manager
		if m.idx >= len(m.list()) {
			m.idx = 0
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "home"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.list())-1 {
			m.idx++
		}
	case "m":
		if !m.profiles.IsManager(m.ctx) {
			return m, nil
		}
		m.managerView = !m.managerView
		m.loading = true
		return m, m.cmdLoad()
	case "enter":
		list := m.list()
		if m.loading || len(list) == 0 {
			return m, nil
		}
		activity := list[m.idx]
		return m, func() tea.Msg {
			return NavigateTo{Page: "lines", Payload: linesRequestMsg{activity: activity}}
		}
	}

	return m, nil
}

func (m *activitiesModel) View() string {
	if m.loading {
		return renderPage("ACTIVITIES", "Loading...", "esc: back")
	}

	var b strings.Builder
	if m.managerView {
		b.WriteString(fmt.Sprintf("Team view │ Overdue %d │ Due today %d │ Not due %d\n\n",
			m.manager.OverDueCount, m.manager.DueToday, m.manager.NotDueCount))
	} else {
		b.WriteString(fmt.Sprintf("My view │ Pending %d │ Review %d │ Completed %d │ Overdue %d\n\n",
			m.summary.PendingCount, m.summary.ReviewCount, m.summary.CompletedCount, m.summary.OverDueCount))
	}

	list := m.list()
	if len(list) == 0 {
		b.WriteString("No activities.")
	}
	for i, activity := range list {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-12s │ %-30s │ %-10s │ %s\n",
			cursor, activity.ActivityID, fitText(activity.Name, 30), activity.Status, valueOrDash(activity.DueDate)))
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
	}

	hotKeys := "enter: line items │ ↑/↓: move │ esc: back"
	if m.profiles.IsManager(m.ctx) {
		hotKeys = "enter: line items │ m: team/my view │ ↑/↓: move │ esc: back"
	}
	return renderPage("ACTIVITIES", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *activitiesModel) list() []models.Activity {
	if m.managerView {
		return m.manager.Activities
	}
	return m.summary.Activities
}

func (m *activitiesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	activities := m.activities
	managerView := m.managerView

	return func() tea.Msg {
		if managerView {
			summary, err := activities.GetManagerSummary(ctx, service.CallModeManagerView)
			return summaryLoadedMsg{manager: summary, isManager: true, err: err}
		}
		summary, err := activities.GetSummary(ctx, service.CallModeUserActivity)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}
