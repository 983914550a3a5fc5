package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/internal/workers"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// homeModel is the landing page after unlock. It shows the cached activity
// counters kept fresh by the background refresh job and routes to the other
// pages.
type homeModel struct {
	ctx      context.Context
	session  service.SessionManager
	profiles service.ProfileService
	refresh  workers.ActivityRefreshJob

	items      []string
	idx        int
	loggingOut bool
	errMsg     string
}

func newHomeModel(ctx context.Context, session service.SessionManager, profiles service.ProfileService, refresh workers.ActivityRefreshJob) *homeModel {
	return &homeModel{
		ctx:      ctx,
		session:  session,
		profiles: profiles,
		refresh:  refresh,
		items:    []string{"Activities", "Inventory intake", "Serial intake", "Profile", "Log out"},
	}
}

func (m *homeModel) Init() tea.Cmd {
	return nil
}

func (m *homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(logoutDoneMsg); ok {
		m.loggingOut = false
		if result.err != nil {
			m.errMsg = result.err.Error()
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "activities"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "intake"} }
		case 2:
			return m, func() tea.Msg { return NavigateTo{Page: "serial"} }
		case 3:
			return m, func() tea.Msg { return NavigateTo{Page: "profile"} }
		case 4:
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *homeModel) View() string {
	var b strings.Builder

	if name := m.profiles.CachedProfileName(m.ctx); name != "" {
		b.WriteString("Signed in as ")
		b.WriteString(name)
		b.WriteString("\n\n")
	}

	if summary, ok := m.refresh.Latest(); ok {
		b.WriteString(fmt.Sprintf("Pending %d │ Review %d │ Completed %d │ Overdue %d\n\n",
			summary.PendingCount, summary.ReviewCount, summary.CompletedCount, summary.OverDueCount))
	}

	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	if m.loggingOut {
		b.WriteString("\n[Signing out...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: about")
}

func (m *homeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}
