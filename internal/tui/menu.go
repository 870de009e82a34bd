package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/session"
)

// MenuModel is the signed-in dashboard: it shows who is signed in and routes
// to the feature screens. Logout goes through the reconciler, which clears
// the local session even when the server call fails.
type MenuModel struct {
	ctx        context.Context
	reconciler *session.Reconciler

	items  []string
	pages  []string
	idx    int
	state  session.State
	status string
}

func NewMenuModel(ctx context.Context, reconciler *session.Reconciler) *MenuModel {
	return &MenuModel{
		ctx:        ctx,
		reconciler: reconciler,
		items:      []string{"Group chat", "Tasks", "Voice notes", "Settings", "Sign out"},
		pages:      []string{"chat", "tasks", "voice", "settings", ""},
		state:      reconciler.State(),
	}
}

func (m *MenuModel) Init() tea.Cmd {
	m.status = ""
	m.state = m.reconciler.State()
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = msg.state
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			// Locally we are signed out regardless; the router already
			// switched to the login page by the time this note lands.
			m.status = humanizeServerUnavailableError(msg.err)
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
		if page := m.pages[m.idx]; page != "" {
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if user := m.state.User; user != nil {
		b.WriteString(fmt.Sprintf("%s <%s>\n", user.Name, user.Email))
		b.WriteString(fmt.Sprintf("%s │ %s\n\n", user.Department, user.Role))
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	if m.state.Loading {
		b.WriteString("\nWorking...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("COMMS", b.String(), "↑/↓: move │ enter: open")
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		err := m.reconciler.Logout(m.ctx)
		return logoutDoneMsg{err: err}
	}
}
