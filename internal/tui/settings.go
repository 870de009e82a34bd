package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/models"
)

// SettingsModel shows the signed-in profile and lets the user switch between
// the two authorization roles. The change goes through the reconciler, which
// updates only the role field of the current snapshot.
type SettingsModel struct {
	ctx        context.Context
	reconciler *session.Reconciler

	state  session.State
	roles  []models.Role
	idx    int
	busy   bool
	status string
	errMsg string
}

func NewSettingsModel(ctx context.Context, reconciler *session.Reconciler) *SettingsModel {
	return &SettingsModel{
		ctx:        ctx,
		reconciler: reconciler,
		state:      reconciler.State(),
		roles:      []models.Role{models.RoleUser, models.RoleAdmin},
	}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	m.state = m.reconciler.State()
	m.idx = 0
	if m.state.User != nil && m.state.User.Role == models.RoleAdmin {
		m.idx = 1
	}
	return nil
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = msg.state
		return m, nil
	case roleChangedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Role updated"
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
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
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.roles)-1 {
			m.idx++
		}
	case "enter":
		if m.busy {
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdSetRole(m.roles[m.idx])
	}

	return m, nil
}

func (m *SettingsModel) View() string {
	var b strings.Builder

	if user := m.state.User; user != nil {
		b.WriteString(fmt.Sprintf("Name        │ %s\n", user.Name))
		b.WriteString(fmt.Sprintf("Email       │ %s\n", user.Email))
		b.WriteString(fmt.Sprintf("Department  │ %s\n", user.Department))
		b.WriteString(fmt.Sprintf("Role        │ %s\n", user.Role))
	}

	b.WriteString("\nSwitch role:\n")
	for i, role := range m.roles {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(string(role))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\nUpdating...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SETTINGS", b.String(), "↑/↓: move │ enter: apply │ esc: back")
}

func (m *SettingsModel) cmdSetRole(role models.Role) tea.Cmd {
	return func() tea.Msg {
		err := m.reconciler.SetRole(m.ctx, role)
		return roleChangedMsg{err: err}
	}
}
