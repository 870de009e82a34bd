package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/models"
)

// RegisterModel is the Bubble Tea model for the account-creation screen:
// name, email and password inputs plus a department picker. Registration may
// finish in two ways, both surfaced here: an immediate session (the router
// navigates to the menu) or a confirmation-pending notice.
type RegisterModel struct {
	ctx        context.Context
	reconciler *session.Reconciler

	inputs      []textinput.Model
	departments []models.Department
	deptIdx     int

	// focus runs over inputs first, then the department picker.
	focus      int
	submitting bool
	info       string
	errMsg     string
}

func NewRegisterModel(ctx context.Context, reconciler *session.Reconciler) *RegisterModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "display name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	departments := models.Departments()
	deptIdx := 0
	for i, d := range departments {
		if d == models.DefaultDepartment {
			deptIdx = i
		}
	}

	return &RegisterModel{
		ctx:         ctx,
		reconciler:  reconciler,
		inputs:      []textinput.Model{nameInput, emailInput, passwordInput},
		departments: departments,
		deptIdx:     deptIdx,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.submitting = false
	m.info = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.info = result.info
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "left":
			if m.departmentFocused() {
				if m.deptIdx > 0 {
					m.deptIdx--
				}
				return m, nil
			}
		case "right":
			if m.departmentFocused() {
				if m.deptIdx < len(m.departments)-1 {
					m.deptIdx++
				}
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			input := session.RegisterInput{
				Name:       strings.TrimSpace(m.inputs[0].Value()),
				Email:      strings.TrimSpace(m.inputs[1].Value()),
				Password:   m.inputs[2].Value(),
				Role:       models.RoleUser,
				Department: m.departments[m.deptIdx],
			}
			if input.Name == "" || input.Email == "" || input.Password == "" {
				m.errMsg = session.MsgRegistrationFields
				return m, nil
			}

			m.errMsg = ""
			m.info = ""
			m.submitting = true
			return m, m.cmdRegister(input)
		}
	}

	if m.departmentFocused() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Name        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email       │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password    │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Department  │ ")
	b.WriteString(m.departmentLine())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nCreating the account...\n")
	}
	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(m.info)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(
		"CREATE ACCOUNT",
		b.String(),
		"enter: submit │ tab: next field │ ←/→: department │ esc: back to sign in",
	)
}

func (m *RegisterModel) departmentFocused() bool {
	return m.focus == len(m.inputs)
}

func (m *RegisterModel) departmentLine() string {
	marker := "  "
	if m.departmentFocused() {
		marker = "> "
	}
	return marker + string(m.departments[m.deptIdx])
}

func (m *RegisterModel) focusNext() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *RegisterModel) focusPrev() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *RegisterModel) cmdRegister(input session.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		info, err := m.reconciler.Register(m.ctx, input)
		return registerResultMsg{info: info, err: err}
	}
}
