package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/models"
)

const chatRedrawInterval = 3 * time.Second

type chatTickMsg struct{}

// ChatModel renders the department group chat. The user's own department is
// served from the local cache, which the background poller keeps in sync
// with the server, so that screen stays readable offline. Sending posts
// straight to the backend and reloads afterwards.
//
// Admins can cycle through departments with [ and ], including the synthetic
// broadcast target; those views are read live from the backend since the
// poller only caches the admin's own department.
type ChatModel struct {
	ctx     context.Context
	backend adapter.BackendClient
	cache   store.MessageCache

	input      textinput.Model
	state      session.State
	department models.Department
	messages   []models.ChatMessage
	sending    bool
	errMsg     string
}

func NewChatModel(ctx context.Context, backend adapter.BackendClient, cache store.MessageCache, reconciler *session.Reconciler) *ChatModel {
	input := textinput.New()
	input.Placeholder = "message"
	input.CharLimit = 2000
	input.Width = 52
	input.Focus()

	return &ChatModel{
		ctx:     ctx,
		backend: backend,
		cache:   cache,
		input:   input,
		state:   reconciler.State(),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	m.errMsg = ""
	m.sending = false
	if m.department == "" || !m.isAdmin() {
		m.department = m.userDepartment()
	}
	return tea.Batch(textinput.Blink, m.cmdLoadMessages(), m.cmdTick())
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = msg.state
		if !m.isAdmin() {
			m.department = m.userDepartment()
		}
		return m, nil
	case chatTickMsg:
		return m, tea.Batch(m.cmdLoadMessages(), m.cmdTick())
	case messagesLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.messages = msg.messages
		return m, nil
	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.input.Reset()
		return m, m.cmdLoadMessages()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "[":
			if m.isAdmin() {
				m.cycleDepartment(-1)
				return m, m.cmdLoadMessages()
			}
		case "]":
			if m.isAdmin() {
				m.cycleDepartment(1)
				return m, m.cmdLoadMessages()
			}
		case "enter":
			if m.sending {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.errMsg = ""
			m.sending = true
			return m, m.cmdSend(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) View() string {
	var b strings.Builder

	for _, message := range m.messages {
		b.WriteString(message.Timestamp.Local().Format("15:04"))
		b.WriteString(" ")
		b.WriteString(message.SenderName)
		b.WriteString(": ")
		switch message.Type {
		case models.MessageVoice:
			if message.VoiceNote != nil {
				b.WriteString("[voice] ")
				b.WriteString(fitText(message.VoiceNote.TranslatedText, 120))
			} else {
				b.WriteString("[voice]")
			}
		default:
			b.WriteString(fitText(message.TextContent, 140))
		}
		b.WriteString("\n")
	}
	if len(m.messages) == 0 {
		b.WriteString("No messages yet.\n")
	}

	b.WriteString("\n> [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.sending {
		b.WriteString("\nSending...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	hotKeys := "enter: send │ esc: back"
	if m.isAdmin() {
		hotKeys = "enter: send │ [/]: department │ esc: back"
	}
	return renderPage(fmt.Sprintf("CHAT │ %s", m.department), b.String(), hotKeys)
}

func (m *ChatModel) isAdmin() bool {
	return m.state.User != nil && m.state.User.Role == models.RoleAdmin
}

func (m *ChatModel) userDepartment() models.Department {
	if m.state.User == nil {
		return models.DefaultDepartment
	}
	return m.state.User.Department
}

// cycleDepartment walks the assignable departments plus the broadcast
// target, admin only.
func (m *ChatModel) cycleDepartment(step int) {
	all := append(models.Departments(), models.DepartmentAll)
	idx := 0
	for i, d := range all {
		if d == m.department {
			idx = i
		}
	}
	idx = (idx + step + len(all)) % len(all)
	m.department = all[idx]
}

func (m *ChatModel) cmdTick() tea.Cmd {
	return tea.Tick(chatRedrawInterval, func(time.Time) tea.Msg { return chatTickMsg{} })
}

// cmdLoadMessages reads the user's own department from the local cache (the
// poller keeps it fresh and it works offline). Other departments, which only
// an admin can select, are not cached and are read live from the backend.
func (m *ChatModel) cmdLoadMessages() tea.Cmd {
	department := m.department
	if department == m.userDepartment() {
		return func() tea.Msg {
			messages, err := m.cache.GetMessages(m.ctx, department, 100)
			return messagesLoadedMsg{messages: messages, err: err}
		}
	}
	return func() tea.Msg {
		messages, err := m.backend.ListMessages(m.ctx, department, "", 100)
		return messagesLoadedMsg{messages: messages, err: err}
	}
}

func (m *ChatModel) cmdSend(text string) tea.Cmd {
	department := m.department
	return func() tea.Msg {
		posted, err := m.backend.PostMessage(m.ctx, department, models.PostMessageRequest{
			Type:        models.MessageText,
			TextContent: text,
		})
		if err != nil {
			return messageSentMsg{err: err}
		}
		// Written through so the message shows before the next poll.
		if cacheErr := m.cache.SaveMessages(m.ctx, posted); cacheErr != nil {
			return messageSentMsg{err: cacheErr}
		}
		return messageSentMsg{}
	}
}
