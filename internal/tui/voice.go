package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/audio"
	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/models"
)

// VoiceModel drives the voice-note flow: pick a recorded audio file, run it
// through the transcription client, review the transcription and its English
// translation, then copy the translation or post it to the department chat
// as a voice message.
//
// When no transcription client is configured (missing API key) the screen
// stays up but explains why processing is unavailable.
type VoiceModel struct {
	ctx         context.Context
	backend     adapter.BackendClient
	transcriber adapter.TranscriptionClient

	input      textinput.Model
	state      session.State
	result     *models.VoiceNoteData
	processing bool
	sending    bool
	status     string
	errMsg     string
}

func NewVoiceModel(ctx context.Context, backend adapter.BackendClient, transcriber adapter.TranscriptionClient, reconciler *session.Reconciler) *VoiceModel {
	input := textinput.New()
	input.Placeholder = "path to audio file (wav, mp3, m4a, ogg, ...)"
	input.CharLimit = 512
	input.Width = 52
	input.Focus()

	return &VoiceModel{
		ctx:         ctx,
		backend:     backend,
		transcriber: transcriber,
		input:       input,
		state:       reconciler.State(),
	}
}

func (m *VoiceModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	m.input.Focus()
	return textinput.Blink
}

func (m *VoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = msg.state
		return m, nil
	case voiceProcessedMsg:
		m.processing = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		result := msg.data
		m.result = &result
		// Free the c/p hotkeys for the result actions.
		m.input.Blur()
		return m, nil
	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Posted to the department chat"
		return m, m.cmdClearStatus()
	case copiedMsg:
		m.status = "Translation copied to clipboard"
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			if m.input.Focused() {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, textinput.Blink
		case "enter":
			if m.transcriber == nil || m.processing {
				return m, nil
			}
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				m.errMsg = "Enter the path to a recording first"
				return m, nil
			}
			m.errMsg = ""
			m.result = nil
			m.processing = true
			return m, m.cmdProcess(path)
		case "c":
			if m.result != nil && !m.input.Focused() {
				return m, m.cmdCopy(m.result.TranslatedText)
			}
		case "p":
			if m.result != nil && !m.input.Focused() && !m.sending {
				m.sending = true
				return m, m.cmdPost(*m.result)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *VoiceModel) View() string {
	var b strings.Builder

	if m.transcriber == nil {
		b.WriteString("Voice-note processing is unavailable: no AI API key is configured.\n")
		b.WriteString("Set AI_API_KEY and restart the client.\n")
		return renderPage("VOICE NOTES", b.String(), "esc: back")
	}

	b.WriteString("Recording │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.processing {
		b.WriteString("\nTranscribing and translating...\n")
	}

	if m.result != nil {
		b.WriteString("\nLanguage     │ ")
		b.WriteString(m.result.DetectedLanguage)
		b.WriteString("\nTranscript   │ ")
		b.WriteString(fitText(m.result.OriginalTranscription, 160))
		b.WriteString("\nTranslation  │ ")
		b.WriteString(fitText(m.result.TranslatedText, 160))
		if m.result.Summary != "" {
			b.WriteString("\nSummary      │ ")
			b.WriteString(fitText(m.result.Summary, 160))
		}
		b.WriteString("\n")
	}

	if m.sending {
		b.WriteString("\nPosting...\n")
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

	return renderPage(
		"VOICE NOTES",
		b.String(),
		"enter: process │ tab: edit path │ c: copy translation │ p: post to chat │ esc: back",
	)
}

func (m *VoiceModel) cmdProcess(path string) tea.Cmd {
	return func() tea.Msg {
		recording, err := audio.LoadRecording(path)
		if err != nil {
			return voiceProcessedMsg{err: err}
		}
		data, err := m.transcriber.ProcessVoiceNote(m.ctx, recording.Data, recording.MimeType)
		return voiceProcessedMsg{data: data, err: err}
	}
}

func (m *VoiceModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return voiceProcessedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func (m *VoiceModel) cmdPost(data models.VoiceNoteData) tea.Cmd {
	department := models.DefaultDepartment
	if m.state.User != nil {
		department = m.state.User.Department
	}
	return func() tea.Msg {
		_, err := m.backend.PostMessage(m.ctx, department, models.PostMessageRequest{
			Type:      models.MessageVoice,
			VoiceNote: &data,
		})
		return messageSentMsg{err: err}
	}
}

func (m *VoiceModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
