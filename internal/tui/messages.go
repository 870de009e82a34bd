package tui

import (
	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/models"
)

// NavigateTo switches the router to another page. An optional Payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// stateChangedMsg carries a fresh reconciler snapshot into the program.
type stateChangedMsg struct {
	state session.State
}

type loginResultMsg struct {
	err error
}

type registerResultMsg struct {
	info string
	err  error
}

type logoutDoneMsg struct {
	err error
}

type messagesLoadedMsg struct {
	messages []models.ChatMessage
	err      error
}

type messageSentMsg struct {
	err error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type taskSavedMsg struct {
	err error
}

type voiceProcessedMsg struct {
	data models.VoiceNoteData
	err  error
}

type roleChangedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
