// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/internal/store"
)

// ErrUserQuit reports that the user closed the program deliberately.
var ErrUserQuit = errors.New("quit by user")

// TUI owns the terminal frontend. It renders whatever the session reconciler
// currently holds: each published snapshot is forwarded into the running
// Bubble Tea program as a message, so pages never poll for auth state.
type TUI struct {
	reconciler  *session.Reconciler
	backend     adapter.BackendClient
	transcriber adapter.TranscriptionClient
	messages    store.MessageCache
	log         *logger.Logger
}

func New(reconciler *session.Reconciler, backend adapter.BackendClient, transcriber adapter.TranscriptionClient, messages store.MessageCache, log *logger.Logger) *TUI {
	return &TUI{
		reconciler:  reconciler,
		backend:     backend,
		transcriber: transcriber,
		messages:    messages,
		log:         log,
	}
}

// Run blocks until the user quits or the program fails. Returns [ErrUserQuit]
// on a deliberate exit.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"login":    NewLoginModel(ctx, t.reconciler),
		"register": NewRegisterModel(ctx, t.reconciler),
		"menu":     NewMenuModel(ctx, t.reconciler),
		"chat":     NewChatModel(ctx, t.backend, t.messages, t.reconciler),
		"tasks":    NewTasksModel(ctx, t.backend, t.reconciler),
		"voice":    NewVoiceModel(ctx, t.backend, t.transcriber, t.reconciler),
		"settings": NewSettingsModel(ctx, t.reconciler),
	}

	state := t.reconciler.State()
	startPage := "login"
	if state.User != nil {
		startPage = "menu"
	}

	root := NewRootModel(pages, startPage, state)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	states, unsubscribe := t.reconciler.Subscribe()
	defer unsubscribe()
	go func() {
		for snapshot := range states {
			program.Send(stateChangedMsg{state: snapshot})
		}
	}()

	finalModel, err := program.Run()
	if err != nil {
		t.log.Error().Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
