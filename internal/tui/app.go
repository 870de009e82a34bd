package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/session"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) tracks the reconciler state and takes over the whole screen while the
//    fatal error is set
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	state      session.State
	quitByUser bool

	// fatalDismissed lets the user leave the fatal screen for the login
	// page to retry; it re-arms whenever a fresh fatal error is set.
	fatalDismissed bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, state session.State) RootModel {
	return RootModel{
		pages:   pages,
		current: pages[startPage],
		state:   state,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		// While the fatal screen is up only quitting works; enter drops
		// to the login page, where a fresh attempt clears the error.
		if r.state.FatalError != "" && !r.fatalDismissed {
			if key.String() != "enter" {
				return r, nil
			}
			r.fatalDismissed = true
			return r.navigate("login", nil)
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav.Page, nav.Payload)
	}

	if changed, ok := msg.(stateChangedMsg); ok {
		signedIn := r.state.User == nil && changed.state.User != nil
		signedOut := r.state.User != nil && changed.state.User == nil
		if r.state.FatalError == "" && changed.state.FatalError != "" {
			r.fatalDismissed = false
		}
		r.state = changed.state

		// Pages still see the snapshot for their own rendering.
		if r.current != nil {
			updated, cmd := r.current.Update(msg)
			r.current = updated

			switch {
			case signedIn:
				navModel, navCmd := r.navigate("menu", nil)
				return navModel, tea.Batch(cmd, navCmd)
			case signedOut && r.state.FatalError == "":
				navModel, navCmd := r.navigate("login", nil)
				return navModel, tea.Batch(cmd, navCmd)
			}
			return r, cmd
		}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.state.FatalError != "" && !r.fatalDismissed {
		return r.renderFatal()
	}
	if r.current == nil {
		return renderPage("COMMS", "", "")
	}
	return r.current.View()
}

func (r RootModel) navigate(page string, payload any) (tea.Model, tea.Cmd) {
	next, exists := r.pages[page]
	if !exists {
		return r, nil
	}
	r.current = next

	if payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

// renderFatal is the full-screen takeover for the missing-schema condition.
// Normal pages stay hidden until a fresh login attempt clears the flag.
func (r RootModel) renderFatal() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("BACKEND SETUP ERROR"))
	b.WriteString("\n\n")
	b.WriteString(r.state.FatalError)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: try signing in again │ ctrl+c: quit"))
	return appStyle.Render(overlayBoxStyle.Render(b.String()))
}
