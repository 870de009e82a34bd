// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/models"
)

// TasksModel lists the department's tasks and offers the full lifecycle:
// create, advance status through Pending → In Progress → Done, delete. Two
// sub-modes share the model: the list and the creation form.
type TasksModel struct {
	ctx     context.Context
	backend adapter.BackendClient

	state session.State
	tasks []models.Task
	idx   int

	creating   bool
	inputs     []textinput.Model
	focus      int
	department models.Department

	busy   bool
	errMsg string
}

func NewTasksModel(ctx context.Context, backend adapter.BackendClient, reconciler *session.Reconciler) *TasksModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 200
	titleInput.Width = 40

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description"
	descriptionInput.CharLimit = 1000
	descriptionInput.Width = 40

	dueInput := textinput.New()
	dueInput.Placeholder = "due date (YYYY-MM-DD)"
	dueInput.CharLimit = 10
	dueInput.Width = 40

	return &TasksModel{
		ctx:     ctx,
		backend: backend,
		state:   reconciler.State(),
		inputs:  []textinput.Model{titleInput, descriptionInput, dueInput},
	}
}

func (m *TasksModel) Init() tea.Cmd {
	m.creating = false
	m.errMsg = ""
	m.department = m.userDepartment()
	return m.cmdLoad()
}

func (m *TasksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.state = msg.state
		return m, nil
	case tasksLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.tasks = msg.tasks
		if m.idx >= len(m.tasks) {
			m.idx = 0
		}
		return m, nil
	case taskSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.creating = false
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.creating {
		return m.updateForm(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m *TasksModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.tasks)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.newItem):
		m.openForm()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.status):
		if m.busy || m.idx >= len(m.tasks) {
			return m, nil
		}
		task := m.tasks[m.idx]
		next, ok := nextStatus(task.Status)
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.cmdSetStatus(task.ID, next)
	case key.Matches(keyMsg, keys.delete):
		if m.busy || m.idx >= len(m.tasks) {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(m.tasks[m.idx].ID)
	}
	return m, nil
}

func (m *TasksModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.creating = false
		m.errMsg = ""
		return m, nil
	case "tab":
		m.focusNext()
		return m, nil
	case "shift+tab":
		m.focusPrev()
		return m, nil
	case "left", "right":
		if m.departmentFocused() {
			if m.isAdmin() {
				step := 1
				if keyMsg.String() == "left" {
					step = -1
				}
				m.cycleDepartment(step)
			}
			return m, nil
		}
	case "enter":
		if m.busy {
			return m, nil
		}
		title := strings.TrimSpace(m.inputs[0].Value())
		if title == "" {
			m.errMsg = "Title is required"
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdCreate(models.CreateTaskRequest{
			Title:       title,
			Description: strings.TrimSpace(m.inputs[1].Value()),
			AssignedTo:  m.department,
			DueDate:     strings.TrimSpace(m.inputs[2].Value()),
		})
	}

	if m.departmentFocused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m *TasksModel) View() string {
	if m.creating {
		return m.viewForm()
	}
	return m.viewList()
}

func (m *TasksModel) viewList() string {
	var b strings.Builder
	b.WriteString("    Status       │ Due        │ Title\n")
	b.WriteString("  ───────────────┼────────────┼────────────────────────────\n")

	for i, task := range m.tasks {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		due := "-"
		if !task.DueDate.IsZero() {
			due = task.DueDate.Format("2006-01-02")
		}
		b.WriteString(fmt.Sprintf("%s %-13s │ %-10s │ %s\n", cursor, task.Status, due, fitText(task.Title, 40)))
	}
	if len(m.tasks) == 0 {
		b.WriteString("  No tasks.\n")
	}

	if m.idx < len(m.tasks) && m.tasks[m.idx].Description != "" {
		b.WriteString("\n")
		b.WriteString(fitText(m.tasks[m.idx].Description, 160))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\nWorking...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(
		fmt.Sprintf("TASKS │ %s", m.userDepartment()),
		b.String(),
		"n: new │ s: advance status │ d: delete │ r: refresh │ esc: back",
	)
}

func (m *TasksModel) viewForm() string {
	var b strings.Builder
	b.WriteString("Field        │ Value\n")
	b.WriteString("─────────────┼────────────────────────────────────────────\n")
	b.WriteString("Title        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Description  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Due date     │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Department   │ ")
	if m.departmentFocused() {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(string(m.department))
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	hotKeys := "enter: save │ tab: next field │ esc: cancel"
	if m.isAdmin() {
		hotKeys = "enter: save │ tab: next field │ ←/→: department │ esc: cancel"
	}
	return renderPage("NEW TASK", b.String(), hotKeys)
}

func (m *TasksModel) openForm() {
	m.creating = true
	m.errMsg = ""
	m.focus = 0
	m.department = m.userDepartment()
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
}

func (m *TasksModel) departmentFocused() bool {
	return m.focus == len(m.inputs)
}

func (m *TasksModel) focusNext() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *TasksModel) focusPrev() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + len(m.inputs) + 1) % (len(m.inputs) + 1)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *TasksModel) cycleDepartment(step int) {
	departments := models.Departments()
	idx := 0
	for i, d := range departments {
		if d == m.department {
			idx = i
		}
	}
	m.department = departments[(idx+step+len(departments))%len(departments)]
}

func (m *TasksModel) isAdmin() bool {
	return m.state.User != nil && m.state.User.Role == models.RoleAdmin
}

func (m *TasksModel) userDepartment() models.Department {
	if m.state.User == nil {
		return models.DefaultDepartment
	}
	return m.state.User.Department
}

func nextStatus(status models.TaskStatus) (models.TaskStatus, bool) {
	switch status {
	case models.TaskPending:
		return models.TaskInProgress, true
	case models.TaskInProgress:
		return models.TaskDone, true
	default:
		return status, false
	}
}

func (m *TasksModel) cmdLoad() tea.Cmd {
	department := m.userDepartment()
	return func() tea.Msg {
		tasks, err := m.backend.ListTasks(m.ctx, models.TaskFilter{Department: department})
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m *TasksModel) cmdCreate(req models.CreateTaskRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := m.backend.CreateTask(m.ctx, req)
		return taskSavedMsg{err: err}
	}
}

func (m *TasksModel) cmdSetStatus(id string, status models.TaskStatus) tea.Cmd {
	return func() tea.Msg {
		_, err := m.backend.UpdateTaskStatus(m.ctx, id, status)
		return taskSavedMsg{err: err}
	}
}

func (m *TasksModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.backend.DeleteTask(m.ctx, id)
		return taskSavedMsg{err: err}
	}
}
