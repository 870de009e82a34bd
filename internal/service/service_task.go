package service

import (
	"context"
	"fmt"
	"time"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/models"
)

// taskService is the concrete implementation of TaskService.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

func NewTaskService(tasks store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: tasks,
		logger:         logger,
	}
}

// CreateTask validates and stores a new department task authored by
// creatorID. The due date is parsed from RFC 3339; tasks start in the
// Pending state.
func (t *taskService) CreateTask(ctx context.Context, creatorID string, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if creatorID == "" || req.Title == "" || req.DueDate == "" {
		log.Error().Str("creator", creatorID).Str("title", req.Title).Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}
	if !req.AssignedTo.IsAssignable() {
		return models.Task{}, ErrInvalidDepartment
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		log.Error().Str("due_date", req.DueDate).Msg("unparseable due date")
		return models.Task{}, fmt.Errorf("%w: bad due date", ErrInvalidDataProvided)
	}

	created, err := t.taskRepository.CreateTask(ctx, models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		Status:      models.TaskPending,
		CreatedBy:   creatorID,
	})
	if err != nil {
		log.Err(err).Str("title", req.Title).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// ListTasks returns tasks matching filter, ordered by due date. A filter
// naming DepartmentAll (or nothing) spans all departments.
func (t *taskService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}
	if filter.Department != "" && filter.Department != models.DepartmentAll && !filter.Department.IsAssignable() {
		return nil, ErrInvalidDepartment
	}

	tasks, err := t.taskRepository.ListTasks(ctx, filter)
	if err != nil {
		log.Err(err).Msg("task listing failed")
		return nil, fmt.Errorf("task listing failed: %w", err)
	}

	return tasks, nil
}

// UpdateTaskStatus moves the task to the given workflow state.
func (t *taskService) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Task{}, ErrInvalidDataProvided
	}
	if !status.IsValid() {
		log.Error().Str("id", id).Str("status", string(status)).Msg("unknown task status")
		return models.Task{}, ErrInvalidTaskStatus
	}

	updated, err := t.taskRepository.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		log.Err(err).Str("id", id).Msg("task status update failed")
		return models.Task{}, fmt.Errorf("task status update failed: %w", err)
	}

	return updated, nil
}

// DeleteTask removes the task row.
func (t *taskService) DeleteTask(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := t.taskRepository.DeleteTask(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("task deletion failed")
		return fmt.Errorf("task deletion failed: %w", err)
	}

	return nil
}
