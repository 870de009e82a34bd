package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Listing queries are assembled with squirrel because the filter is dynamic:
// any combination of department, status, and author may be present.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

var taskColumns = []string{
	"id",
	"title",
	"description",
	"assigned_to_department",
	"due_date",
	"status",
	"created_by_user_id",
	"created_at",
}

// buildListTasksQuery assembles the filtered SELECT for ListTasks.
// Zero-valued filter fields add no predicate.
func buildListTasksQuery(filter models.TaskFilter) (string, []any, error) {
	builder := sq.Select(taskColumns...).
		From("tasks").
		OrderBy("due_date ASC", "created_at ASC").
		PlaceholderFormat(sq.Dollar)

	if filter.Department != "" && filter.Department != models.DepartmentAll {
		builder = builder.Where(sq.Eq{"assigned_to_department": filter.Department})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.CreatedBy != "" {
		builder = builder.Where(sq.Eq{"created_by_user_id": filter.CreatedBy})
	}

	return builder.ToSql()
}

// CreateTask inserts a new task row, assigning a fresh UUID, and returns the
// stored representation.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}

	query, args, err := sq.Insert("tasks").
		Columns(taskColumns[:len(taskColumns)-1]...).
		Values(task.ID, task.Title, task.Description, task.AssignedTo, task.DueDate, task.Status, task.CreatedBy).
		Suffix("RETURNING " + joinColumns(taskColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("build insert task query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var saved models.Task
	if err := row.Scan(&saved.ID, &saved.Title, &saved.Description, &saved.AssignedTo, &saved.DueDate, &saved.Status, &saved.CreatedBy, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// ListTasks returns tasks matching filter, ordered by due date.
func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list tasks query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.AssignedTo, &task.DueDate, &task.Status, &task.CreatedBy, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}

	return tasks, nil
}

// UpdateTaskStatus sets only the status column and returns the updated row.
// A missing row maps to [ErrTaskNotFound].
func (r *taskRepository) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("tasks").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(taskColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("build update task query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Task
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Description, &updated.AssignedTo, &updated.DueDate, &updated.Status, &updated.CreatedBy, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTaskStatus").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes the task row. A missing row maps to [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, id string) error {
	query, args, err := sq.Delete("tasks").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete task query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
