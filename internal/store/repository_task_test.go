package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joms1025/company-management-app/models"
)

func TestBuildListTasksQuery_NoFilter(t *testing.T) {
	query, args, err := buildListTasksQuery(models.TaskFilter{})
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "FROM tasks")
	assert.Contains(t, query, "ORDER BY due_date ASC, created_at ASC")
	assert.Empty(t, args)
}

func TestBuildListTasksQuery_DepartmentFilter(t *testing.T) {
	query, args, err := buildListTasksQuery(models.TaskFilter{Department: models.DepartmentLS})
	require.NoError(t, err)

	assert.Contains(t, query, "assigned_to_department = $1")
	assert.Equal(t, []any{models.DepartmentLS}, args)
}

func TestBuildListTasksQuery_AllDepartmentsAddsNoPredicate(t *testing.T) {
	query, args, err := buildListTasksQuery(models.TaskFilter{Department: models.DepartmentAll})
	require.NoError(t, err)

	assert.NotContains(t, query, "assigned_to_department")
	assert.Empty(t, args)
}

func TestBuildListTasksQuery_CombinedFilters(t *testing.T) {
	query, args, err := buildListTasksQuery(models.TaskFilter{
		Department: models.DepartmentHouse,
		Status:     models.TaskPending,
		CreatedBy:  "u1",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "assigned_to_department = $1")
	assert.Contains(t, query, "status = $2")
	assert.Contains(t, query, "created_by_user_id = $3")
	assert.Equal(t, []any{models.DepartmentHouse, models.TaskPending, "u1"}, args)
}

func TestTaskRepository_UpdateTaskStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, db.logger)

	mock.ExpectQuery(`UPDATE tasks`).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err := repo.UpdateTaskStatus(t.Context(), "missing", models.TaskDone)
	require.ErrorIs(t, err, ErrTaskNotFound)
}
