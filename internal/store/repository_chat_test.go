package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joms1025/company-management-app/models"
)

var chatColumns = []string{"id", "sender_id", "sender_name", "department", "type", "text_content", "voice_note_data", "created_at"}

func TestChatRepository_ListMessages_ReadsBroadcastChannelToo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db, db.logger)

	after := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	broadcastAt := after.Add(time.Hour)

	mock.ExpectQuery(`FROM chat_messages`).
		WithArgs(models.DepartmentOffice, models.DepartmentAll, after, 50).
		WillReturnRows(sqlmock.NewRows(chatColumns).
			AddRow("m1", "admin-1", "Boss", models.DepartmentAll, models.MessageText, "all hands", nil, broadcastAt))

	messages, err := repo.ListMessages(t.Context(), models.DepartmentOffice, after, 50)
	require.NoError(t, err)

	require.Len(t, messages, 1)
	assert.Equal(t, models.DepartmentAll, messages[0].Department)
	assert.Equal(t, "all hands", messages[0].TextContent)
}

func TestChatRepository_ListMessages_DefaultsLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db, db.logger)

	after := time.Time{}

	mock.ExpectQuery(`FROM chat_messages`).
		WithArgs(models.DepartmentHouse, models.DepartmentAll, after, 100).
		WillReturnRows(sqlmock.NewRows(chatColumns))

	messages, err := repo.ListMessages(t.Context(), models.DepartmentHouse, after, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
