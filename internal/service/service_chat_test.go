package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/mock"
	"github.com/joms1025/company-management-app/models"
)

func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (*chatService, *mock.MockChatRepository, *mock.MockProfileRepository) {
	t.Helper()
	mockChat := mock.NewMockChatRepository(ctrl)
	mockProfiles := mock.NewMockProfileRepository(ctrl)

	svc := NewChatService(mockChat, mockProfiles, logger.Nop()).(*chatService)

	return svc, mockChat, mockProfiles
}

func TestChatService_PostMessage_TextToOwnDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChat, mockProfiles := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockProfiles.EXPECT().FindProfileByID(ctx, "u1").Return(models.Profile{
		ID:         "u1",
		Name:       "Ann",
		Role:       models.RoleUser,
		Department: models.DepartmentLS,
	}, nil)
	mockChat.EXPECT().SaveMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.ChatMessage) (models.ChatMessage, error) {
			assert.Equal(t, "Ann", m.SenderName)
			assert.Equal(t, models.DepartmentLS, m.Department)
			assert.Equal(t, models.MessageText, m.Type)
			assert.False(t, m.Timestamp.IsZero())
			m.ID = "m1"
			return m, nil
		},
	)

	saved, err := svc.PostMessage(ctx, "u1", models.DepartmentLS, models.PostMessageRequest{
		Type:        models.MessageText,
		TextContent: "shift starts at 9",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", saved.ID)
}

func TestChatService_PostMessage_CrossDepartmentDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockProfiles := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockProfiles.EXPECT().FindProfileByID(ctx, "u1").Return(models.Profile{
		ID:         "u1",
		Role:       models.RoleUser,
		Department: models.DepartmentLS,
	}, nil)

	_, err := svc.PostMessage(ctx, "u1", models.DepartmentHouse, models.PostMessageRequest{
		Type:        models.MessageText,
		TextContent: "hi",
	})
	require.ErrorIs(t, err, ErrForbiddenDepartment)
}

func TestChatService_PostMessage_AdminBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChat, mockProfiles := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockProfiles.EXPECT().FindProfileByID(ctx, "boss").Return(models.Profile{
		ID:         "boss",
		Name:       "Boss",
		Role:       models.RoleAdmin,
		Department: models.DepartmentManager,
	}, nil)
	mockChat.EXPECT().SaveMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.ChatMessage) (models.ChatMessage, error) {
			assert.Equal(t, models.DepartmentAll, m.Department)
			return m, nil
		},
	)

	_, err := svc.PostMessage(ctx, "boss", models.DepartmentAll, models.PostMessageRequest{
		Type:        models.MessageText,
		TextContent: "meeting at noon",
	})
	require.NoError(t, err)
}

func TestChatService_PostMessage_VoiceRequiresProcessedNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestChatSvc(t, ctrl)

	_, err := svc.PostMessage(context.Background(), "u1", models.DepartmentLS, models.PostMessageRequest{
		Type: models.MessageVoice,
	})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChatService_PostMessage_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestChatSvc(t, ctrl)

	_, err := svc.PostMessage(context.Background(), "u1", models.DepartmentLS, models.PostMessageRequest{
		Type: "sticker",
	})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestChatService_ListMessages_UnknownDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestChatSvc(t, ctrl)

	_, err := svc.ListMessages(context.Background(), "Warehouse", time.Time{}, 50)
	require.ErrorIs(t, err, ErrInvalidDepartment)
}

func TestChatService_ListMessages_PassesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockChat, _ := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	after := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockChat.EXPECT().ListMessages(ctx, models.DepartmentOffice, after, 25).
		Return([]models.ChatMessage{{ID: "m1"}, {ID: "m2"}}, nil)

	messages, err := svc.ListMessages(ctx, models.DepartmentOffice, after, 25)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}
