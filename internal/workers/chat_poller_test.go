package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/mock"
	"github.com/joms1025/company-management-app/models"
)

func officeUser() *models.User {
	return &models.User{ID: "u1", Name: "Ann", Department: models.DepartmentOffice}
}

func TestChatPoller_CachesNewMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendClient(ctrl)
	cache := mock.NewMockMessageCache(ctrl)

	cursor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fresh := models.ChatMessage{ID: "m2", Department: models.DepartmentOffice, Type: models.MessageText, TextContent: "hi"}

	saved := make(chan struct{})
	cache.EXPECT().LatestTimestamp(gomock.Any(), models.DepartmentOffice).Return(cursor, nil).MinTimes(1)
	backend.EXPECT().ListMessages(gomock.Any(), models.DepartmentOffice, cursor.Format(time.RFC3339), 0).
		Return([]models.ChatMessage{fresh}, nil).MinTimes(1)
	cache.EXPECT().SaveMessages(gomock.Any(), fresh).
		DoAndReturn(func(_ context.Context, _ ...models.ChatMessage) error {
			select {
			case saved <- struct{}{}:
			default:
			}
			return nil
		}).MinTimes(1)

	poller := NewChatPoller(backend, cache, func() *models.User { return officeUser() }, 10*time.Millisecond, logger.Nop())
	poller.Run()
	defer poller.Stop()

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("expected poller to cache messages")
	}
}

func TestChatPoller_IdleWhileSignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendClient(ctrl)
	cache := mock.NewMockMessageCache(ctrl)

	// No cache or backend expectations: a signed-out poller must not touch
	// either.
	poller := NewChatPoller(backend, cache, func() *models.User { return nil }, 5*time.Millisecond, logger.Nop())
	poller.Run()

	time.Sleep(50 * time.Millisecond)
	poller.Stop()
}

func TestChatPoller_StopWithoutRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	poller := NewChatPoller(mock.NewMockBackendClient(ctrl), mock.NewMockMessageCache(ctrl), func() *models.User { return nil }, time.Second, logger.Nop())

	require.NotPanics(t, poller.Stop)
}
