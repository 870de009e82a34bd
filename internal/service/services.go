package service

import (
	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	TaskService    TaskService
	ChatService    ChatService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.Accounts, repos.Profiles, repos.RefreshTokens, cfg.Auth, logger),
		ProfileService: NewProfileService(repos.Profiles, logger),
		TaskService:    NewTaskService(repos.Tasks, logger),
		ChatService:    NewChatService(repos.Chat, repos.Profiles, logger),
	}
}
