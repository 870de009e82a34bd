package service

import (
	"context"
	"fmt"
	"time"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/models"
)

// chatService is the concrete implementation of ChatService.
type chatService struct {
	chatRepository    store.ChatRepository
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

func NewChatService(chat store.ChatRepository, profiles store.ProfileRepository, logger *logger.Logger) ChatService {
	return &chatService{
		chatRepository:    chat,
		profileRepository: profiles,
		logger:            logger,
	}
}

// PostMessage validates and stores a chat message.
//
// The sender's display name is denormalised onto the message from their
// profile row at post time. Posting into DepartmentAll is an admin-only
// broadcast; posting into another department than the sender's own also
// requires the Admin role.
func (c *chatService) PostMessage(ctx context.Context, senderID string, department models.Department, req models.PostMessageRequest) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if senderID == "" {
		return models.ChatMessage{}, ErrInvalidDataProvided
	}
	if department != models.DepartmentAll && !department.IsAssignable() {
		return models.ChatMessage{}, ErrInvalidDepartment
	}

	switch req.Type {
	case models.MessageText:
		if req.TextContent == "" {
			return models.ChatMessage{}, fmt.Errorf("%w: empty text message", ErrInvalidDataProvided)
		}
	case models.MessageVoice:
		if req.VoiceNote == nil || req.VoiceNote.TranslatedText == "" {
			return models.ChatMessage{}, fmt.Errorf("%w: voice message without processed note", ErrInvalidDataProvided)
		}
	default:
		return models.ChatMessage{}, fmt.Errorf("%w: unknown message type %q", ErrInvalidDataProvided, req.Type)
	}

	sender, err := c.profileRepository.FindProfileByID(ctx, senderID)
	if err != nil {
		log.Err(err).Str("id", senderID).Msg("sender profile lookup failed")
		return models.ChatMessage{}, fmt.Errorf("sender profile lookup failed: %w", err)
	}

	if department != sender.Department && sender.Role != models.RoleAdmin {
		log.Error().
			Str("id", senderID).
			Str("department", string(department)).
			Msg("cross-department post denied")
		return models.ChatMessage{}, ErrForbiddenDepartment
	}

	saved, err := c.chatRepository.SaveMessage(ctx, models.ChatMessage{
		SenderID:    senderID,
		SenderName:  sender.Name,
		Department:  department,
		Type:        req.Type,
		TextContent: req.TextContent,
		VoiceNote:   req.VoiceNote,
		Timestamp:   time.Now(),
	})
	if err != nil {
		log.Err(err).Str("id", senderID).Msg("message persistence failed")
		return models.ChatMessage{}, fmt.Errorf("message persistence failed: %w", err)
	}

	return saved, nil
}

// ListMessages returns department messages newer than after, oldest first.
// Admin broadcasts are part of every department's history; the repository
// folds the all-departments channel into the read.
func (c *chatService) ListMessages(ctx context.Context, department models.Department, after time.Time, limit int) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if department != models.DepartmentAll && !department.IsAssignable() {
		return nil, ErrInvalidDepartment
	}

	messages, err := c.chatRepository.ListMessages(ctx, department, after, limit)
	if err != nil {
		log.Err(err).Str("department", string(department)).Msg("message listing failed")
		return nil, fmt.Errorf("message listing failed: %w", err)
	}

	return messages, nil
}
