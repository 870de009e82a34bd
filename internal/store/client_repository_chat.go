package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/models"
)

type localChatRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalChatRepository(db *DB, logger *logger.Logger) MessageCache {
	return &localChatRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localChatRepository) SaveMessages(ctx context.Context, messages ...models.ChatMessage) error {
	for _, message := range messages {
		var voiceNote any
		if message.VoiceNote != nil {
			payload, err := json.Marshal(message.VoiceNote)
			if err != nil {
				return fmt.Errorf("failed to encode voice note (id=%s): %w", message.ID, err)
			}
			voiceNote = string(payload)
		}

		_, err := l.DB.ExecContext(ctx, saveCachedMessage,
			message.ID,
			message.SenderID,
			message.SenderName,
			message.Department,
			message.Type,
			message.TextContent,
			voiceNote,
			message.Timestamp,
		)
		if err != nil {
			l.logger.Err(err).
				Str("func", "*localChatRepository.SaveMessages").
				Str("message_id", message.ID).
				Msg("failed to cache message")
			return fmt.Errorf("failed to cache message (id=%s): %w", message.ID, err)
		}
	}

	return nil
}

// GetMessages returns up to limit cached messages for department, oldest
// first, matching the ordering the backend serves. Cached admin broadcasts
// (stored under the all-departments channel) are included in every
// department's read.
func (l *localChatRepository) GetMessages(ctx context.Context, department models.Department, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := l.DB.QueryContext(ctx, getCachedMessages, department, models.DepartmentAll, limit)
	if err != nil {
		l.logger.Err(err).
			Str("func", "*localChatRepository.GetMessages").
			Str("department", string(department)).
			Msg("failed to query cached messages")
		return nil, fmt.Errorf("failed to query cached messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var (
			message   models.ChatMessage
			voiceNote sql.NullString
		)
		if err = rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.SenderName,
			&message.Department,
			&message.Type,
			&message.TextContent,
			&voiceNote,
			&message.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cached message: %w", err)
		}

		if voiceNote.Valid && voiceNote.String != "" {
			var data models.VoiceNoteData
			if err = json.Unmarshal([]byte(voiceNote.String), &data); err != nil {
				return nil, fmt.Errorf("failed to decode voice note (id=%s): %w", message.ID, err)
			}
			message.VoiceNote = &data
		}

		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached messages: %w", err)
	}

	// The query reads newest-first to honour the limit; flip to the
	// oldest-first order chats render in.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// LatestTimestamp returns the newest cached message time for department
// (broadcasts included), used as the incremental poll cursor. A zero time
// means an empty cache.
func (l *localChatRepository) LatestTimestamp(ctx context.Context, department models.Department) (time.Time, error) {
	var latest time.Time
	row := l.DB.QueryRowContext(ctx, getLatestMessageTimestamp, department, models.DepartmentAll)

	err := row.Scan(&latest)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "*localChatRepository.LatestTimestamp").
			Str("department", string(department)).
			Msg("failed to read latest cached timestamp")
		return time.Time{}, fmt.Errorf("failed to read latest cached timestamp: %w", err)
	}

	return latest, nil
}
