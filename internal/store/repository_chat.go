package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/models"
)

// chatRepository is the PostgreSQL-backed implementation of [ChatRepository].
// Voice-note payloads are stored in a JSONB column; text messages leave it
// NULL.
type chatRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChatRepository constructs a [ChatRepository] backed by the provided
// database connection and logger.
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating chat repository")
	return &chatRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMessage inserts a chat message, assigning a fresh UUID and server-side
// timestamp, and returns the stored representation.
func (r *chatRepository) SaveMessage(ctx context.Context, message models.ChatMessage) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	var voiceNote []byte
	if message.VoiceNote != nil {
		encoded, err := json.Marshal(message.VoiceNote)
		if err != nil {
			return models.ChatMessage{}, fmt.Errorf("encode voice note payload: %w", err)
		}
		voiceNote = encoded
	}

	row := r.db.QueryRowContext(ctx, saveChatMessage,
		message.ID, message.SenderID, message.SenderName, message.Department,
		message.Type, message.TextContent, voiceNote, message.Timestamp)

	saved, err := scanChatMessage(row)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.SaveMessage").Msg("error: scanning error")
		return models.ChatMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// ListMessages returns messages for department newer than after, oldest
// first, capped at limit (default 100 when limit is not positive). Admin
// broadcasts are stored once under the synthetic all-departments channel and
// are folded into every department's read.
func (r *chatRepository) ListMessages(ctx context.Context, department models.Department, after time.Time, limit int) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = 100
	}

	const listMessages = `
		SELECT id, sender_id, sender_name, department, type, text_content, voice_note_data, created_at
		FROM chat_messages
		WHERE department IN ($1, $2) AND created_at > $3
		ORDER BY created_at ASC
		LIMIT $4;`

	rows, err := r.db.QueryContext(ctx, listMessages, department, models.DepartmentAll, after, limit)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.ListMessages").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		message, err := scanChatMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat message rows: %w", err)
	}

	return messages, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChatMessage(row rowScanner) (models.ChatMessage, error) {
	var message models.ChatMessage
	var voiceNote sql.Null[[]byte]

	if err := row.Scan(&message.ID, &message.SenderID, &message.SenderName, &message.Department,
		&message.Type, &message.TextContent, &voiceNote, &message.Timestamp); err != nil {
		return models.ChatMessage{}, err
	}

	if voiceNote.Valid && len(voiceNote.V) > 0 {
		var payload models.VoiceNoteData
		if err := json.Unmarshal(voiceNote.V, &payload); err != nil {
			return models.ChatMessage{}, fmt.Errorf("decode voice note payload: %w", err)
		}
		message.VoiceNote = &payload
	}

	return message, nil
}
