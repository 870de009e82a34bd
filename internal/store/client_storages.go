package store

import (
	"context"
	"fmt"

	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/internal/logger"
)

// ClientStorages groups the client-side cache repositories into a single
// value that can be passed around the client wiring.
type ClientStorages struct {
	// Sessions persists the authenticated session for cold-start restore.
	Sessions SessionCache

	// Messages is the offline chat history cache.
	Messages MessageCache

	db *DB
}

// NewClientStorages opens the SQLite cache at cfg.CachePath, installs the
// schema and wires the cache repositories.
func NewClientStorages(cfg config.Client, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		Sessions: NewLocalSessionRepository(db, logger),
		Messages: NewLocalChatRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
