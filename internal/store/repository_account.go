package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles identity creation and credential lookup
// against the "users" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAccount, account.ID, account.Email, account.PasswordHash, account.EmailConfirmed)

	var saved models.Account
	if err := row.Scan(&saved.ID, &saved.Email, &saved.PasswordHash, &saved.EmailConfirmed, &saved.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyExists
		default:
			log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// FindAccountByEmail retrieves the account whose email matches the argument.
// A missing row maps to [ErrAccountNotFound].
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	row := r.db.QueryRowContext(ctx, findAccountByEmail, email)
	if err := row.Scan(&found.ID, &found.Email, &found.PasswordHash, &found.EmailConfirmed, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindAccountByID retrieves the account with the given UUID.
// A missing row maps to [ErrAccountNotFound].
func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	row := r.db.QueryRowContext(ctx, findAccountByID, id)
	if err := row.Scan(&found.ID, &found.Email, &found.PasswordHash, &found.EmailConfirmed, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ConfirmAccount marks the account's email as confirmed. A missing account
// maps to [ErrAccountNotFound].
func (r *accountRepository) ConfirmAccount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, confirmAccount, id)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
