package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Account is an account row.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	APIKey       string
	DocCount     int
	DocLimit     int
	CreatedAt    time.Time
}

// CreateAccount inserts a new account and returns the stored row.
func (db *DB) CreateAccount(ctx context.Context, email, passwordHash, apiKey string, docLimit int) (*Account, error) {
	var a Account
	err := db.pool.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash, api_key, doc_limit)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, email, password_hash, api_key, doc_count, doc_limit, created_at`,
		email, passwordHash, apiKey, docLimit,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.APIKey, &a.DocCount, &a.DocLimit, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &a, nil
}

// CheckEmailExists reports whether an account with the given email exists.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// GetAccountByEmail retrieves an account by email. Returns nil when no
// account matches.
func (db *DB) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	return db.getAccount(ctx, `email = $1`, email)
}

// GetAccountByAPIKey retrieves an account by its API key. Returns nil when
// no account matches.
func (db *DB) GetAccountByAPIKey(ctx context.Context, apiKey string) (*Account, error) {
	return db.getAccount(ctx, `api_key = $1`, apiKey)
}

// GetAccountByID retrieves an account by ID. Returns nil when no account
// matches.
func (db *DB) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return db.getAccount(ctx, `id = $1`, id)
}

func (db *DB) getAccount(ctx context.Context, where string, arg any) (*Account, error) {
	var a Account
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, api_key, doc_count, doc_limit, created_at
		 FROM accounts WHERE `+where, arg,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.APIKey, &a.DocCount, &a.DocLimit, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}
