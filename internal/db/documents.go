package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDocLimitReached indicates the account has used its full document quota.
var ErrDocLimitReached = errors.New("document limit reached")

// Document is a stored document row. Data and Theme are raw JSONB payloads;
// Context is free-text caller notes stored and returned verbatim.
type Document struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Kind      string
	Title     string
	Context   string
	Data      []byte
	Theme     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

const documentColumns = `id, account_id, kind, title, context, data, theme, created_at, updated_at`

func scanDocument(row pgx.Row) (*Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.AccountID, &d.Kind, &d.Title, &d.Context, &d.Data, &d.Theme, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// InsertDocument stores a document and bumps the owner's doc_count in the
// same transaction. The count update is conditional on the quota, so two
// concurrent inserts cannot push an account past its limit.
func (db *DB) InsertDocument(ctx context.Context, accountID uuid.UUID, kind, title, docContext string, data, theme []byte) (*Document, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET doc_count = doc_count + 1
		 WHERE id = $1 AND doc_count < doc_limit`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update doc count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrDocLimitReached
	}

	doc, err := scanDocument(tx.QueryRow(ctx,
		`INSERT INTO documents (account_id, kind, title, context, data, theme)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+documentColumns,
		accountID, kind, title, docContext, data, theme,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit document insert: %w", err)
	}
	return doc, nil
}

// GetDocument retrieves a document by ID regardless of owner. Used by the
// public viewer. Returns nil when no document matches.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	doc, err := scanDocument(db.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// GetOwnedDocument retrieves a document only if it belongs to the account.
// Returns nil when no document matches.
func (db *DB) GetOwnedDocument(ctx context.Context, accountID, id uuid.UUID) (*Document, error) {
	doc, err := scanDocument(db.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1 AND account_id = $2`,
		id, accountID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns the account's documents, newest first.
func (db *DB) ListDocuments(ctx context.Context, accountID uuid.UUID) ([]*Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+documentColumns+` FROM documents
		 WHERE account_id = $1 ORDER BY created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// UpdateDocument replaces the stored title, context, data, and theme of an
// owned document. Returns nil when the document does not exist or belongs
// to a different account.
func (db *DB) UpdateDocument(ctx context.Context, accountID, id uuid.UUID, title, docContext string, data, theme []byte) (*Document, error) {
	doc, err := scanDocument(db.pool.QueryRow(ctx,
		`UPDATE documents
		 SET title = $3, context = $4, data = $5, theme = $6, updated_at = NOW()
		 WHERE id = $1 AND account_id = $2
		 RETURNING `+documentColumns,
		id, accountID, title, docContext, data, theme,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

// DeleteDocument removes an owned document and releases its quota slot.
// Returns false when the document does not exist or belongs to a different
// account.
func (db *DB) DeleteDocument(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND account_id = $2`,
		id, accountID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE accounts SET doc_count = GREATEST(doc_count - 1, 0) WHERE id = $1`,
		accountID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update doc count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit document delete: %w", err)
	}
	return true, nil
}
