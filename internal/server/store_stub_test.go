package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/dockit/internal/db"
)

// memStore is an in-memory AccountStore and DocumentStore with the same
// semantics as the SQL layer, including quota enforcement on insert.
type memStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db.Account
	docs     map[uuid.UUID]*db.Document
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[uuid.UUID]*db.Account),
		docs:     make(map[uuid.UUID]*db.Document),
	}
}

func (m *memStore) CreateAccount(_ context.Context, email, passwordHash, apiKey string, docLimit int) (*db.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := &db.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		APIKey:       apiKey,
		DocLimit:     docLimit,
		CreatedAt:    time.Now(),
	}
	m.accounts[a.ID] = a
	return a, nil
}

func (m *memStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) GetAccountByEmail(_ context.Context, email string) (*db.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetAccountByAPIKey(_ context.Context, apiKey string) (*db.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.APIKey == apiKey {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetAccountByID(_ context.Context, id uuid.UUID) (*db.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[id], nil
}

func (m *memStore) InsertDocument(_ context.Context, accountID uuid.UUID, kind, title, docContext string, data, theme []byte) (*db.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account := m.accounts[accountID]
	if account == nil || account.DocCount >= account.DocLimit {
		return nil, db.ErrDocLimitReached
	}
	account.DocCount++

	now := time.Now()
	d := &db.Document{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      kind,
		Title:     title,
		Context:   docContext,
		Data:      data,
		Theme:     theme,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.docs[d.ID] = d
	return d, nil
}

func (m *memStore) GetDocument(_ context.Context, id uuid.UUID) (*db.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[id], nil
}

func (m *memStore) GetOwnedDocument(_ context.Context, accountID, id uuid.UUID) (*db.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := m.docs[id]
	if d == nil || d.AccountID != accountID {
		return nil, nil
	}
	return d, nil
}

func (m *memStore) ListDocuments(_ context.Context, accountID uuid.UUID) ([]*db.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*db.Document
	for _, d := range m.docs {
		if d.AccountID == accountID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) UpdateDocument(_ context.Context, accountID, id uuid.UUID, title, docContext string, data, theme []byte) (*db.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.docs[id]
	if d == nil || d.AccountID != accountID {
		return nil, nil
	}
	d.Title = title
	d.Context = docContext
	d.Data = data
	d.Theme = theme
	d.UpdatedAt = time.Now()
	return d, nil
}

func (m *memStore) DeleteDocument(_ context.Context, accountID, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.docs[id]
	if d == nil || d.AccountID != accountID {
		return false, nil
	}
	delete(m.docs, id)
	if account := m.accounts[accountID]; account != nil && account.DocCount > 0 {
		account.DocCount--
	}
	return true, nil
}
