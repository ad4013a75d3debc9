package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/dockit/internal/config"
	"github.com/jonathan/dockit/internal/db"
	"github.com/jonathan/dockit/internal/server/middleware"
	"github.com/jonathan/dockit/internal/types"
)

// AccountStore is the subset of db.DB the account service needs.
// Kept as an interface so handler tests can run against an in-memory store.
type AccountStore interface {
	CreateAccount(ctx context.Context, email, passwordHash, apiKey string, docLimit int) (*db.Account, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	GetAccountByEmail(ctx context.Context, email string) (*db.Account, error)
	GetAccountByAPIKey(ctx context.Context, apiKey string) (*db.Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*db.Account, error)
}

// AccountService provides business logic for account operations.
type AccountService struct {
	store          AccountStore
	passwordConfig *config.PasswordConfig
	docLimit       int
}

// NewAccountService creates a new AccountService with the given dependencies.
func NewAccountService(store AccountStore, passwordConfig *config.PasswordConfig, docLimit int) *AccountService {
	return &AccountService{
		store:          store,
		passwordConfig: passwordConfig,
		docLimit:       docLimit,
	}
}

// newAPIKey generates a fresh API key: the dk_live_ prefix plus 48 hex
// characters of randomness.
func newAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return middleware.APIKeyPrefix + hex.EncodeToString(buf), nil
}

// redactAPIKey keeps the prefix and first four characters of the random
// part so an account holder can recognize their key without the response
// leaking it.
func redactAPIKey(key string) string {
	rest := strings.TrimPrefix(key, middleware.APIKeyPrefix)
	if len(rest) <= 4 {
		return key
	}
	return middleware.APIKeyPrefix + rest[:4] + strings.Repeat("*", 8)
}

func accountResponse(a *db.Account, apiKey string) *types.Account {
	return &types.Account{
		ID:        a.ID,
		Email:     a.Email,
		APIKey:    apiKey,
		DocCount:  a.DocCount,
		DocLimit:  a.DocLimit,
		CreatedAt: a.CreatedAt,
	}
}

// Signup creates a new account with a fresh API key.
func (s *AccountService) Signup(ctx context.Context, req *types.SignupRequest) (*types.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.store.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	apiKey, err := newAPIKey()
	if err != nil {
		return nil, err
	}

	account, err := s.store.CreateAccount(ctx, email, passwordHash, apiKey, s.docLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Signup is the one response carrying the full API key.
	return accountResponse(account, account.APIKey), nil
}

// Login verifies credentials and returns the account with its full API key,
// matching signup so a returning caller can recover the key.
func (s *AccountService) Login(ctx context.Context, req *types.LoginRequest) (*types.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil || !s.passwordConfig.VerifyPassword(req.Password, account.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return accountResponse(account, account.APIKey), nil
}

// Get returns the account for /account/me with the API key redacted.
func (s *AccountService) Get(ctx context.Context, accountID uuid.UUID) (*types.Account, error) {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, &ErrAccountNotFound{AccountID: accountID}
	}
	return accountResponse(account, redactAPIKey(account.APIKey)), nil
}

// ResolveAPIKey implements middleware.CredentialResolver.
func (s *AccountService) ResolveAPIKey(ctx context.Context, apiKey string) (uuid.UUID, error) {
	account, err := s.store.GetAccountByAPIKey(ctx, apiKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to look up api key: %w", err)
	}
	if account == nil {
		return uuid.Nil, &ErrInvalidCredentials{}
	}
	return account.ID, nil
}
