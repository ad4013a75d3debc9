package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/dockit/internal/server/middleware"
	"github.com/jonathan/dockit/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	accounts  *AccountService
	documents *DocumentService
	jwt       *JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts *AccountService, documents *DocumentService, jwt *JWTService) *AuthHandler {
	return &AuthHandler{accounts: accounts, documents: documents, jwt: jwt}
}

func (h *AuthHandler) respond(w http.ResponseWriter, status int, account *types.Account) {
	token, err := h.jwt.GenerateToken(account.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.AuthResponse{Account: account, Token: token})
}

// Signup handles account creation requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.accounts.Signup(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.respond(w, http.StatusCreated, account)
}

// Login handles login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	account, err := h.accounts.Login(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	h.respond(w, http.StatusOK, account)
}

// Me returns the authenticated account with its API key redacted, plus
// the five most recently created documents.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	account, err := h.accounts.Get(r.Context(), accountID)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	recent, err := h.documents.Recent(r.Context(), accountID, 5)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.MeResponse{Account: account, RecentDocuments: recent})
}
