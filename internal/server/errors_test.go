package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.test"}, http.StatusConflict},
		{"bad credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"account missing", &ErrAccountNotFound{AccountID: uuid.New()}, http.StatusNotFound},
		{"document missing", &ErrDocumentNotFound{DocumentID: uuid.New()}, http.StatusNotFound},
		{"quota", &ErrQuotaExceeded{Limit: 15}, http.StatusTooManyRequests},
		{"validation", &ErrValidation{Field: "kind", Message: "unknown"}, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}
