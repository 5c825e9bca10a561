package httpserver

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	authdomain "bookmarks/backend/internal/domain/auth"
	bookmarkdomain "bookmarks/backend/internal/domain/bookmark"
	"bookmarks/backend/internal/domain/validation"
)

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: validation.Field("email", "required"), want: http.StatusBadRequest},
		{name: "invalid json", err: errInvalidJSON, want: http.StatusBadRequest},
		{name: "conflict", err: fmt.Errorf("insert: %w", authdomain.ErrEmailExists), want: http.StatusConflict},
		{name: "credentials", err: authdomain.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "token", err: authdomain.ErrTokenInvalid, want: http.StatusUnauthorized},
		{name: "user not found", err: authdomain.ErrUserNotFound, want: http.StatusNotFound},
		{name: "bookmark not found", err: bookmarkdomain.ErrNotFound, want: http.StatusNotFound},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &Server{logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))}
			rec := httptest.NewRecorder()
			srv.writeDomainError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWriteDomainErrorHidesInternalDetails(t *testing.T) {
	var logs bytes.Buffer
	srv := &Server{logger: slog.New(slog.NewTextHandler(&logs, nil))}
	rec := httptest.NewRecorder()

	srv.writeDomainError(rec, httptest.NewRequest(http.MethodGet, "/bookmarks", nil), errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "connection refused")
}
