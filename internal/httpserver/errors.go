package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	authdomain "bookmarks/backend/internal/domain/auth"
	bookmarkdomain "bookmarks/backend/internal/domain/bookmark"
	"bookmarks/backend/internal/domain/validation"
)

// writeDomainError maps use case errors onto HTTP statuses. Unrecognised
// errors are logged and hidden behind a generic 500.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		writeValidationError(w, fields)
	case errors.Is(err, errInvalidJSON):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, authdomain.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrTokenInvalid):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, bookmarkdomain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
