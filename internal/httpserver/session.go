package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	authdomain "bookmarks/backend/internal/domain/auth"
)

type ctxKeyUser struct{}

// authMiddleware rejects requests without a valid bearer token and stores the
// resolved profile in the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "authorization token required")
			return
		}

		profile, err := s.authService.VerifyToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, authdomain.ErrTokenInvalid) {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			s.writeDomainError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withCurrentUser(r.Context(), profile)))
	})
}

func withCurrentUser(ctx context.Context, profile *authdomain.Profile) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, profile)
}

func currentUserFromContext(ctx context.Context) (*authdomain.Profile, bool) {
	profile, ok := ctx.Value(ctxKeyUser{}).(*authdomain.Profile)
	if !ok || profile == nil {
		return nil, false
	}
	return profile, true
}

// requireUser returns the authenticated profile or writes a 401.
func requireUser(w http.ResponseWriter, r *http.Request) (*authdomain.Profile, bool) {
	profile, ok := currentUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
	}
	return profile, ok
}

func extractBearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
