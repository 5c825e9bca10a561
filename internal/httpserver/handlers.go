package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authdomain "bookmarks/backend/internal/domain/auth"
)

func (s *Server) registerRoutes() {
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/signin", s.handleSignin)
	})

	s.router.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Get("/users/me", s.handleMe)
		r.Patch("/users", s.handleUpdateUser)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", s.handleListBookmarks)
			r.Post("/", s.handleCreateBookmark)
			r.Get("/{id}", s.handleGetBookmark)
			r.Patch("/{id}", s.handleUpdateBookmark)
			r.Delete("/{id}", s.handleDeleteBookmark)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var creds authdomain.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	token, err := s.authService.Signup(r.Context(), creds)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token})
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	var creds authdomain.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	token, err := s.authService.Signin(r.Context(), creds)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	profile, err := s.userService.Get(r.Context(), current.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	current, ok := requireUser(w, r)
	if !ok {
		return
	}

	var changes authdomain.ProfileChanges
	if err := decodeJSON(w, r, &changes); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	profile, err := s.userService.Update(r.Context(), current.ID, changes)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
