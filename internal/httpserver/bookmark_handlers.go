package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	bookmarkusecase "bookmarks/backend/internal/usecase/bookmark"
)

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := s.bookmarkService.List(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var payload bookmarkusecase.CreateInput
	if err := decodeJSON(w, r, &payload); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	item, err := s.bookmarkService.Create(r.Context(), user.ID, payload)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleGetBookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	item, err := s.bookmarkService.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateBookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var payload bookmarkusecase.UpdateInput
	if err := decodeJSON(w, r, &payload); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	item, err := s.bookmarkService.Update(r.Context(), user.ID, chi.URLParam(r, "id"), payload)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := s.bookmarkService.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
