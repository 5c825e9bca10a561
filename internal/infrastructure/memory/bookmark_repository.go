package memory

import (
	"context"
	"sort"
	"sync"

	domain "bookmarks/backend/internal/domain/bookmark"
)

// BookmarkRepository keeps bookmarks in process memory.
type BookmarkRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Bookmark
}

// NewBookmarkRepository constructs an empty repository.
func NewBookmarkRepository() *BookmarkRepository {
	return &BookmarkRepository{items: make(map[string]domain.Bookmark)}
}

var _ domain.Repository = (*BookmarkRepository)(nil)

// Create inserts a new bookmark.
func (r *BookmarkRepository) Create(_ context.Context, bookmark *domain.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[bookmark.ID] = *bookmark
	return nil
}

// GetByID fetches a bookmark owned by userID.
func (r *BookmarkRepository) GetByID(_ context.Context, userID, id string) (*domain.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok || b.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// ListByUser returns the user's bookmarks, newest first.
func (r *BookmarkRepository) ListByUser(_ context.Context, userID string) ([]*domain.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Bookmark, 0)
	for _, b := range r.items {
		if b.UserID == userID {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update writes bookmark changes.
func (r *BookmarkRepository) Update(_ context.Context, bookmark *domain.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[bookmark.ID]
	if !ok || current.UserID != bookmark.UserID {
		return domain.ErrNotFound
	}
	r.items[bookmark.ID] = *bookmark
	return nil
}

// Delete removes a bookmark owned by userID.
func (r *BookmarkRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.items[id]
	if !ok || b.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
