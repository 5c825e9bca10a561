package bookmark

import "context"

// Repository defines persistence behaviours for bookmarks. Every lookup is
// keyed by owner so one user can never reach another user's rows.
type Repository interface {
	Create(ctx context.Context, bookmark *Bookmark) error
	GetByID(ctx context.Context, userID, id string) (*Bookmark, error)
	ListByUser(ctx context.Context, userID string) ([]*Bookmark, error)
	Update(ctx context.Context, bookmark *Bookmark) error
	Delete(ctx context.Context, userID, id string) error
}
