package bookmark

import (
	"errors"
	"time"
)

// ErrNotFound indicates a bookmark could not be located for its owner.
var ErrNotFound = errors.New("bookmark not found")

// Bookmark is a saved link owned by a single user.
type Bookmark struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Link        string    `json:"link,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Update applies arbitrary field updates to the bookmark.
func (b *Bookmark) Update(title, link, description *string, now time.Time) {
	if title != nil {
		b.Title = *title
	}
	if link != nil {
		b.Link = *link
	}
	if description != nil {
		b.Description = *description
	}
	b.UpdatedAt = now
}
