package postgres

import (
	"context"
	"errors"

	domain "bookmarks/backend/internal/domain/bookmark"

	"github.com/jackc/pgx/v5"
)

// BookmarkRepository persists bookmarks in PostgreSQL.
type BookmarkRepository struct {
	db Querier
}

// NewBookmarkRepository constructs a repository.
func NewBookmarkRepository(db Querier) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

var _ domain.Repository = (*BookmarkRepository)(nil)

// Create inserts a new bookmark.
func (r *BookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	const query = `
INSERT INTO bookmarks (id, user_id, title, link, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.db.Exec(ctx, query,
		bookmark.ID,
		bookmark.UserID,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
		bookmark.CreatedAt,
		bookmark.UpdatedAt,
	)
	return err
}

// GetByID fetches a bookmark by id within the owner's rows.
func (r *BookmarkRepository) GetByID(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	const query = `
SELECT id, user_id, title, link, description, created_at, updated_at
FROM bookmarks WHERE id = $1 AND user_id = $2
`
	row := r.db.QueryRow(ctx, query, id, userID)
	bookmark, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return bookmark, nil
}

// ListByUser returns the owner's bookmarks, newest first.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Bookmark, error) {
	const query = `
SELECT id, user_id, title, link, description, created_at, updated_at
FROM bookmarks
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := make([]*domain.Bookmark, 0)
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}
	return bookmarks, rows.Err()
}

// Update writes bookmark updates to the database.
func (r *BookmarkRepository) Update(ctx context.Context, bookmark *domain.Bookmark) error {
	const query = `
UPDATE bookmarks
SET title = $3,
    link = $4,
    description = $5,
    updated_at = $6
WHERE id = $1 AND user_id = $2
`
	tag, err := r.db.Exec(ctx, query,
		bookmark.ID,
		bookmark.UserID,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
		bookmark.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a bookmark by id within the owner's rows.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBookmark(row pgx.Row) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Title,
		&b.Link,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
