package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "bookmarks/backend/internal/domain/bookmark"
)

var bookmarkColumns = []string{"id", "user_id", "title", "link", "description", "created_at", "updated_at"}

const ownerID = "0b8f3c9e-8f4a-4d0e-9a7e-3c1f7b2d9e10"

func sampleBookmark() *domain.Bookmark {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Bookmark{
		ID:        "7d3c2b1a-1111-4c2d-8e9f-a0b1c2d3e4f5",
		UserID:    ownerID,
		Title:     "First Bookmark",
		Link:      "https://go.dev/doc/",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBookmarkRepositoryCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookmarkRepository(mock)
	b := sampleBookmark()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookmarks")).
		WithArgs(b.ID, b.UserID, b.Title, b.Link, b.Description, b.CreatedAt, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), b))
}

func TestBookmarkRepositoryGetByIDScopedToOwner(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookmarkRepository(mock)
	b := sampleBookmark()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookmarks WHERE id = $1 AND user_id = $2")).
		WithArgs(b.ID, b.UserID).
		WillReturnRows(pgxmock.NewRows(bookmarkColumns).
			AddRow(b.ID, b.UserID, b.Title, b.Link, b.Description, b.CreatedAt, b.UpdatedAt))
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookmarks WHERE id = $1 AND user_id = $2")).
		WithArgs(b.ID, "someone-else").
		WillReturnRows(pgxmock.NewRows(bookmarkColumns))

	got, err := repo.GetByID(context.Background(), b.UserID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = repo.GetByID(context.Background(), "someone-else", b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookmarkRepositoryListByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookmarkRepository(mock)
	newer := sampleBookmark()
	older := sampleBookmark()
	older.ID = "7d3c2b1a-2222-4c2d-8e9f-a0b1c2d3e4f5"
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows(bookmarkColumns).
			AddRow(newer.ID, newer.UserID, newer.Title, newer.Link, newer.Description, newer.CreatedAt, newer.UpdatedAt).
			AddRow(older.ID, older.UserID, older.Title, older.Link, older.Description, older.CreatedAt, older.UpdatedAt))

	got, err := repo.ListByUser(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestBookmarkRepositoryListByUserEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookmarkRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows(bookmarkColumns))

	got, err := repo.ListByUser(context.Background(), ownerID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBookmarkRepositoryUpdateMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookmarkRepository(mock)
	b := sampleBookmark()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookmarks")).
		WithArgs(b.ID, b.UserID, b.Title, b.Link, b.Description, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), b), domain.ErrNotFound)
}

func TestBookmarkRepositoryDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewBookmarkRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookmarks")).
		WithArgs("b1", ownerID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookmarks")).
		WithArgs("b1", ownerID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), ownerID, "b1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), ownerID, "b1"), domain.ErrNotFound)
}
