package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "bookmarks/backend/internal/domain/auth"
	bookmarkdomain "bookmarks/backend/internal/domain/bookmark"
)

func TestUserRepositoryEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.Create(ctx, &authdomain.User{ID: "u1", Email: "a@x.com", PasswordHash: "h1"}))
	require.NoError(t, repo.Create(ctx, &authdomain.User{ID: "u2", Email: "b@x.com", PasswordHash: "h2"}))

	err := repo.Create(ctx, &authdomain.User{ID: "u3", Email: "a@x.com"})
	assert.ErrorIs(t, err, authdomain.ErrEmailExists)

	err = repo.Update(ctx, &authdomain.User{ID: "u2", Email: "a@x.com"})
	assert.ErrorIs(t, err, authdomain.ErrEmailExists)

	require.NoError(t, repo.Update(ctx, &authdomain.User{ID: "u2", Email: "c@x.com"}))
	got, err := repo.GetByEmail(ctx, "c@x.com")
	require.NoError(t, err)
	assert.Equal(t, "h2", got.PasswordHash)

	err = repo.Update(ctx, &authdomain.User{ID: "ghost", Email: "d@x.com"})
	assert.ErrorIs(t, err, authdomain.ErrUserNotFound)
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.Create(ctx, &authdomain.User{ID: "u1", Email: "a@x.com"}))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	got.Email = "mutated@x.com"

	again, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", again.Email)
}

func TestBookmarkRepositoryOrderingAndScope(t *testing.T) {
	ctx := context.Background()
	repo := NewBookmarkRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &bookmarkdomain.Bookmark{ID: "b1", UserID: "u1", Title: "old", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &bookmarkdomain.Bookmark{ID: "b2", UserID: "u1", Title: "new", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, &bookmarkdomain.Bookmark{ID: "b3", UserID: "u2", Title: "other", CreatedAt: base}))

	items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b2", items[0].ID)
	assert.Equal(t, "b1", items[1].ID)

	empty, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	err = repo.Update(ctx, &bookmarkdomain.Bookmark{ID: "b3", UserID: "u1", Title: "hijack"})
	assert.ErrorIs(t, err, bookmarkdomain.ErrNotFound)
}
