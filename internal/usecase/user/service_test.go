package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "bookmarks/backend/internal/domain/auth"
	"bookmarks/backend/internal/domain/validation"
	"bookmarks/backend/internal/infrastructure/memory"
	"bookmarks/backend/internal/usecase/user"
)

func strPtr(s string) *string { return &s }

func seed(t *testing.T, repo *memory.UserRepository, id, email string) {
	t.Helper()
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), &domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    created,
		UpdatedAt:    created,
	}))
}

func TestGet(t *testing.T) {
	repo := memory.NewUserRepository()
	seed(t, repo, "u1", "a@x.com")
	svc := user.NewService(repo)

	profile, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	seed(t, repo, "u1", "a@x.com")
	svc := user.NewService(repo)

	profile, err := svc.Update(ctx, "u1", domain.ProfileChanges{
		FirstName: strPtr(" Mubin "),
		Email:     strPtr("Mubin@Gmail.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mubin", profile.FirstName)
	assert.Equal(t, "mubin@gmail.com", profile.Email)
	assert.Empty(t, profile.LastName)
	assert.True(t, profile.UpdatedAt.After(profile.CreatedAt))

	stored, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "hash", stored.PasswordHash, "profile edits must not touch the hash")

	_, err = repo.GetByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "old email should be released")
}

func TestUpdateEmptyChangesIsNoop(t *testing.T) {
	repo := memory.NewUserRepository()
	seed(t, repo, "u1", "a@x.com")
	svc := user.NewService(repo)

	profile, err := svc.Update(context.Background(), "u1", domain.ProfileChanges{})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)
}

func TestUpdateErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		changes domain.ProfileChanges
		wantErr error
	}{
		{name: "email taken", id: "u1", changes: domain.ProfileChanges{Email: strPtr("b@x.com")}, wantErr: domain.ErrEmailExists},
		{name: "blank email", id: "u1", changes: domain.ProfileChanges{Email: strPtr("  ")}, wantErr: validation.ErrInvalid},
		{name: "malformed email", id: "u1", changes: domain.ProfileChanges{Email: strPtr("nope")}, wantErr: validation.ErrInvalid},
		{name: "unknown user", id: "ghost", changes: domain.ProfileChanges{FirstName: strPtr("x")}, wantErr: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewUserRepository()
			seed(t, repo, "u1", "a@x.com")
			seed(t, repo, "u2", "b@x.com")
			svc := user.NewService(repo)

			_, err := svc.Update(context.Background(), tt.id, tt.changes)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
