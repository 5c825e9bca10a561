package user

import (
	"context"
	"strings"
	"time"

	domain "bookmarks/backend/internal/domain/auth"
	"bookmarks/backend/internal/domain/validation"
)

// Service provides profile use cases for the authenticated user.
type Service struct {
	repo    domain.UserRepository
	nowFunc func() time.Time
}

// NewService constructs a user service around the provided repository.
func NewService(repo domain.UserRepository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// Get retrieves the profile of a single user.
func (s *Service) Get(ctx context.Context, id string) (*domain.Profile, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}

// Update applies a partial profile update and returns the new profile.
func (s *Service) Update(ctx context.Context, id string, changes domain.ProfileChanges) (*domain.Profile, error) {
	changes = normalizeChanges(changes)
	if changes.Email != nil && *changes.Email == "" {
		return nil, validation.Field("email", "required")
	}
	if err := validation.Struct(changes); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes.Apply(user)
	user.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.Profile(), nil
}

func normalizeChanges(in domain.ProfileChanges) domain.ProfileChanges {
	var out domain.ProfileChanges
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		out.Email = &email
	}
	if in.FirstName != nil {
		first := strings.TrimSpace(*in.FirstName)
		out.FirstName = &first
	}
	if in.LastName != nil {
		last := strings.TrimSpace(*in.LastName)
		out.LastName = &last
	}
	return out
}
