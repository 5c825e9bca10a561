package bookmark

import (
	"context"
	"strings"
	"time"

	domain "bookmarks/backend/internal/domain/bookmark"
	"bookmarks/backend/internal/domain/validation"

	"github.com/google/uuid"
)

// Service encapsulates bookmark use cases. Every method is scoped to the
// owner passed in by the caller.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a bookmark service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for bookmark creation.
type CreateInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Link        string `json:"link" validate:"omitempty,url"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateInput encapsulates partial bookmark updates.
type UpdateInput struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// Create stores a new bookmark after validation.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*domain.Bookmark, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Link = strings.TrimSpace(input.Link)
	input.Description = strings.TrimSpace(input.Description)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	bookmark := &domain.Bookmark{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// List retrieves all bookmarks of the user.
func (s *Service) List(ctx context.Context, userID string) ([]*domain.Bookmark, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get fetches one of the user's bookmarks by id.
func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID, id)
}

// Update applies partial updates to one of the user's bookmarks.
func (s *Service) Update(ctx context.Context, userID, id string, input UpdateInput) (*domain.Bookmark, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	input.Title = trimPtr(input.Title)
	input.Link = trimPtr(input.Link)
	input.Description = trimPtr(input.Description)
	if input.Title != nil && *input.Title == "" {
		return nil, validation.Field("title", "required")
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	bookmark, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	bookmark.Update(input.Title, input.Link, input.Description, s.nowFunc().UTC())

	if err := s.repo.Update(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

// Delete removes one of the user's bookmarks.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, id)
}

// parseID canonicalises a bookmark id. Anything that is not a UUID cannot
// exist, so it is reported as not found.
func parseID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", domain.ErrNotFound
	}
	return id.String(), nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
