package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "bookmarks/backend/internal/domain/auth"
	"bookmarks/backend/internal/domain/validation"

	"github.com/google/uuid"
)

const maxPasswordBytes = 72

// Service coordinates authentication workflows between domain and infrastructure.
type Service struct {
	users   domain.UserRepository
	tokens  TokenManager
	hasher  PasswordHasher
	nowFunc func() time.Time
}

// NewService constructs an auth service.
func NewService(users domain.UserRepository, tokens TokenManager, hasher PasswordHasher) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		hasher:  hasher,
		nowFunc: time.Now,
	}
}

// Signup creates a new user and returns an access token for it.
func (s *Service) Signup(ctx context.Context, creds domain.Credentials) (string, error) {
	creds = normalizeCredentials(creds)
	if err := validation.Struct(creds); err != nil {
		return "", err
	}
	// bcrypt refuses input longer than 72 bytes.
	if len(creds.Password) > maxPasswordBytes {
		return "", validation.Field("password", "max")
	}

	if _, err := s.users.GetByEmail(ctx, creds.Email); err == nil {
		return "", domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hashed, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := s.nowFunc().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        creds.Email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// A concurrent signup with the same email loses at the unique constraint
	// and surfaces as ErrEmailExists from the repository.
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Generate(user.ID)
}

// Signin validates credentials and returns an access token.
func (s *Service) Signin(ctx context.Context, creds domain.Credentials) (string, error) {
	creds = normalizeCredentials(creds)
	if err := validation.Struct(creds); err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Check(creds.Password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Generate(user.ID)
}

// VerifyToken validates a bearer token and returns the associated user profile.
func (s *Service) VerifyToken(ctx context.Context, token string) (*domain.Profile, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil || userID == "" {
		return nil, domain.ErrTokenInvalid
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	return user.Profile(), nil
}

func normalizeCredentials(creds domain.Credentials) domain.Credentials {
	return domain.Credentials{
		Email:    strings.TrimSpace(strings.ToLower(creds.Email)),
		Password: creds.Password,
	}
}
