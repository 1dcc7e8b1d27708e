package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"linkshortener/internal/auth"
	"linkshortener/internal/domain"
	"linkshortener/internal/repository"
)

const minPasswordLength = 8

type AuthService struct {
	admins        AdminStore
	hasher        PasswordHasher
	tokens        TokenIssuer
	creationToken string
	now           func() time.Time
}

func NewAuthService(admins AdminStore, hasher PasswordHasher, tokens TokenIssuer, creationToken string) *AuthService {
	return &AuthService{
		admins:        admins,
		hasher:        hasher,
		tokens:        tokens,
		creationToken: creationToken,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an admin account. It requires the configured creation token.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Admin, error) {
	if s.creationToken == "" {
		return nil, ErrRegistrationClosed
	}
	if subtle.ConstantTimeCompare([]byte(req.CreationToken), []byte(s.creationToken)) != 1 {
		return nil, ErrInvalidCreationToken
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.admins.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenResponse, error) {
	admin, err := s.admins.FindAdminByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if err := s.hasher.Compare(admin.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to check password: %w", err)
	}

	token, _, err := s.tokens.Issue(admin.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
	}, nil
}
