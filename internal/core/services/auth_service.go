package services

import (
	"context"
	"errors"
	"log"

	"loanguard/internal/adapters/persistence/models"
	"loanguard/internal/adapters/persistence/repositories"
	"loanguard/internal/config"
	"loanguard/internal/core/domain"
	"loanguard/internal/pkg/jwt"
	"loanguard/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles admin authentication business logic
type AuthService struct {
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repositories.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// SignUpInput represents sign-up input
type SignUpInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents a minted bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignUp registers a new admin account. The plaintext password is hashed
// before storage and the insert fails with ErrUserAlreadyExists when the
// username is taken.
func (s *AuthService) SignUp(ctx context.Context, input *SignUpInput) error {
	exists, err := s.adminRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrUserAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username: input.Username,
		Password: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin registered: %s", admin.Username)
	return nil
}

// Login authenticates an admin and mints a bearer token
func (s *AuthService) Login(ctx context.Context, username, plainPassword string) (*TokenResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plainPassword, admin.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := jwt.Generate(admin.Username, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	log.Printf("Admin logged in: %s", admin.Username)

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// CheckCredentials validates a bearer token and returns its subject.
// Beyond the signature and expiry checks it re-checks that the subject
// still exists; a token for a since-deleted admin is rejected.
func (s *AuthService) CheckCredentials(ctx context.Context, accessToken string) (string, error) {
	claims, err := jwt.Validate(accessToken, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}

	if _, err := s.adminRepo.GetByUsername(ctx, claims.Subject); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrTokenInvalid
		}
		return "", err
	}

	return claims.Subject, nil
}
