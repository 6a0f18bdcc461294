// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues access tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mahinuralam/Color-Paletters/internal/common"
	"github.com/mahinuralam/Color-Paletters/internal/server/auth"
	"github.com/mahinuralam/Color-Paletters/internal/server/config"
	"github.com/mahinuralam/Color-Paletters/internal/server/models"
	"github.com/mahinuralam/Color-Paletters/internal/server/repositories/repomanager"

	"github.com/google/uuid"
)

// UserService provides authentication-related operations:
//   - Register: create a user and issue its first access token
//   - Login: verify credentials and mint an access token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with the given username, email, and password,
// and returns the user together with a freshly issued access token.
// A username that is already taken yields common.ErrorLoginAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	exists, err := repo.Exists(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error checking user existence: %w", err)
	}
	if exists {
		return nil, "", common.ErrorLoginAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	u, err := repo.Create(ctx, user)
	if err != nil {
		// The existence check above races with concurrent registrations;
		// the unique constraint is the authority.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorLoginAlreadyExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateAccessToken(u.ID)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	return u, token, nil
}

// Login verifies the provided password against the stored hash and, on
// success, returns a new access token. An unknown username and a wrong
// password both yield the identical common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}
