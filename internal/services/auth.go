package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserByUsernameReader looks users up by username.
type UserByUsernameReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles login.
type AuthService struct {
	reader UserByUsernameReader
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserByUsernameReader, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates a user and returns an access token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Log.Warnw("user does not exist", "username", username)
			return "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
