package jwt

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSecretKey signs tokens when no secret is configured. It must not be
// used in production.
const DefaultSecretKey = "my_super_secret_key"

const defaultExpiration = 15 * time.Minute

var (
	ErrMissingHeader = errors.New("authorization header missing")
	ErrInvalidHeader = errors.New("invalid authorization header format")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims is the payload of an access token. The caller identity travels both
// as user_id and as the standard subject.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 access tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a JWT with the given options applied over the defaults.
func New(opts ...Option) *JWT {
	j := &JWT{
		secretKey: []byte(DefaultSecretKey),
		exp:       defaultExpiration,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for userID.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses and verifies tokenString.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, errors.New("user_id not found in token")
	}
	return claims, nil
}

// Validate reports whether tokenString is a valid token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidHeader
	}

	return parts[1], nil
}
