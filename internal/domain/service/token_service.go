package service

import (
	"time"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single outcome of every token verification failure.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims carried by access and refresh tokens.
// The subject (sub) holds the user's email.
type Claims struct {
	UserID    int64            `json:"id"`
	Role      entity.Role      `json:"role"`
	TokenType entity.TokenKind `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token for the subject.
	IssueAccessToken(subject entity.TokenSubject, now time.Time) (string, error)

	// IssueRefreshToken signs a long-lived refresh token for the subject.
	IssueRefreshToken(subject entity.TokenSubject, now time.Time) (string, error)

	// ValidateToken verifies signature, expiry and kind. Any failure returns ErrInvalidToken.
	ValidateToken(tokenString string, kind entity.TokenKind, now time.Time) (*Claims, error)
}
