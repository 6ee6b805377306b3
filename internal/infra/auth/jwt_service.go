package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/service"
	"market/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return nil, errors.New("jwt token lifetimes must be positive")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, nil
}

// IssueAccessToken signs a short-lived access token.
func (s *jwtService) IssueAccessToken(subject entity.TokenSubject, now time.Time) (string, error) {
	return s.issue(subject, entity.TokenKindAccess, now)
}

// IssueRefreshToken signs a long-lived refresh token.
func (s *jwtService) IssueRefreshToken(subject entity.TokenSubject, now time.Time) (string, error) {
	return s.issue(subject, entity.TokenKindRefresh, now)
}

// ValidateToken parses and verifies a token of the expected kind. Every failure
// is reported as service.ErrInvalidToken.
func (s *jwtService) ValidateToken(tokenString string, kind entity.TokenKind, now time.Time) (*service.Claims, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return nil, service.ErrInvalidToken
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	if claims.TokenType != kind || claims.Subject == "" || claims.UserID == 0 {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}

func (s *jwtService) issue(subject entity.TokenSubject, kind entity.TokenKind, now time.Time) (string, error) {
	secret, err := s.secretFor(kind)
	if err != nil {
		return "", err
	}

	ttl := s.accessTTL
	if kind == entity.TokenKindRefresh {
		ttl = s.refreshTTL
	}

	claims := service.Claims{
		UserID:    subject.UserID,
		Role:      subject.Role,
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", kind)
	}

	return signed, nil
}

func (s *jwtService) secretFor(kind entity.TokenKind) ([]byte, error) {
	switch kind {
	case entity.TokenKindAccess:
		return s.accessSecret, nil
	case entity.TokenKindRefresh:
		return s.refreshSecret, nil
	default:
		return nil, errors.Errorf("unknown token kind %q", kind)
	}
}
