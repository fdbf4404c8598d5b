package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TomaszGajek/settlements-sub000/internal/config"
	"github.com/TomaszGajek/settlements-sub000/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidSubject    = errors.New("token subject is not a user id")
)

// TokenService verifies HS256 access tokens signed with the identity provider's secret
type TokenService struct {
	config.AuthConfig
}

// NewTokenService creates a new token service from auth configuration
func NewTokenService(authConfig *config.AuthConfig) TokenServiceInterface {
	return &TokenService{
		AuthConfig: *authConfig,
	}
}

// ValidateAccessToken validates and parses an access token. The subject must be the
// owner's UUID.
func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.AccessClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if ts.JWTSecret == "" {
		return nil, fmt.Errorf("%w: verification secret not configured", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, ts.keyFunc, ts.parserOptions()...)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.OwnerID(); err != nil {
		return nil, ErrInvalidSubject
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (ts *TokenService) parserOptions() []jwt.ParserOption {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if ts.Issuer != "" {
		options = append(options, jwt.WithIssuer(ts.Issuer))
	}
	if ts.Audience != "" {
		options = append(options, jwt.WithAudience(ts.Audience))
	}
	return options
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(ts.JWTSecret), nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
