// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"nosh/config"
	"nosh/internal/domain/service"
	"nosh/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Verification errors. ErrTokenExpired is distinguished so callers can
// report expiry separately from a bad signature when they care.
var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)

// jwtService is a concrete implementation of the TokenService interface
// using the JWT standard. Both token kinds are signed with the same shared
// secret; the "type" claim keeps them from being interchangeable.
type jwtService struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.Token.Secret,
		accessTTL:  cfg.Token.AccessTTL,
		refreshTTL: cfg.Token.RefreshTTL,
	}, nil
}

// IssueTokenPair creates a short-lived access token carrying the user's
// identity and a longer-lived refresh token carrying only the subject.
func (s *jwtService) IssueTokenPair(userID, email string) (*service.TokenPair, error) {
	accessToken, err := s.signToken(userID, email, s.accessTTL, tokenTypeAccess)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	refreshToken, err := s.signToken(userID, "", s.refreshTTL, tokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "sign refresh token")
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccessToken checks an access token's signature and expiry.
func (s *jwtService) VerifyAccessToken(token string) (*service.Claims, error) {
	return s.verifyToken(token, tokenTypeAccess)
}

// VerifyRefreshToken checks a refresh token's signature and expiry.
func (s *jwtService) VerifyRefreshToken(token string) (*service.Claims, error) {
	return s.verifyToken(token, tokenTypeRefresh)
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// signToken is a private helper to create a JWT with specific claims.
func (s *jwtService) signToken(userID, email string, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,              // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"type": tokenType,           // Type of token (access or refresh)
	}
	// Only the access token carries the email, mirroring what the stateless
	// auth gate needs to attach to requests.
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

func (s *jwtService) verifyToken(tokenString, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, errors.Wrap(ErrTokenInvalid, err.Error())
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != wantType {
		return nil, errors.Wrapf(ErrTokenInvalid, "unexpected token type %q", tokenType)
	}

	userID, _ := mapClaims["sub"].(string)
	if userID == "" {
		return nil, errors.Wrap(ErrTokenInvalid, "subject missing from token")
	}

	email, _ := mapClaims["email"].(string)

	claims := &service.Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
	}
	if exp, expErr := mapClaims.GetExpirationTime(); expErr == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
