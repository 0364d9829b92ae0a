// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within
// a single entity.
package service

import (
	"time"
)

// Claims is the identity payload embedded in a signed token.
type Claims struct {
	UserID    string    // Subject of the token.
	Email     string    // Present on access tokens only.
	TokenType string    // "access" or "refresh".
	ExpiresAt time.Time // When the token stops verifying.
}

// TokenPair is one issuance of an access/refresh token couple.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService defines the interface for generating and validating JWTs.
// Verification is a pure signature+expiry check with no store lookup;
// whether a refresh token is still honored is the RefreshTokenStore's
// business.
type TokenService interface {
	// IssueTokenPair creates a short-lived access token and a longer-lived
	// refresh token for the user.
	IssueTokenPair(userID, email string) (*TokenPair, error)

	// VerifyAccessToken checks an access token's signature and expiry and
	// returns the embedded claims.
	VerifyAccessToken(token string) (*Claims, error)

	// VerifyRefreshToken checks a refresh token's signature and expiry and
	// returns the embedded claims.
	VerifyRefreshToken(token string) (*Claims, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
