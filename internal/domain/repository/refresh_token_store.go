package repository

import (
	"context"
	"time"

	"nosh/internal/domain/entity"
)

// RefreshTokenStore is the server-side set of outstanding refresh tokens,
// keyed by the raw token string. A refresh token is valid only while its
// session is present here, which is what makes revocation and one-time
// rotation possible.
//
// Remove has compare-and-remove semantics: for any given token, exactly one
// of any number of concurrent callers observes true. Rotation removes the
// old token before issuing a replacement, so at most one refresh attempt
// per token can ever succeed.
type RefreshTokenStore interface {
	// Save records a session for the token, overwriting any previous value.
	// ttl bounds how long the backing store keeps the entry.
	Save(ctx context.Context, token string, session entity.RefreshSession, ttl time.Duration) error

	// Remove deletes the token's session. The boolean reports whether this
	// call was the one that removed it; false means the token was absent
	// (never issued, already rotated, revoked, or expired out of the store).
	Remove(ctx context.Context, token string) (bool, error)
}
