// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// RefreshSession is the server-side record kept for one outstanding refresh
// token. A refresh token is valid only while its session is present in the
// token store; removing the session revokes the token regardless of its
// cryptographic validity.
type RefreshSession struct {
	UserID    string    // The user the session belongs to.
	Email     string    // Login email at issuance time, echoed into new access tokens.
	ExpiresAt time.Time // When the refresh token itself expires.
}
