// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core identity record of the system. The UserID is the
// business key used everywhere else; email and phone number are both
// unique login/contact identifiers.
type User struct {
	UserID       string    // The unique business identifier for the user (UUID string).
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name. Optional.
	Email        string    // Unique, lowercased contact email, used as the login identifier.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized outward.
	PhoneNumber  string    // Unique contact phone number.
	Addresses    []Address // Embedded delivery addresses owned by this user.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// DefaultAddress returns the address flagged as default, or the first
// address when none is flagged. The second return is false when the user
// has no addresses at all.
func (u *User) DefaultAddress() (Address, bool) {
	if len(u.Addresses) == 0 {
		return Address{}, false
	}
	for _, addr := range u.Addresses {
		if addr.IsDefault {
			return addr, true
		}
	}

	return u.Addresses[0], true
}
