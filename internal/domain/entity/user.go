package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfarouk/marketpro-api/internal/domain/enum"
)

// User represents a back-office user. Credentials are a flat list checked by
// equality; the password travels with the persisted user list and is only
// stripped from API responses via Sanitized.
type User struct {
	ID          uuid.UUID     `json:"id"`
	Username    string        `json:"username"`
	Password    string        `json:"password"`
	Role        enum.UserRole `json:"role"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone,omitempty"`
	Address     string        `json:"address,omitempty"`
	StartDate   time.Time     `json:"start_date"`
	Permissions []string      `json:"permissions"`
}

// Sanitized returns a copy of the user safe to return from the API
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// HasPermission reports whether the user carries the named permission or the
// catch-all "all" permission.
func (u *User) HasPermission(name string) bool {
	for _, p := range u.Permissions {
		if p == "all" || p == name {
			return true
		}
	}
	return false
}
