package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleAuthor Role = "AUTHOR"
	RoleViewer Role = "VIEWER"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,50}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// User is an account that can author content and upload media.
// Username and email are immutable lookup keys; deletion is logical (Active=false).
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"size:20;not null;default:'AUTHOR'" json:"role"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks field constraints on a candidate user whose Password
// still holds the plaintext (pre-hash) value.
func (u *User) Validate() error {
	if !usernameRe.MatchString(u.Username) {
		return &ValidationError{Field: "username", Reason: "must be 3-50 characters of letters, digits or underscore"}
	}
	if !emailRe.MatchString(u.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(u.Password) < 8 {
		return &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if u.Role != "" && !u.Role.Valid() {
		return &ValidationError{Field: "role", Reason: "must be one of ADMIN, EDITOR, AUTHOR, VIEWER"}
	}
	return nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleAuthor, RoleViewer:
		return true
	}
	return false
}

// Deactivated returns a copy of the user with Active cleared.
func (u User) Deactivated() User {
	u.Active = false
	return u
}
