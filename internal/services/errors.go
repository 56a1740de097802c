package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrContentTypeNotFound = errors.New("content type not found")
	ErrContentNotFound     = errors.New("content not found")
	ErrMediaNotFound       = errors.New("media not found")
	ErrEmptyContent        = errors.New("content data is empty, cannot publish")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserInactive        = errors.New("user account is deactivated")
)

// DuplicateError reports a uniqueness conflict on a named field. The
// message carries both the field and the offending value so callers can
// surface it directly.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s '%s' is already taken", e.Field, e.Value)
}
