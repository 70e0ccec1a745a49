package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidCookie   = errors.New("invalid session cookie")
	ErrNotAdmin        = errors.New("not authorized as an admin")
	ErrMissingToken    = errors.New("login response did not include a token")
)
