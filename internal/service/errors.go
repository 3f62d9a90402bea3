package service

import "errors"

// Sentinel errors mapped to HTTP status codes by the handlers.
var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrFeedNotFound     = errors.New("feed not found")
)
