package repository

import "errors"

// Sentinel kinds for corpus and profile errors.
var (
	ErrUserNotFound = errors.New("user not found")
)
