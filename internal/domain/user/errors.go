package user

import "errors"

// ErrUserNotFound indicates no user record exists for an identifier.
var ErrUserNotFound = errors.New("user not found")
