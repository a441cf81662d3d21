// Package common defines shared constants and sentinel errors used across
// the moonui client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Storage errors. ErrStorage is returned by the one write path that is
	// not tolerant (saving a user); reads degrade to zero values instead.
	ErrStorage        = errors.New("storage error")
	ErrUsernameExists = errors.New("username already exists")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// HTTP-layer errors.
	ErrSessionExpired = errors.New("session expired, please log in again")
)
