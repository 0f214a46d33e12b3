package errors

import (
	"errors"
)

var (
	ErrAccountDisabled       = errors.New("account disabled")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenInvalidOrExpired = errors.New("token invalid or expired")
	ErrPasswordNotAMatch     = errors.New("password not a match")
	ErrInvalidSecurityKey    = errors.New("invalid security key")
	ErrUserNotFound          = errors.New("user not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrEmailAlreadyInUse     = errors.New("email already in use")
)
