package domain

import "errors"

var (
	ErrPlaceNotFound      = errors.New("place not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotOwner is returned when the authenticated identity does not match
	// the target place's owner. Ownership is compared as canonical id strings.
	ErrNotOwner        = errors.New("caller does not own this place")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrGeocodingFailed = errors.New("could not resolve address to coordinates")
)
