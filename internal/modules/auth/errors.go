package auth

import "errors"

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrBandDetailsRequired = errors.New("band name, genre and location are required")
)
