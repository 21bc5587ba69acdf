package middleware

import "errors"

var (
	errAuthRequired = errors.New("Authentication required")
	errAuthInvalid  = errors.New("Invalid authentication")
)
