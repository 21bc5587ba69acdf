package quote

import "errors"

var (
	ErrBandNotFound   = errors.New("band not found")
	ErrPersistFailure = errors.New("failed to save quote request")
)
