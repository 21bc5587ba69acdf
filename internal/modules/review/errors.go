package review

import "errors"

var (
	ErrNotEligible     = errors.New("no completed booking with this band")
	ErrAlreadyExists   = errors.New("review already exists")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrContentTooShort = errors.New("review content too short")
)
