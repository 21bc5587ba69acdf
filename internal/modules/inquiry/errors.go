package inquiry

import "errors"

var (
	ErrNoBand            = errors.New("no band registered for this account")
	ErrInquiryNotFound   = errors.New("inquiry not found")
	ErrNotOwner          = errors.New("inquiry belongs to another band")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
