package quote

import (
	"regexp"
	"strings"

	"nilinki/internal/pkg/response"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validate checks every field of the quote request and returns either the
// normalized (trimmed) value or the full list of field errors. Malformed
// input is a normal outcome here, never a panic or an early return: all
// applicable errors are collected so the client can fix them in one pass.
func Validate(req QuoteRequest) (QuoteRequest, []response.FieldError) {
	var errs []response.FieldError

	if req.BandID == "" {
		errs = append(errs, response.FieldError{Field: "bandId", Message: "Band ID is required"})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, response.FieldError{Field: "name", Message: "Name is required"})
	} else if len(name) > 100 {
		errs = append(errs, response.FieldError{Field: "name", Message: "Name must be less than 100 characters"})
	}

	email := strings.TrimSpace(req.Email)
	if !emailRegex.MatchString(email) {
		errs = append(errs, response.FieldError{Field: "email", Message: "Invalid email address"})
	} else if len(email) > 255 {
		errs = append(errs, response.FieldError{Field: "email", Message: "Email must be less than 255 characters"})
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" && len(phone) > 20 {
		errs = append(errs, response.FieldError{Field: "phone", Message: "Phone must be less than 20 characters"})
	}

	if req.EventType == "" {
		errs = append(errs, response.FieldError{Field: "eventType", Message: "Event type is required"})
	}

	if req.Date == "" {
		errs = append(errs, response.FieldError{Field: "date", Message: "Event date is required"})
	} else if !dateRegex.MatchString(req.Date) {
		errs = append(errs, response.FieldError{Field: "date", Message: "Invalid date format"})
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		errs = append(errs, response.FieldError{Field: "location", Message: "Location is required"})
	} else if len(location) > 200 {
		errs = append(errs, response.FieldError{Field: "location", Message: "Location must be less than 200 characters"})
	}

	details := strings.TrimSpace(req.Details)
	if len(details) < 10 {
		errs = append(errs, response.FieldError{Field: "details", Message: "Please provide at least 10 characters of detail"})
	} else if len(details) > 2000 {
		errs = append(errs, response.FieldError{Field: "details", Message: "Details must be less than 2000 characters"})
	}

	if len(errs) > 0 {
		return QuoteRequest{}, errs
	}

	return QuoteRequest{
		BandID:    strings.TrimSpace(req.BandID),
		Name:      name,
		Email:     email,
		Phone:     phone,
		EventType: strings.TrimSpace(req.EventType),
		Date:      strings.TrimSpace(req.Date),
		Location:  location,
		Details:   details,
	}, nil
}
