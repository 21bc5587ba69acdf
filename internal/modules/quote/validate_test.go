package quote

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"nilinki/internal/pkg/response"
)

func validRequest() QuoteRequest {
	return QuoteRequest{
		BandID:    "band-1",
		Name:      "Maya Client",
		Email:     "maya@example.com",
		Phone:     "+1 555 010 1001",
		EventType: "Wedding",
		Date:      "2026-10-20",
		Location:  "Berlin",
		Details:   "We are planning a wedding for about 80 guests.",
	}
}

func fieldsOf(errs []response.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidate_ValidRequest(t *testing.T) {
	clean, errs := Validate(validRequest())
	assert.Empty(t, errs)
	assert.Equal(t, "Maya Client", clean.Name)
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	req := validRequest()
	req.Name = "  Maya Client  "
	req.Email = " maya@example.com "
	req.Location = " Berlin "

	clean, errs := Validate(req)
	assert.Empty(t, errs)
	assert.Equal(t, "Maya Client", clean.Name)
	assert.Equal(t, "maya@example.com", clean.Email)
	assert.Equal(t, "Berlin", clean.Location)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	_, errs := Validate(QuoteRequest{})

	// every required field reports at once
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "bandId")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "eventType")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "location")
	assert.Contains(t, fields, "details")
	assert.NotContains(t, fields, "phone", "phone is optional")
}

func TestValidate_NameRules(t *testing.T) {
	req := validRequest()
	req.Name = "   "
	_, errs := Validate(req)
	assert.Equal(t, []response.FieldError{{Field: "name", Message: "Name is required"}}, errs)

	req.Name = strings.Repeat("a", 101)
	_, errs = Validate(req)
	assert.Equal(t, "Name must be less than 100 characters", errs[0].Message)

	req.Name = strings.Repeat("a", 100)
	_, errs = Validate(req)
	assert.Empty(t, errs)
}

func TestValidate_EmailRules(t *testing.T) {
	req := validRequest()

	for _, bad := range []string{"", "no-at-sign", "two@@example.com", "spaces in@example.com", "missing@tld"} {
		req.Email = bad
		_, errs := Validate(req)
		assert.Equal(t, "Invalid email address", errs[0].Message, "email %q", bad)
	}

	req.Email = strings.Repeat("a", 250) + "@b.co"
	_, errs := Validate(req)
	assert.Equal(t, "Email must be less than 255 characters", errs[0].Message)
}

func TestValidate_PhoneOptionalButBounded(t *testing.T) {
	req := validRequest()
	req.Phone = ""
	_, errs := Validate(req)
	assert.Empty(t, errs)

	req.Phone = strings.Repeat("1", 21)
	_, errs = Validate(req)
	assert.Equal(t, "Phone must be less than 20 characters", errs[0].Message)
}

func TestValidate_DateRules(t *testing.T) {
	req := validRequest()

	req.Date = ""
	_, errs := Validate(req)
	assert.Equal(t, "Event date is required", errs[0].Message)

	for _, bad := range []string{"20-10-2026", "2026/10/20", "2026-1-2", "tomorrow"} {
		req.Date = bad
		_, errs = Validate(req)
		assert.Equal(t, "Invalid date format", errs[0].Message, "date %q", bad)
	}
}

func TestValidate_DetailsRules(t *testing.T) {
	req := validRequest()

	req.Details = "too short"
	_, errs := Validate(req)
	assert.Equal(t, "Please provide at least 10 characters of detail", errs[0].Message)

	// nine non-space characters padded with whitespace still fails
	req.Details = "  short     "
	_, errs = Validate(req)
	assert.Len(t, errs, 1)

	req.Details = strings.Repeat("a", 2001)
	_, errs = Validate(req)
	assert.Equal(t, "Details must be less than 2000 characters", errs[0].Message)
}

func TestValidate_LocationRules(t *testing.T) {
	req := validRequest()

	req.Location = " "
	_, errs := Validate(req)
	assert.Equal(t, "Location is required", errs[0].Message)

	req.Location = strings.Repeat("x", 201)
	_, errs = Validate(req)
	assert.Equal(t, "Location must be less than 200 characters", errs[0].Message)
}
