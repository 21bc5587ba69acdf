package response

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrors converts a gin binding failure into field-level errors.
// Non-validator errors (malformed JSON) produce an empty slice; callers
// fall back to a generic bad-request message.
func BindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   jsonFieldName(fe.Field()),
			Message: messageForTag(fe),
		})
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "Invalid value"
}

// jsonFieldName lower-cases the leading rune of the struct field so errors
// name the json key the client sent, not the Go field.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
