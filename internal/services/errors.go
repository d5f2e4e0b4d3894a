package services

import (
	"errors"

	"StorefrontAPI/external/shopapi"
)

// FieldErrors maps form field names to messages. Validation happens before
// any backend request and is surfaced inline per field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation failed"
}

// Displayable extracts the backend's error string for the user, or falls
// back to a generic message when the failure carried no payload (network
// error, malformed response).
func Displayable(err error, fallback string) string {
	var apiErr *shopapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
