package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidName        = "INVALID_NAME"
	ErrCodeInvalidID          = "INVALID_ID"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeCategoryNotFound   = "CATEGORY_NOT_FOUND"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeCategoryInUse      = "CATEGORY_IN_USE"
	ErrCodeDuplicateName      = "DUPLICATE_NAME"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeMissingToken       = "MISSING_TOKEN"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidName        = NewDomainError(ErrCodeInvalidName, "Name must not be empty")
	ErrInvalidID          = NewDomainError(ErrCodeInvalidID, "ID must be a positive integer")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must not be negative")
	ErrCategoryNotFound   = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCategoryInUse      = NewDomainError(ErrCodeCategoryInUse, "Category still has products")
	ErrDuplicateName      = NewDomainError(ErrCodeDuplicateName, "Name already exists")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrMissingToken       = NewDomainError(ErrCodeMissingToken, "Login response did not contain an access token")
)

// ErrorKind classifies a failed API call.
type ErrorKind int

const (
	// KindServer is any non-2xx response other than 401.
	KindServer ErrorKind = iota
	// KindAuthentication is a 401 response.
	KindAuthentication
	// KindTransport means the request never produced a response.
	KindTransport
	// KindDecode means a success response carried a body that was not valid JSON.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindAuthentication:
		return "authentication"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// APIError is returned by every API client call that fails after input
// validation.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	// Status is the HTTP status text, e.g. "Not Found".
	Status string
	// Message is the backend's error field, when the response carried one.
	Message string
	Err     error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("API Error: request failed: %v", e.Err)
	case KindDecode:
		return fmt.Sprintf("API Error: invalid response body: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("API Error: %s: %s", e.Status, e.Message)
	}
	return "API Error: " + e.Status
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewStatusError builds the APIError for a non-2xx response.
func NewStatusError(statusCode int, status, message string) *APIError {
	kind := KindServer
	if statusCode == http.StatusUnauthorized {
		kind = KindAuthentication
	}
	if status == "" {
		status = http.StatusText(statusCode)
	}
	return &APIError{
		Kind:       kind,
		StatusCode: statusCode,
		Status:     status,
		Message:    message,
	}
}

// KindOf reports the kind of the first APIError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindAuthentication
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
