package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Deliberately generic: callers must not learn which of the two failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInvalidToken is returned for malformed, expired or wrong-purpose tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingToken is returned when the refresh token cookie is absent.
	ErrMissingToken = errors.New("refresh token missing")
	// ErrUserNotFound is returned when a token subject no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrProductNotFound is returned when a product lookup fails.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category lookup fails.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when deleting a category that still has products.
	ErrCategoryInUse = errors.New("cannot delete category with products")
	// ErrCompanyNotFound is returned when a company lookup fails.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrProjectNotFound is returned when a project lookup fails.
	ErrProjectNotFound = errors.New("project not found")
	// ErrSlugTaken is returned on slug uniqueness violations.
	ErrSlugTaken = errors.New("slug already exists")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Internal details never
// reach the response body.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "MISSING_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrCategoryInUse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_IN_USE")
	case errors.Is(err, ErrCompanyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMPANY_NOT_FOUND")
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrSlugTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SLUG_TAKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
