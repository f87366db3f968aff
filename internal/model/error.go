package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidCombination = "INVALID_COMBINATION"
	ErrCodeInvalidAPIKey      = "INVALID_API_KEY"
	ErrCodeKeyRequired        = "KEY_REQUIRED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeOrderLimit         = "ORDER_LIMIT"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeUpstreamError      = "UPSTREAM_ERROR"
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
	ErrInvalidAPIKey = NewDomainError(ErrCodeInvalidAPIKey, "API key must be a UUIDv4")
	ErrKeyRequired   = NewDomainError(ErrCodeKeyRequired, "An API key is required to work with orders")
	ErrUnauthorized  = NewDomainError(ErrCodeUnauthorised, "The API key was rejected, please enter a new one")
	ErrOrderLimit    = NewDomainError(ErrCodeOrderLimit, "Order limit reached (maximum 10)")
	ErrOrderNotFound = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)
