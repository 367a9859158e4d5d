package utils

import (
	"fmt"
	"net/http"
)

// BusinessError is an expected, classifiable failure raised by the service
// layer when a business rule is violated. It carries the HTTP status and the
// API error code the handler layer responds with.
type BusinessError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewEntityAlreadyExists reports a conflict with an existing entity,
// e.g. a duplicate bank code on create.
func NewEntityAlreadyExists(entity any) *BusinessError {
	return &BusinessError{
		StatusCode: http.StatusConflict,
		Code:       "ENTITY_ALREADY_EXISTS",
		Message:    fmt.Sprintf("Entity %v already exists", entity),
	}
}

// NewEntityNotFound reports that the entity identified by id does not exist.
func NewEntityNotFound(id any) *BusinessError {
	return &BusinessError{
		StatusCode: http.StatusNotFound,
		Code:       "ENTITY_NOT_FOUND",
		Message:    fmt.Sprintf("Entity %v not found", id),
	}
}

// NewInactiveBank reports an operation against a bank that is not active.
// Reserved for bank-lifecycle checks; not raised by current flows.
func NewInactiveBank(bankCode string) *BusinessError {
	return &BusinessError{
		StatusCode: http.StatusBadRequest,
		Code:       "INACTIVE_BANK",
		Message:    fmt.Sprintf("Bank %s is inactive", bankCode),
	}
}

// NewInvalidBank reports an operation against an invalid bank code.
// Reserved for bank-lifecycle checks; not raised by current flows.
func NewInvalidBank(bankCode string) *BusinessError {
	return &BusinessError{
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_BANK",
		Message:    fmt.Sprintf("Bank %s is invalid", bankCode),
	}
}

// NewBankAPIUnavailable reports connectivity problems with a bank's API.
// Reserved for bank-lifecycle checks; not raised by current flows.
func NewBankAPIUnavailable(bankCode string) *BusinessError {
	return &BusinessError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       "BANK_API_UNAVAILABLE",
		Message:    fmt.Sprintf("Bank %s API is unavailable", bankCode),
	}
}

// GeneralApplicationError replaces an unexpected failure at the service
// boundary. Only the correlation id crosses the boundary; the original error
// is logged and never exposed to callers.
type GeneralApplicationError struct {
	ErrorID string
}

func (e *GeneralApplicationError) Error() string {
	return fmt.Sprintf("An unexpected error occurred, error id: %s", e.ErrorID)
}

// NewGeneralApplicationError creates a GeneralApplicationError for the given
// correlation id.
func NewGeneralApplicationError(errorID string) *GeneralApplicationError {
	return &GeneralApplicationError{ErrorID: errorID}
}
