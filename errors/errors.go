package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeHouseNotFound   ErrorCode = "HOUSE_NOT_FOUND"
	ErrCodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeInvalidDate     ErrorCode = "INVALID_DATE"
	ErrCodeInvalidGuests   ErrorCode = "INVALID_GUESTS"
	ErrCodeInvalidStatus   ErrorCode = "INVALID_STATUS"
	ErrCodeNotAvailable    ErrorCode = "NOT_AVAILABLE"

	// Contact errors
	ErrCodeContactExists    ErrorCode = "CONTACT_EXISTS"
	ErrCodeContactProtected ErrorCode = "CONTACT_PROTECTED"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries a code alongside the message so callers can map
// storage and validation failures onto the right HTTP class.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// House errors
	ErrHouseNotFound     = errors.New("house not found")
	ErrHouseNotAvailable = errors.New("house not available")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingInvalid    = errors.New("invalid booking")
	ErrBookingCancelled  = errors.New("booking already cancelled")
	ErrBookingCompleted  = errors.New("booking already completed")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Contact errors
	ErrContactExists    = errors.New("contact information already exists")
	ErrContactProtected = errors.New("contact information cannot be deleted")

	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
