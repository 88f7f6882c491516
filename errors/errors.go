package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden      ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken   ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken   ErrorCode = "MISSING_TOKEN"
	ErrCodeSessionExpired ErrorCode = "SESSION_EXPIRED"
	ErrCodeInvalidRole    ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidEmail   ErrorCode = "INVALID_EMAIL"

	// Upstream errors
	ErrCodeUpstream          ErrorCode = "UPSTREAM_ERROR"
	ErrCodeMalformedResponse ErrorCode = "MALFORMED_RESPONSE"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Business errors
	ErrCodeNoRoomSelected   ErrorCode = "NO_ROOM_SELECTED"
	ErrCodeSoldOut          ErrorCode = "SOLD_OUT"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
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

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
