package apiErrors

import "fmt"

type ErrorCode string

const (
	EmptyMessage      ErrorCode = "EMPTY_MESSAGE"
	RoleRequired      ErrorCode = "ROLE_REQUIRED"
	AlreadyInterested ErrorCode = "ALREADY_INTERESTED"
	OwnPost           ErrorCode = "OWN_POST"
	InvalidStatus     ErrorCode = "INVALID_STATUS"
	ValidationFailed  ErrorCode = "VALIDATION_FAILED"
	NotFound          ErrorCode = "NOT_FOUND"
	InternalError     ErrorCode = "INTERNAL_ERROR"
)

type APIError struct {
	Code    ErrorCode
	Message string
}

func (e APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
