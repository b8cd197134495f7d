package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Acquisition and rule-level failures are recorded
// as document/rule state rather than bubbled; these sentinels classify the
// ones that do surface.
var (
	// ErrAcquisition: bytes unreachable or unsupported format. Terminal for
	// the document; the pipeline sets status=failed with a notes string.
	ErrAcquisition = errors.New("text acquisition failed")
	// ErrRuleEngine: malformed pattern. Isolated to the offending rule.
	ErrRuleEngine = errors.New("rule engine error")
	// ErrReviewState: invalid review transition. Rejected synchronously with
	// no partial mutation.
	ErrReviewState = errors.New("invalid review state transition")
	// ErrScoringInput: subject has no processed documents to score.
	ErrScoringInput = errors.New("no processed documents to score")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflicting operation in progress")
	ErrDatabase     = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}

// ToStatusError maps pipeline sentinels onto gRPC status codes for the
// service boundary.
func ToStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return NotFoundError(err.Error())
	case errors.Is(err, ErrInvalidInput):
		return InvalidArgumentError(err.Error())
	case errors.Is(err, ErrReviewState), errors.Is(err, ErrConflict):
		return FailedPreconditionError(err.Error())
	case errors.Is(err, ErrScoringInput):
		return FailedPreconditionError(err.Error())
	default:
		return InternalError(err.Error())
	}
}
