// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// Error kinds. Match with errors.Is.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("scoring unavailable")
)

// Error is a classified error carrying a caller-facing message.
type Error struct {
	kind  error
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool { return target == e.kind }

func (e *Error) Unwrap() error { return e.cause }

// Message is the text safe to return to clients.
func (e *Error) Message() string { return e.msg }

// Validation reports malformed input: bad coordinates, self-targeted swipe,
// missing ids.
func Validation(msg string) error { return &Error{kind: ErrValidation, msg: msg} }

// NotFound reports an unknown or unavailable user or pair.
func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

// Unavailable wraps a failed external scoring call.
func Unavailable(cause error) error {
	return &Error{kind: ErrUnavailable, msg: "compatibility scorer unavailable", cause: cause}
}

// Map converts repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var classified *Error
	if errors.As(err, &classified) {
		switch classified.kind {
		case ErrValidation:
			return status.Error(codes.InvalidArgument, classified.msg)
		case ErrNotFound:
			return status.Error(codes.NotFound, classified.msg)
		case ErrUnavailable:
			return status.Error(codes.Unavailable, classified.msg)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad request decoding.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}
