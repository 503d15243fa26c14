package errors

import (
	stderrors "errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrValidation      = fmt.Errorf("validation error")
	ErrNotAuthorized   = fmt.Errorf("not authorized")
	ErrNotFound        = fmt.Errorf("not found")
	ErrTransientIO     = fmt.Errorf("store or feed unavailable")
	ErrUnauthenticated = fmt.Errorf("unauthenticated")
	ErrSubscriberLost  = fmt.Errorf("subscriber lost")
	ErrSessionClosed   = fmt.Errorf("session closed")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)

// Is and As are re-exported so callers importing this package under its
// natural name don't also need the standard library one.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// MapToGRPCError translates domain errors into gRPC status errors.
// Anything unknown is reported as Internal without leaking details.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case Is(err, ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case Is(err, ErrTransientIO):
		return status.Error(codes.Unavailable, err.Error())
	case Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case Is(err, ErrSessionClosed):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
