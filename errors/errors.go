package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrInvalidConfiguration = fmt.Errorf("invalid configuration")
	ErrUnknownEntity        = fmt.Errorf("unknown entity")
	ErrCharacterNotFound    = fmt.Errorf("character not found")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrInvalidInput         = fmt.Errorf("invalid input")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")
	ErrUnauthenticated      = fmt.Errorf("not authenticated")
	ErrForbidden            = fmt.Errorf("forbidden")
	ErrTokenGeneration      = fmt.Errorf("token generation failed")
)

// UnknownEntityError lists every requested character id the store could not resolve.
type UnknownEntityError struct {
	IDs []int64
}

func NewUnknownEntityError(ids ...int64) *UnknownEntityError {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return &UnknownEntityError{IDs: sorted}
}

func (e *UnknownEntityError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("%s: character ids [%s]", ErrUnknownEntity, strings.Join(parts, ", "))
}

func (e *UnknownEntityError) Unwrap() error {
	return ErrUnknownEntity
}

// MapToGRPCError translates domain errors into gRPC status errors.
// Anything outside the taxonomy is reported as Internal without leaking details.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && !isDomainError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, ErrInvalidConfiguration), stderrors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrUnknownEntity), stderrors.Is(err, ErrCharacterNotFound),
		stderrors.Is(err, ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case stderrors.Is(err, ErrInvalidCredentials), stderrors.Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case stderrors.Is(err, ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// HTTPStatus returns the HTTP status code matching a domain error.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrInvalidConfiguration), stderrors.Is(err, ErrInvalidInput),
		stderrors.Is(err, ErrUserAlreadyExists):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrUnknownEntity), stderrors.Is(err, ErrCharacterNotFound),
		stderrors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrInvalidCredentials), stderrors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to show to a client for err.
func PublicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}

func isDomainError(err error) bool {
	for _, target := range []error{
		ErrInvalidConfiguration, ErrUnknownEntity, ErrCharacterNotFound, ErrUserNotFound, ErrInvalidInput,
		ErrUserAlreadyExists, ErrInvalidCredentials, ErrUnauthenticated, ErrForbidden,
		ErrTokenGeneration, ErrWorkerPanic,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
