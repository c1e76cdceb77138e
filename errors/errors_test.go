package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnknownEntityError(t *testing.T) {
	req := require.New(t)

	err := NewUnknownEntityError(42, 7)

	req.ErrorIs(err, ErrUnknownEntity)
	req.Equal([]int64{7, 42}, err.IDs)
	req.Equal("unknown entity: character ids [7, 42]", err.Error())

	var target *UnknownEntityError
	wrapped := fmt.Errorf("generate parties: %w", err)
	req.True(stderrors.As(wrapped, &target))
	req.Equal([]int64{7, 42}, target.IDs)
}

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		description string
		err         error
		want        codes.Code
	}{
		{"invalid configuration", fmt.Errorf("%w: min > max", ErrInvalidConfiguration), codes.InvalidArgument},
		{"invalid input", ErrInvalidInput, codes.InvalidArgument},
		{"unknown entity", NewUnknownEntityError(3), codes.NotFound},
		{"character not found", ErrCharacterNotFound, codes.NotFound},
		{"user exists", ErrUserAlreadyExists, codes.AlreadyExists},
		{"bad credentials", ErrInvalidCredentials, codes.Unauthenticated},
		{"forbidden", ErrForbidden, codes.PermissionDenied},
		{"anything else", stderrors.New("disk on fire"), codes.Internal},
		{"existing status", status.Error(codes.Unavailable, "later"), codes.Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, status.Code(MapToGRPCError(tt.err)))
		})
	}
	require.NoError(t, MapToGRPCError(nil))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		description string
		err         error
		want        int
	}{
		{"no error", nil, http.StatusOK},
		{"invalid configuration", ErrInvalidConfiguration, http.StatusBadRequest},
		{"user exists", ErrUserAlreadyExists, http.StatusBadRequest},
		{"unknown entity", NewUnknownEntityError(1), http.StatusNotFound},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"internal", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
	require.Equal(t, "internal error", PublicMessage(stderrors.New("boom")))
	require.Equal(t, ErrForbidden.Error(), PublicMessage(ErrForbidden))
}
