package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", fmt.Errorf("%w: empty content", ErrValidation), codes.InvalidArgument},
		{"not authorized", ErrNotAuthorized, codes.PermissionDenied},
		{"not found", fmt.Errorf("%w: conversation", ErrNotFound), codes.NotFound},
		{"transient", fmt.Errorf("%w: badger closed", ErrTransientIO), codes.Unavailable},
		{"unauthenticated", ErrUnauthenticated, codes.Unauthenticated},
		{"unknown", fmt.Errorf("boom"), codes.Internal},
		{"already a status", status.Error(codes.Aborted, "aborted"), codes.Aborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			st, ok := status.FromError(MapToGRPCError(tt.err))
			req.True(ok)
			req.Equal(tt.code, st.Code())
		})
	}
}

func TestMapToGRPCError_Nil(t *testing.T) {
	require.NoError(t, MapToGRPCError(nil))
}
