package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/bloom/internal/errors"
)

func TestMapCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", svcErr.Validation("cannot swipe on yourself"), codes.InvalidArgument},
		{"wrapped validation", fmt.Errorf("swipe: %w", svcErr.Validation("bad")), codes.InvalidArgument},
		{"not found", svcErr.NotFound("user not available"), codes.NotFound},
		{"unavailable", svcErr.Unavailable(context.DeadlineExceeded), codes.Unavailable},
		{"gorm not found", fmt.Errorf("get: %w", gorm.ErrRecordNotFound), codes.NotFound},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"other", stderrors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(svcErr.Map(tc.err))
			assert.True(t, ok)
			assert.Equal(t, tc.code, st.Code())
		})
	}
}

func TestMapKeepsClientMessage(t *testing.T) {
	st, _ := status.FromError(svcErr.Map(svcErr.Validation("lat out of range")))
	assert.Equal(t, "lat out of range", st.Message())
}

func TestUnavailableMatchesKindAndCause(t *testing.T) {
	err := svcErr.Unavailable(context.DeadlineExceeded)
	assert.ErrorIs(t, err, svcErr.ErrUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, svcErr.ErrNotFound)
}

func TestMapPassesStatusThrough(t *testing.T) {
	in := status.Error(codes.PermissionDenied, "nope")
	assert.Equal(t, in, svcErr.Map(in))
	assert.Nil(t, svcErr.Map(nil))
}
