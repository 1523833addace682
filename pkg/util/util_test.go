package util

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	orig := errors.New("weight must be positive")

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{name: "wrapped bad input", err: WrapErrorf(orig, ErrBadParamInput, "bad request"), want: ErrBadParamInput},
		{name: "wrapped by fmt", err: fmt.Errorf("load: %w", WrapErrorf(orig, ErrNotFound, "inner")), want: ErrNotFound},
		{name: "plain error", err: orig, want: ErrInternalServerError},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ErrorCode(tt.err), tt.want)
		})
	}

	err := WrapErrorf(orig, ErrBadParamInput, "plan %d", 3)
	assert.Equal(t, "plan 3: weight must be positive", err.Error())
	assert.ErrorIs(t, err, orig)
}

func TestParseFloatList(t *testing.T) {
	got, err := ParseFloatList(" 1, 1.5,,2 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2}, got)

	_, err = ParseFloatList("1,x")
	assert.Error(t, err)
}

func TestStopConcurrentOperation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, StopConcurrentOperation(ctx))
	cancel()
	assert.True(t, StopConcurrentOperation(ctx))
}
