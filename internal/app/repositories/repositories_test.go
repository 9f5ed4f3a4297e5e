package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

func TestQueryContextImposesDeadline(t *testing.T) {
	ctx, cancel := queryContext(context.Background(), 50*time.Millisecond)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok, "bounded context must carry a deadline")
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 20*time.Millisecond)

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}

func TestQueryContextZeroTimeoutPassesThrough(t *testing.T) {
	parent := context.Background()
	ctx, cancel := queryContext(parent, 0)
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok)
	assert.Equal(t, parent, ctx)
}

func TestQueryContextKeepsEarlierParentDeadline(t *testing.T) {
	parent, parentCancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer parentCancel()

	ctx, cancel := queryContext(parent, time.Hour)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 20*time.Millisecond)
}

// A query that outlives its deadline must come back as the retryable
// unavailable error, never as a plain failure.
func TestClassifyErrTimeoutIsUnavailable(t *testing.T) {
	ctx, cancel := queryContext(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := classifyErr("error retrieving instructors", ctx.Err())
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestClassifyErrQueryFailureIsNotUnavailable(t *testing.T) {
	err := classifyErr("error scanning rating", errors.New("syntax error"))
	assert.NotErrorIs(t, err, apperrors.ErrUnavailable)
	assert.ErrorContains(t, err, "error scanning rating")
}
