package dberrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_ratings_user_instructor"}

	assert.True(t, IsDuplicateConstraintError(dup, "uq_ratings_user_instructor"))
	assert.True(t, IsDuplicateConstraintError(fmt.Errorf("insert failed: %w", dup), "uq_ratings_user_instructor"))

	// Different constraint, different code, non-pg errors
	assert.False(t, IsDuplicateConstraintError(dup, "some_other_constraint"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503"}, "uq_ratings_user_instructor"))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), "uq_ratings_user_instructor"))
	assert.False(t, IsDuplicateConstraintError(nil, "uq_ratings_user_instructor"))
}

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "connection reset" }
func (fakeNetError) Timeout() bool   { return false }
func (fakeNetError) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.True(t, IsTransient(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	assert.True(t, IsTransient(fakeNetError{}))
	assert.True(t, IsTransient(&pgconn.PgError{Code: "08006"}))

	// Query-level failures must not be retried
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("syntax error")))
	assert.False(t, IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsTransient(&pgconn.PgError{Code: "42601"}))
}
