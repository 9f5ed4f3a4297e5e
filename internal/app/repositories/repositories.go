package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusrate/campusrate/internal/pkg/apperrors"
	"github.com/campusrate/campusrate/internal/pkg/dberrors"
)

// Repositories holds all the repository instances
type Repositories struct {
	InstructorRepository *InstructorRepository
	RatingRepository     *RatingRepository
}

// NewRepositories initializes all repositories. Every query runs under
// queryTimeout so a hung connection surfaces as a retryable timeout instead
// of blocking the request for as long as the client stays connected.
func NewRepositories(db *pgxpool.Pool, queryTimeout time.Duration) *Repositories {
	return &Repositories{
		InstructorRepository: NewInstructorRepository(db, queryTimeout),
		RatingRepository:     NewRatingRepository(db, queryTimeout),
	}
}

// queryContext bounds a storage call with the configured query timeout.
// Gin request contexts carry no deadline of their own, so without this the
// only way a stuck query ends is the client disconnecting.
func queryContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// classifyErr wraps a storage error so callers can distinguish retryable
// outages from everything else. Timeouts and connection failures surface as
// apperrors.ErrUnavailable.
func classifyErr(op string, err error) error {
	if dberrors.IsTransient(err) {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
