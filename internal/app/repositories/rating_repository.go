package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
	"github.com/campusrate/campusrate/internal/pkg/dberrors"
)

// UniqueUserInstructorConstraint is the unique index backing the
// one-rating-per-user-per-instructor invariant. Concurrent duplicate
// inserts race at this index, never in application code.
const UniqueUserInstructorConstraint = "uq_ratings_user_instructor"

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db      *pgxpool.Pool
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *pgxpool.Pool, queryTimeout time.Duration) *RatingRepository {
	return &RatingRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: queryTimeout,
	}
}

func (r *RatingRepository) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return queryContext(ctx, r.timeout)
}

// Create inserts a new rating. The unique index on (user_id, instructor_id)
// makes the insert an atomic conditional write: a duplicate submitted in a
// check-then-act gap surfaces here as apperrors.ErrDuplicateRating.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO ratings (id, user_id, instructor_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		rating.ID, rating.UserID, rating.InstructorID, rating.Rating, rating.Comment,
	).Scan(&rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, UniqueUserInstructorConstraint) {
			return apperrors.ErrDuplicateRating
		}
		return classifyErr("error creating rating", err)
	}

	return nil
}

// UpdateOwned replaces value and comment of a rating owned by userID and
// bumps updated_at. A missing row and a row owned by someone else are
// indistinguishable to the caller.
func (r *RatingRepository) UpdateOwned(ctx context.Context, ratingID uuid.UUID, userID string, value int, comment *string) (*models.Rating, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		UPDATE ratings
		SET rating = $1, comment = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, instructor_id, rating, comment, created_at, updated_at
	`

	var rating models.Rating
	err := r.db.QueryRow(ctx, query, value, comment, time.Now(), ratingID, userID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.InstructorID,
		&rating.Rating,
		&rating.Comment,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRatingNotFound
		}
		return nil, classifyErr("error updating rating", err)
	}

	return &rating, nil
}

// DeleteOwned deletes a rating only if userID owns it and returns the
// deleted row.
func (r *RatingRepository) DeleteOwned(ctx context.Context, ratingID uuid.UUID, userID string) (*models.Rating, error) {
	query := `
		DELETE FROM ratings
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, instructor_id, rating, comment, created_at, updated_at
	`

	return r.deleteReturning(ctx, query, ratingID, userID)
}

// Delete deletes a rating regardless of owner. Moderation path only; the
// route guarding it requires a moderator credential.
func (r *RatingRepository) Delete(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error) {
	query := `
		DELETE FROM ratings
		WHERE id = $1
		RETURNING id, user_id, instructor_id, rating, comment, created_at, updated_at
	`

	return r.deleteReturning(ctx, query, ratingID)
}

func (r *RatingRepository) deleteReturning(ctx context.Context, query string, args ...any) (*models.Rating, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var rating models.Rating
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.InstructorID,
		&rating.Rating,
		&rating.Comment,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRatingNotFound
		}
		return nil, classifyErr("error deleting rating", err)
	}

	return &rating, nil
}

// ListByUser retrieves all ratings by a user with the instructor's display
// name and image joined in at read time.
func (r *RatingRepository) ListByUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		SELECT r.id, r.user_id, r.instructor_id, r.rating, r.comment,
		       r.created_at, r.updated_at,
		       i.name AS instructor_name, i.image_url AS instructor_image_url
		FROM ratings r
		JOIN instructors i ON r.instructor_id = i.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyErr("error retrieving user ratings", err)
	}
	defer rows.Close()

	ratings := []*models.Rating{}
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.UserID,
			&rating.InstructorID,
			&rating.Rating,
			&rating.Comment,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.InstructorName,
			&rating.InstructorImageURL,
		); err != nil {
			return nil, classifyErr("error scanning rating", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyErr("error reading ratings", err)
	}

	return ratings, nil
}

// InstructorIDsRatedBy retrieves the ids of all instructors the user has
// already rated.
func (r *RatingRepository) InstructorIDsRatedBy(ctx context.Context, userID string) ([]int64, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT instructor_id FROM ratings WHERE user_id = $1`, userID)
	if err != nil {
		return nil, classifyErr("error retrieving rated instructor ids", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, classifyErr("error scanning rated instructor id", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyErr("error reading rated instructor ids", err)
	}

	return ids, nil
}

// ListByInstructorIDs retrieves all ratings referencing any of the given
// instructors in one batch query. The aggregator uses this to avoid per-
// instructor round trips.
func (r *RatingRepository) ListByInstructorIDs(ctx context.Context, instructorIDs []int64) ([]*models.Rating, error) {
	if len(instructorIDs) == 0 {
		return []*models.Rating{}, nil
	}

	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	sel := r.sb.Select("id", "user_id", "instructor_id", "rating", "comment", "created_at", "updated_at").
		From("ratings").
		Where(squirrel.Eq{"instructor_id": instructorIDs})

	querySql, args, err := sel.ToSql()
	if err != nil {
		return nil, classifyErr("error building ratings query", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, classifyErr("error retrieving ratings", err)
	}
	defer rows.Close()

	ratings := []*models.Rating{}
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.UserID,
			&rating.InstructorID,
			&rating.Rating,
			&rating.Comment,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		); err != nil {
			return nil, classifyErr("error scanning rating", err)
		}
		ratings = append(ratings, &rating)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyErr("error reading ratings", err)
	}

	return ratings, nil
}
