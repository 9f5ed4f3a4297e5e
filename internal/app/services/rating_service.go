package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

// RatingService defines the interface for the rating ledger and candidate
// instructor resolution
type RatingService interface {
	Create(ctx context.Context, userID string, instructorID int64, value int, comment string) (*models.Rating, error)
	Update(ctx context.Context, userID string, ratingID uuid.UUID, value int, comment string) (*models.Rating, error)
	Delete(ctx context.Context, ratingID uuid.UUID, requestingUserID string) (*models.Rating, error)
	DeleteAny(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Rating, error)
	Candidates(ctx context.Context, campus, school, department, userID string) ([]*models.Instructor, error)
}

// ratingStore is the slice of the rating repository the ledger needs
type ratingStore interface {
	Create(ctx context.Context, rating *models.Rating) error
	UpdateOwned(ctx context.Context, ratingID uuid.UUID, userID string, value int, comment *string) (*models.Rating, error)
	DeleteOwned(ctx context.Context, ratingID uuid.UUID, userID string) (*models.Rating, error)
	Delete(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Rating, error)
	InstructorIDsRatedBy(ctx context.Context, userID string) ([]int64, error)
}

// instructorLookupStore is the slice of the instructor repository the
// ledger and candidate resolver need
type instructorLookupStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ListByHierarchy(ctx context.Context, campus, school, department string, excludeIDs []int64) ([]*models.Instructor, error)
}

// ratingServiceImpl implements the RatingService interface
type ratingServiceImpl struct {
	ratingStore     ratingStore
	instructorStore instructorLookupStore
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratingStore ratingStore, instructorStore instructorLookupStore) RatingService {
	return &ratingServiceImpl{
		ratingStore:     ratingStore,
		instructorStore: instructorStore,
	}
}

// MaxCommentLength bounds the optional rating comment.
const MaxCommentLength = 2000

func normalizeComment(comment string) (*string, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, nil
	}
	if len(comment) > MaxCommentLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("comment is too long (max %d characters)", MaxCommentLength))
	}
	return &comment, nil
}

func validateRatingValue(value int) error {
	if !models.IsValidRatingValue(value) {
		return apperrors.NewValidationError(
			fmt.Sprintf("rating value must be between %d and %d", models.MinRatingValue, models.MaxRatingValue))
	}
	return nil
}

// Create records a new rating. Uniqueness per (userID, instructorID) is
// enforced by the storage layer's unique index, so a concurrent duplicate
// surfaces as apperrors.ErrDuplicateRating rather than a second row.
func (s *ratingServiceImpl) Create(ctx context.Context, userID string, instructorID int64, value int, comment string) (*models.Rating, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}
	if err := validateRatingValue(value); err != nil {
		return nil, err
	}

	exists, err := s.instructorStore.ExistsByID(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error verifying instructor existence: %w", err)
	}
	if !exists {
		return nil, apperrors.NewValidationError(fmt.Sprintf("instructor %d does not exist", instructorID))
	}

	normalized, err := normalizeComment(comment)
	if err != nil {
		return nil, err
	}

	rating := &models.Rating{
		ID:           uuid.New(),
		UserID:       userID,
		InstructorID: instructorID,
		Rating:       value,
		Comment:      normalized,
	}

	if err := s.ratingStore.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

// Update replaces the value and comment of a rating owned by userID.
// Whether the rating is absent or owned by someone else, the caller sees
// the same apperrors.ErrRatingNotFound.
func (s *ratingServiceImpl) Update(ctx context.Context, userID string, ratingID uuid.UUID, value int, comment string) (*models.Rating, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}
	if err := validateRatingValue(value); err != nil {
		return nil, err
	}

	normalized, err := normalizeComment(comment)
	if err != nil {
		return nil, err
	}

	return s.ratingStore.UpdateOwned(ctx, ratingID, userID, value, normalized)
}

// Delete removes a rating through the user-facing path with the ownership
// check enforced.
func (s *ratingServiceImpl) Delete(ctx context.Context, ratingID uuid.UUID, requestingUserID string) (*models.Rating, error) {
	if strings.TrimSpace(requestingUserID) == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}

	return s.ratingStore.DeleteOwned(ctx, ratingID, requestingUserID)
}

// DeleteAny removes a rating without an ownership check. Only the
// moderation route, guarded by a moderator credential, reaches this.
func (s *ratingServiceImpl) DeleteAny(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error) {
	return s.ratingStore.Delete(ctx, ratingID)
}

// ListForUser retrieves the user's ratings with instructor display fields
// joined in.
func (s *ratingServiceImpl) ListForUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}

	return s.ratingStore.ListByUser(ctx, userID)
}

// Candidates returns the instructors in the given hierarchy leaf that the
// user has not yet rated. All three levels must be specified; resolving
// candidates against a partial hierarchy is a caller error.
func (s *ratingServiceImpl) Candidates(ctx context.Context, campus, school, department, userID string) ([]*models.Instructor, error) {
	if campus == "" || school == "" || department == "" {
		return nil, apperrors.NewValidationError("campus, school and department are all required")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}

	ratedIDs, err := s.ratingStore.InstructorIDsRatedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rated instructors: %w", err)
	}

	instructors, err := s.instructorStore.ListByHierarchy(ctx, campus, school, department, ratedIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate instructors: %w", err)
	}

	return instructors, nil
}
