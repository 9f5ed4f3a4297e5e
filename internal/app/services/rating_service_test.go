package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

// fakeRatingStore mimics the storage layer including its unique index on
// (user_id, instructor_id).
type fakeRatingStore struct {
	ratings map[uuid.UUID]*models.Rating
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{ratings: map[uuid.UUID]*models.Rating{}}
}

func (f *fakeRatingStore) Create(ctx context.Context, rating *models.Rating) error {
	for _, r := range f.ratings {
		if r.UserID == rating.UserID && r.InstructorID == rating.InstructorID {
			return apperrors.ErrDuplicateRating
		}
	}
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	stored := *rating
	f.ratings[rating.ID] = &stored
	return nil
}

func (f *fakeRatingStore) UpdateOwned(ctx context.Context, ratingID uuid.UUID, userID string, value int, comment *string) (*models.Rating, error) {
	r, ok := f.ratings[ratingID]
	if !ok || r.UserID != userID {
		return nil, apperrors.ErrRatingNotFound
	}
	r.Rating = value
	r.Comment = comment
	r.UpdatedAt = time.Now()
	updated := *r
	return &updated, nil
}

func (f *fakeRatingStore) DeleteOwned(ctx context.Context, ratingID uuid.UUID, userID string) (*models.Rating, error) {
	r, ok := f.ratings[ratingID]
	if !ok || r.UserID != userID {
		return nil, apperrors.ErrRatingNotFound
	}
	delete(f.ratings, ratingID)
	return r, nil
}

func (f *fakeRatingStore) Delete(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error) {
	r, ok := f.ratings[ratingID]
	if !ok {
		return nil, apperrors.ErrRatingNotFound
	}
	delete(f.ratings, ratingID)
	return r, nil
}

func (f *fakeRatingStore) ListByUser(ctx context.Context, userID string) ([]*models.Rating, error) {
	out := []*models.Rating{}
	for _, r := range f.ratings {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) InstructorIDsRatedBy(ctx context.Context, userID string) ([]int64, error) {
	ids := []int64{}
	for _, r := range f.ratings {
		if r.UserID == userID {
			ids = append(ids, r.InstructorID)
		}
	}
	return ids, nil
}

type fakeInstructorLookup struct {
	instructors []*models.Instructor
}

func (f *fakeInstructorLookup) ExistsByID(ctx context.Context, id int64) (bool, error) {
	for _, in := range f.instructors {
		if in.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInstructorLookup) ListByHierarchy(ctx context.Context, campus, school, department string, excludeIDs []int64) ([]*models.Instructor, error) {
	excluded := map[int64]bool{}
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	out := []*models.Instructor{}
	for _, in := range f.instructors {
		if in.Campus == campus && in.School == school && in.Department == department && !excluded[in.ID] {
			out = append(out, in)
		}
	}
	return out, nil
}

func newRatingFixture() (RatingService, *fakeRatingStore) {
	store := newFakeRatingStore()
	lookup := &fakeInstructorLookup{instructors: []*models.Instructor{
		{ID: 1, Name: "A", Campus: "X", School: "S", Department: "D"},
		{ID: 2, Name: "B", Campus: "X", School: "S", Department: "D"},
	}}
	return NewRatingService(store, lookup), store
}

func TestCreateRating(t *testing.T) {
	svc, _ := newRatingFixture()

	rating, err := svc.Create(context.Background(), "user-1", 1, 4, "solid lectures")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rating.ID)
	assert.Equal(t, "user-1", rating.UserID)
	assert.Equal(t, int64(1), rating.InstructorID)
	assert.Equal(t, 4, rating.Rating)
	require.NotNil(t, rating.Comment)
	assert.Equal(t, "solid lectures", *rating.Comment)
}

func TestCreateRatingDuplicateRejected(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Create(context.Background(), "user-1", 1, 4, "")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "user-1", 1, 2, "changed my mind")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRating)
}

func TestCreateRatingValidation(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Create(context.Background(), "user-1", 1, 0, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), "user-1", 1, 6, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Create(context.Background(), "", 1, 3, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Unknown instructor is a validation failure, not a 404
	_, err = svc.Create(context.Background(), "user-1", 99, 3, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateRatingEmptyCommentStoredAsNull(t *testing.T) {
	svc, _ := newRatingFixture()

	rating, err := svc.Create(context.Background(), "user-1", 1, 5, "   ")
	require.NoError(t, err)
	assert.Nil(t, rating.Comment)
}

func TestUpdateRatingRoundTrip(t *testing.T) {
	svc, _ := newRatingFixture()

	created, err := svc.Create(context.Background(), "user-1", 1, 3, "ok")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "user-1", created.ID, 5, "much better")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	require.NotNil(t, updated.Comment)
	assert.Equal(t, "much better", *updated.Comment)

	// The list reflects the update exactly once
	ratings, err := svc.ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Rating)
}

func TestUpdateRatingNotOwnedIsNotFound(t *testing.T) {
	svc, _ := newRatingFixture()

	created, err := svc.Create(context.Background(), "user-1", 1, 3, "")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "user-2", created.ID, 5, "")
	assert.ErrorIs(t, err, apperrors.ErrRatingNotFound)
}

func TestDeleteRatingOwnership(t *testing.T) {
	svc, _ := newRatingFixture()

	created, err := svc.Create(context.Background(), "user-1", 1, 3, "")
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), created.ID, "user-2")
	assert.ErrorIs(t, err, apperrors.ErrRatingNotFound)

	deleted, err := svc.Delete(context.Background(), created.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.Delete(context.Background(), created.ID, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrRatingNotFound)
}

func TestDeleteAnySkipsOwnershipCheck(t *testing.T) {
	svc, _ := newRatingFixture()

	created, err := svc.Create(context.Background(), "user-1", 1, 3, "")
	require.NoError(t, err)

	deleted, err := svc.DeleteAny(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
}

func TestCandidatesExcludesRatedInstructors(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Create(context.Background(), "user-1", 1, 4, "")
	require.NoError(t, err)

	candidates, err := svc.Candidates(context.Background(), "X", "S", "D", "user-1")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(2), candidates[0].ID)

	// Another user still sees both
	candidates, err = svc.Candidates(context.Background(), "X", "S", "D", "user-2")
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestCandidatesRequireCompleteHierarchy(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Candidates(context.Background(), "X", "S", "", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Candidates(context.Background(), "", "", "", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
