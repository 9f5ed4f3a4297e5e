package services

import (
	"context"
	"fmt"

	"github.com/campusrate/campusrate/internal/app/models"
)

// InstructorService defines the interface for instructor statistics
type InstructorService interface {
	ListWithStats(ctx context.Context, filter models.InstructorFilter) ([]*models.InstructorWithStats, error)
}

// instructorStore is the slice of the instructor repository the aggregator
// needs
type instructorStore interface {
	ListByFilter(ctx context.Context, filter models.InstructorFilter) ([]*models.Instructor, error)
}

// ratingBatchStore loads ratings for a set of instructors in one query
type ratingBatchStore interface {
	ListByInstructorIDs(ctx context.Context, instructorIDs []int64) ([]*models.Rating, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorStore instructorStore
	ratingStore     ratingBatchStore
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorStore instructorStore, ratingStore ratingBatchStore) InstructorService {
	return &instructorServiceImpl{
		instructorStore: instructorStore,
		ratingStore:     ratingStore,
	}
}

// ListWithStats retrieves instructors matching the filter joined with their
// derived rating statistics. Two round trips total: one for the matching
// instructors, one batch load of all their ratings, then a single in-memory
// group-by. Statistics are a snapshot; a rating written concurrently may or
// may not be reflected.
func (s *instructorServiceImpl) ListWithStats(ctx context.Context, filter models.InstructorFilter) ([]*models.InstructorWithStats, error) {
	instructors, err := s.instructorStore.ListByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving instructors: %w", err)
	}

	ids := make([]int64, 0, len(instructors))
	for _, in := range instructors {
		ids = append(ids, in.ID)
	}

	ratings, err := s.ratingStore.ListByInstructorIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving ratings: %w", err)
	}

	byInstructor := make(map[int64][]*models.Rating, len(instructors))
	for _, r := range ratings {
		byInstructor[r.InstructorID] = append(byInstructor[r.InstructorID], r)
	}

	result := make([]*models.InstructorWithStats, 0, len(instructors))
	for _, in := range instructors {
		result = append(result, &models.InstructorWithStats{
			Instructor:      *in,
			InstructorStats: deriveStats(byInstructor[in.ID]),
		})
	}

	return result, nil
}

// deriveStats folds a single instructor's ratings into statistics in one
// pass. AverageRating stays nil with zero ratings so "no data" never reads
// as a score of zero; RatingCounts always carries all five keys.
func deriveStats(ratings []*models.Rating) models.InstructorStats {
	counts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	if len(ratings) == 0 {
		return models.InstructorStats{RatingCounts: counts}
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
		counts[r.Rating]++
	}

	avg := float64(sum) / float64(len(ratings))
	return models.InstructorStats{
		AverageRating: &avg,
		RatingCounts:  counts,
		TotalRatings:  len(ratings),
	}
}
