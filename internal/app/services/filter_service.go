package services

import (
	"context"
	"fmt"

	"github.com/campusrate/campusrate/internal/app/models"
)

// FilterService defines the interface for filter hierarchy resolution
type FilterService interface {
	ResolveOptions(ctx context.Context, selection models.FilterSelection) (*models.FilterOptions, error)
}

// filterOptionsStore is the slice of the instructor repository the resolver
// needs
type filterOptionsStore interface {
	DistinctCampuses(ctx context.Context) ([]string, error)
	DistinctSchools(ctx context.Context, campus string) ([]models.SchoolOption, error)
	DistinctDepartments(ctx context.Context, campus, school string) ([]models.DepartmentOption, error)
}

// filterServiceImpl implements the FilterService interface
type filterServiceImpl struct {
	store filterOptionsStore
}

// NewFilterService creates a new filter service instance
func NewFilterService(store filterOptionsStore) FilterService {
	return &filterServiceImpl{store: store}
}

// ResolveOptions returns the valid option sets for every hierarchy level
// given the current selection. Campuses are always unconstrained; schools
// narrow by campus; departments narrow by campus and school. An empty set
// under a narrowed level is a valid result, not an error.
//
// ResolveOptions never mutates the selection. The cascade that clears lower
// levels on an interactive change is models.FilterSelection.Apply, applied
// by the caller before resolving, so edit flows can resolve incrementally
// against a pre-populated selection.
func (s *filterServiceImpl) ResolveOptions(ctx context.Context, selection models.FilterSelection) (*models.FilterOptions, error) {
	campuses, err := s.store.DistinctCampuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving campuses: %w", err)
	}

	schools, err := s.store.DistinctSchools(ctx, selection.Campus)
	if err != nil {
		return nil, fmt.Errorf("error resolving schools: %w", err)
	}

	departments, err := s.store.DistinctDepartments(ctx, selection.Campus, selection.School)
	if err != nil {
		return nil, fmt.Errorf("error resolving departments: %w", err)
	}

	return &models.FilterOptions{
		Campuses:    campuses,
		Schools:     schools,
		Departments: departments,
	}, nil
}
