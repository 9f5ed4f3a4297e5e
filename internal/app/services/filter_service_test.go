package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusrate/campusrate/internal/app/models"
)

type fakeFilterStore struct {
	instructors []models.Instructor
}

func (f *fakeFilterStore) DistinctCampuses(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, in := range f.instructors {
		if !seen[in.Campus] {
			seen[in.Campus] = true
			out = append(out, in.Campus)
		}
	}
	return out, nil
}

func (f *fakeFilterStore) DistinctSchools(ctx context.Context, campus string) ([]models.SchoolOption, error) {
	seen := map[models.SchoolOption]bool{}
	out := []models.SchoolOption{}
	for _, in := range f.instructors {
		if campus != "" && in.Campus != campus {
			continue
		}
		opt := models.SchoolOption{Name: in.School, Campus: in.Campus}
		if !seen[opt] {
			seen[opt] = true
			out = append(out, opt)
		}
	}
	return out, nil
}

func (f *fakeFilterStore) DistinctDepartments(ctx context.Context, campus, school string) ([]models.DepartmentOption, error) {
	seen := map[models.DepartmentOption]bool{}
	out := []models.DepartmentOption{}
	for _, in := range f.instructors {
		if campus != "" && in.Campus != campus {
			continue
		}
		if school != "" && in.School != school {
			continue
		}
		opt := models.DepartmentOption{Name: in.Department, School: in.School, Campus: in.Campus}
		if !seen[opt] {
			seen[opt] = true
			out = append(out, opt)
		}
	}
	return out, nil
}

func newFilterFixture() *fakeFilterStore {
	return &fakeFilterStore{instructors: []models.Instructor{
		{Name: "A", Campus: "City A", School: "Eng", Department: "CS"},
		{Name: "B", Campus: "City A", School: "Eng", Department: "EE"},
		{Name: "C", Campus: "City A", School: "Business", Department: "Finance"},
		{Name: "D", Campus: "City B", School: "Law", Department: "Public Law"},
	}}
}

func TestResolveOptionsUnconstrained(t *testing.T) {
	svc := NewFilterService(newFilterFixture())

	opts, err := svc.ResolveOptions(context.Background(), models.FilterSelection{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"City A", "City B"}, opts.Campuses)
	assert.Len(t, opts.Schools, 3)
	assert.Len(t, opts.Departments, 4)
}

func TestResolveOptionsNarrowsByCampus(t *testing.T) {
	svc := NewFilterService(newFilterFixture())

	opts, err := svc.ResolveOptions(context.Background(), models.FilterSelection{Campus: "City A"})
	require.NoError(t, err)

	// Campuses stay unconstrained so the user can still switch campus
	assert.ElementsMatch(t, []string{"City A", "City B"}, opts.Campuses)
	assert.ElementsMatch(t, []models.SchoolOption{
		{Name: "Eng", Campus: "City A"},
		{Name: "Business", Campus: "City A"},
	}, opts.Schools)
	for _, d := range opts.Departments {
		assert.Equal(t, "City A", d.Campus)
	}
}

func TestResolveOptionsNarrowsBySchool(t *testing.T) {
	svc := NewFilterService(newFilterFixture())

	opts, err := svc.ResolveOptions(context.Background(),
		models.FilterSelection{Campus: "City A", School: "Eng"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []models.DepartmentOption{
		{Name: "CS", School: "Eng", Campus: "City A"},
		{Name: "EE", School: "Eng", Campus: "City A"},
	}, opts.Departments)
}

func TestResolveOptionsEmptySetIsNotAnError(t *testing.T) {
	svc := NewFilterService(newFilterFixture())

	opts, err := svc.ResolveOptions(context.Background(), models.FilterSelection{Campus: "City C"})
	require.NoError(t, err)

	assert.Empty(t, opts.Schools)
	assert.Empty(t, opts.Departments)
}

// Edit flows resolve incrementally against a pre-populated selection; the
// resolver must never trigger the interactive cascade reset.
func TestResolveOptionsIncrementalPrePopulation(t *testing.T) {
	svc := NewFilterService(newFilterFixture())
	target := models.FilterSelection{Campus: "City A", School: "Eng", Department: "CS"}

	for _, sel := range []models.FilterSelection{
		{Campus: target.Campus},
		{Campus: target.Campus, School: target.School},
		target,
	} {
		opts, err := svc.ResolveOptions(context.Background(), sel)
		require.NoError(t, err)
		assert.NotEmpty(t, opts.Departments)
	}

	// The target selection itself is untouched by resolution
	assert.Equal(t, models.FilterSelection{Campus: "City A", School: "Eng", Department: "CS"}, target)
}
