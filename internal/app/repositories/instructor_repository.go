package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/pkg/logger"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	db      *pgxpool.Pool
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool, queryTimeout time.Duration) *InstructorRepository {
	return &InstructorRepository{
		db:      db,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		timeout: queryTimeout,
	}
}

func (r *InstructorRepository) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return queryContext(ctx, r.timeout)
}

// Create inserts an instructor record. Only the seed/import path uses this;
// the API surface treats instructors as immutable reference data.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	query := `
		INSERT INTO instructors (name, designation, highest_education, email, extension, image_url, campus, school, department, hec_approved_supervisor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		instructor.Name,
		instructor.Designation,
		instructor.HighestEducation,
		instructor.Email,
		instructor.Extension,
		instructor.ImageURL,
		instructor.Campus,
		instructor.School,
		instructor.Department,
		instructor.HECApprovedSupervisor,
	).Scan(&instructor.ID)
	if err != nil {
		return classifyErr("error creating instructor", err)
	}

	return nil
}

// ExistsByID checks whether an instructor record exists
func (r *InstructorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM instructors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, classifyErr("error checking instructor existence", err)
	}

	return exists, nil
}

// Count returns the number of instructor records
func (r *InstructorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&count)
	if err != nil {
		return 0, classifyErr("error counting instructors", err)
	}

	return count, nil
}

// DistinctCampuses retrieves all distinct campus values
func (r *InstructorRepository) DistinctCampuses(ctx context.Context) ([]string, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT campus FROM instructors ORDER BY campus`)
	if err != nil {
		return nil, classifyErr("error retrieving campuses", err)
	}
	defer rows.Close()

	campuses := []string{}
	for rows.Next() {
		var campus string
		if err := rows.Scan(&campus); err != nil {
			return nil, classifyErr("error scanning campus", err)
		}
		campuses = append(campuses, campus)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyErr("error reading campuses", err)
	}

	return campuses, nil
}

// DistinctSchools retrieves distinct (school, campus) pairs, narrowed to one
// campus when campus is non-empty.
func (r *InstructorRepository) DistinctSchools(ctx context.Context, campus string) ([]models.SchoolOption, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	sel := r.sb.Select("school", "campus").
		From("instructors").
		Distinct().
		OrderBy("campus", "school")
	if campus != "" {
		sel = sel.Where(squirrel.Eq{"campus": campus})
	}

	querySql, args, err := sel.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building distinct schools SQL")
		return nil, classifyErr("error building schools query", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, classifyErr("error retrieving schools", err)
	}
	defer rows.Close()

	schools := []models.SchoolOption{}
	for rows.Next() {
		var s models.SchoolOption
		if err := rows.Scan(&s.Name, &s.Campus); err != nil {
			return nil, classifyErr("error scanning school", err)
		}
		schools = append(schools, s)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyErr("error reading schools", err)
	}

	return schools, nil
}

// DistinctDepartments retrieves distinct (department, school, campus)
// triples, narrowed by whichever of campus and school are non-empty.
func (r *InstructorRepository) DistinctDepartments(ctx context.Context, campus, school string) ([]models.DepartmentOption, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	sel := r.sb.Select("department", "school", "campus").
		From("instructors").
		Distinct().
		OrderBy("campus", "school", "department")
	if campus != "" {
		sel = sel.Where(squirrel.Eq{"campus": campus})
	}
	if school != "" {
		sel = sel.Where(squirrel.Eq{"school": school})
	}

	querySql, args, err := sel.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building distinct departments SQL")
		return nil, classifyErr("error building departments query", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, classifyErr("error retrieving departments", err)
	}
	defer rows.Close()

	departments := []models.DepartmentOption{}
	for rows.Next() {
		var d models.DepartmentOption
		if err := rows.Scan(&d.Name, &d.School, &d.Campus); err != nil {
			return nil, classifyErr("error scanning department", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyErr("error reading departments", err)
	}

	return departments, nil
}

// ListByFilter retrieves instructors matching an exact-match filter. Unset
// filter fields are unconstrained.
func (r *InstructorRepository) ListByFilter(ctx context.Context, filter models.InstructorFilter) ([]*models.Instructor, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	sel := r.sb.Select(
		"id", "name", "designation", "highest_education", "email", "extension",
		"image_url", "campus", "school", "department", "hec_approved_supervisor",
	).
		From("instructors").
		OrderBy("name")

	whereCondition := squirrel.And{}
	if filter.Campus != "" {
		whereCondition = append(whereCondition, squirrel.Eq{"campus": filter.Campus})
	}
	if filter.Department != "" {
		whereCondition = append(whereCondition, squirrel.Eq{"department": filter.Department})
	}
	if filter.HECApproved != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"hec_approved_supervisor": *filter.HECApproved})
	}
	if len(whereCondition) > 0 {
		sel = sel.Where(whereCondition)
	}

	querySql, args, err := sel.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list instructors SQL")
		return nil, classifyErr("error building instructors query", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, classifyErr("error retrieving instructors", err)
	}
	defer rows.Close()

	return scanInstructors(rows)
}

// ListByHierarchy retrieves instructors in the exact (campus, school,
// department) leaf, excluding the given ids. Used by the candidate resolver.
func (r *InstructorRepository) ListByHierarchy(ctx context.Context, campus, school, department string, excludeIDs []int64) ([]*models.Instructor, error) {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	sel := r.sb.Select(
		"id", "name", "designation", "highest_education", "email", "extension",
		"image_url", "campus", "school", "department", "hec_approved_supervisor",
	).
		From("instructors").
		Where(squirrel.Eq{
			"campus":     campus,
			"school":     school,
			"department": department,
		}).
		OrderBy("name")

	if len(excludeIDs) > 0 {
		sel = sel.Where(squirrel.NotEq{"id": excludeIDs})
	}

	querySql, args, err := sel.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building candidate instructors SQL")
		return nil, classifyErr("error building candidate instructors query", err)
	}

	rows, err := r.db.Query(ctx, querySql, args...)
	if err != nil {
		return nil, classifyErr("error retrieving candidate instructors", err)
	}
	defer rows.Close()

	return scanInstructors(rows)
}

// scanInstructors reads instructor rows into models
func scanInstructors(rows pgx.Rows) ([]*models.Instructor, error) {
	instructors := []*models.Instructor{}
	for rows.Next() {
		var in models.Instructor
		if err := rows.Scan(
			&in.ID,
			&in.Name,
			&in.Designation,
			&in.HighestEducation,
			&in.Email,
			&in.Extension,
			&in.ImageURL,
			&in.Campus,
			&in.School,
			&in.Department,
			&in.HECApprovedSupervisor,
		); err != nil {
			return nil, classifyErr("error scanning instructor", err)
		}
		instructors = append(instructors, &in)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyErr("error reading instructors", err)
	}

	return instructors, nil
}
