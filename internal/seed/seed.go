package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campusrate/campusrate/internal/app/models"
	appRepos "github.com/campusrate/campusrate/internal/app/repositories"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// CreateDefaultData imports a starter instructor directory on first run.
// An already-populated instructors table is left untouched, so the import
// only ever happens against an empty database.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, queryTimeout time.Duration, lgr zerolog.Logger) error {
	instructorRepo := appRepos.NewInstructorRepository(dbPool, queryTimeout)

	count, err := instructorRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("instructors", count).Msg("Instructor directory already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding instructor directory...")

	instructors := []*appModels.Instructor{
		{
			Name:                  "Dr. Ayesha Khan",
			Designation:           strPtr("Assistant Professor"),
			HighestEducation:      strPtr("PhD Computer Science"),
			Email:                 strPtr("ayesha.khan@campusrate.app"),
			Extension:             intPtr(4021),
			Campus:                "City Campus",
			School:                "School of Engineering",
			Department:            "Computer Science",
			HECApprovedSupervisor: true,
		},
		{
			Name:                  "Dr. Bilal Ahmed",
			Designation:           strPtr("Professor"),
			HighestEducation:      strPtr("PhD Electrical Engineering"),
			Email:                 strPtr("bilal.ahmed@campusrate.app"),
			Extension:             intPtr(4107),
			Campus:                "City Campus",
			School:                "School of Engineering",
			Department:            "Electrical Engineering",
			HECApprovedSupervisor: true,
		},
		{
			Name:             "Sara Malik",
			Designation:      strPtr("Lecturer"),
			HighestEducation: strPtr("MS Finance"),
			Email:            strPtr("sara.malik@campusrate.app"),
			Campus:           "City Campus",
			School:           "School of Business",
			Department:       "Finance",
		},
		{
			Name:                  "Dr. Usman Tariq",
			Designation:           strPtr("Associate Professor"),
			HighestEducation:      strPtr("PhD Public Law"),
			Email:                 strPtr("usman.tariq@campusrate.app"),
			Extension:             intPtr(5203),
			Campus:                "North Campus",
			School:                "School of Law",
			Department:            "Public Law",
			HECApprovedSupervisor: true,
		},
		{
			Name:             "Hina Raza",
			Designation:      strPtr("Lecturer"),
			HighestEducation: strPtr("MS Computer Science"),
			Campus:           "North Campus",
			School:           "School of Engineering",
			Department:       "Computer Science",
		},
	}

	var finalErr error
	for _, instructor := range instructors {
		if err := instructorRepo.Create(ctx, instructor); err != nil {
			lgr.Error().Err(err).Str("name", instructor.Name).Msg("Error seeding instructor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("instructors", len(instructors)).Msg("Instructor directory seeded")
	}
	return finalErr
}
