package models

// Instructor defines the instructor model based on the 'instructors' table.
// Instructors are immutable reference data loaded by the import process;
// this service never mutates them.
type Instructor struct {
	ID                    int64   `json:"id" db:"id" example:"1"`
	Name                  string  `json:"name" db:"name" example:"Dr. Ayesha Khan"`
	Designation           *string `json:"designation,omitempty" db:"designation" example:"Assistant Professor"`
	HighestEducation      *string `json:"highestEducation,omitempty" db:"highest_education" example:"PhD Computer Science"`
	Email                 *string `json:"email,omitempty" db:"email" example:"ayesha.khan@school.edu"`
	Extension             *int    `json:"extension,omitempty" db:"extension" example:"4021"`
	ImageURL              *string `json:"imageUrl,omitempty" db:"image_url"`
	Campus                string  `json:"campus" db:"campus" example:"City Campus"`
	School                string  `json:"school" db:"school" example:"School of Engineering"`
	Department            string  `json:"department" db:"department" example:"Computer Science"`
	HECApprovedSupervisor bool    `json:"hecApprovedSupervisor" db:"hec_approved_supervisor"`
}

// InstructorFilter is an exact-match predicate over the instructor
// collection. Nil/empty fields are unconstrained.
type InstructorFilter struct {
	Campus      string
	Department  string
	HECApproved *bool
}

// InstructorStats holds the statistics derived from an instructor's ratings.
// AverageRating is nil when no ratings exist so that "no data" is never
// conflated with a real score. RatingCounts always carries all five star
// values, zero-filled.
type InstructorStats struct {
	AverageRating *float64    `json:"averageRating"`
	RatingCounts  map[int]int `json:"ratingCounts"`
	TotalRatings  int         `json:"totalRatings"`
}

// InstructorWithStats is an instructor joined with its derived statistics.
type InstructorWithStats struct {
	Instructor
	InstructorStats
}
