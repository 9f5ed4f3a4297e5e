package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one user's 1-5 evaluation of one instructor. At most one rating
// may exist per (UserID, InstructorID) pair; the invariant is enforced by a
// unique index at the storage layer, not by application-level pre-checks.
type Rating struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	Rating       int       `json:"rating" db:"rating" example:"4"`
	Comment      *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Read-side join fields, populated by list queries
	InstructorName     string  `json:"instructorName,omitempty" db:"instructor_name"`
	InstructorImageURL *string `json:"instructorImageUrl,omitempty" db:"instructor_image_url"`
}

// Rating value bounds
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// IsValidRatingValue reports whether v is a legal star value.
func IsValidRatingValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}
