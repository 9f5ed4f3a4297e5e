package dto

import (
	"time"

	"github.com/campusrate/campusrate/internal/app/models"
)

// CreateRatingRequest represents a new rating submission. The userId is the
// verified identity attached by the auth layer; this service trusts it.
type CreateRatingRequest struct {
	UserID       string `json:"userId" binding:"required" example:"user-7f2c"`
	InstructorID int64  `json:"instructorId" binding:"required" example:"12"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Comment      string `json:"comment" example:"Clear lectures, tough grading."`
}

// UpdateRatingRequest represents an update to an existing rating
type UpdateRatingRequest struct {
	UserID  string `json:"userId" binding:"required" example:"user-7f2c"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment" example:"Revised after the final."`
}

// RatingResponse represents a rating, optionally with the instructor's
// display fields joined in
type RatingResponse struct {
	ID                 string    `json:"id" example:"7d4a3f9e-4b2d-4c2a-9f1e-1c2b3a4d5e6f"`
	UserID             string    `json:"userId" example:"user-7f2c"`
	InstructorID       int64     `json:"instructorId" example:"12"`
	Rating             int       `json:"rating" example:"4"`
	Comment            *string   `json:"comment,omitempty"`
	InstructorName     string    `json:"instructorName,omitempty" example:"Dr. Ayesha Khan"`
	InstructorImageURL *string   `json:"instructorImageUrl,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromRating converts a models.Rating to a RatingResponse
func FromRating(r *models.Rating) RatingResponse {
	return RatingResponse{
		ID:                 r.ID.String(),
		UserID:             r.UserID,
		InstructorID:       r.InstructorID,
		Rating:             r.Rating,
		Comment:            r.Comment,
		InstructorName:     r.InstructorName,
		InstructorImageURL: r.InstructorImageURL,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromRatings converts a slice of ratings
func FromRatings(ratings []*models.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, FromRating(r))
	}
	return out
}
