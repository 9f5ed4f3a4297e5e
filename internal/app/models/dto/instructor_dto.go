package dto

import "github.com/campusrate/campusrate/internal/app/models"

// InstructorResponse represents an instructor without rating statistics
type InstructorResponse struct {
	ID                    int64   `json:"id" example:"1"`
	Name                  string  `json:"name" example:"Dr. Ayesha Khan"`
	Designation           *string `json:"designation,omitempty" example:"Assistant Professor"`
	HighestEducation      *string `json:"highestEducation,omitempty" example:"PhD Computer Science"`
	Email                 *string `json:"email,omitempty" example:"ayesha.khan@school.edu"`
	Extension             *int    `json:"extension,omitempty" example:"4021"`
	ImageURL              *string `json:"imageUrl,omitempty"`
	Campus                string  `json:"campus" example:"City Campus"`
	School                string  `json:"school" example:"School of Engineering"`
	Department            string  `json:"department" example:"Computer Science"`
	HECApprovedSupervisor bool    `json:"hecApprovedSupervisor"`
}

// InstructorWithStatsResponse is an instructor joined with its derived
// rating statistics. AverageRating is null when the instructor has no
// ratings; RatingCounts always contains all five star keys.
type InstructorWithStatsResponse struct {
	InstructorResponse
	AverageRating *float64    `json:"averageRating"`
	RatingCounts  map[int]int `json:"ratingCounts"`
	TotalRatings  int         `json:"totalRatings" example:"3"`
}

// FromInstructor converts a models.Instructor to an InstructorResponse
func FromInstructor(in *models.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:                    in.ID,
		Name:                  in.Name,
		Designation:           in.Designation,
		HighestEducation:      in.HighestEducation,
		Email:                 in.Email,
		Extension:             in.Extension,
		ImageURL:              in.ImageURL,
		Campus:                in.Campus,
		School:                in.School,
		Department:            in.Department,
		HECApprovedSupervisor: in.HECApprovedSupervisor,
	}
}

// FromInstructorWithStats converts a models.InstructorWithStats to its response form
func FromInstructorWithStats(in *models.InstructorWithStats) InstructorWithStatsResponse {
	return InstructorWithStatsResponse{
		InstructorResponse: FromInstructor(&in.Instructor),
		AverageRating:      in.AverageRating,
		RatingCounts:       in.RatingCounts,
		TotalRatings:       in.TotalRatings,
	}
}
