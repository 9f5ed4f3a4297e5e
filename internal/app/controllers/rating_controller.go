package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/app/services"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
)

// RatingController handles the rating ledger and candidate resolution
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new rating controller
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

func parseRatingID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleValidationError(ctx, "id", "invalid rating id")
		return uuid.Nil, false
	}
	return id, true
}

// CreateRating records a new rating
// @Summary Submit a rating
// @Description Record a 1-5 star rating with an optional comment. A user can hold at most one rating per instructor; a second submission is rejected.
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body dto.CreateRatingRequest true "Rating submission"
// @Success 201 {object} dto.RatingResponse "Created rating"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or duplicate rating"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /ratings [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleServiceError(ctx, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error()))
		return
	}

	rating, err := c.ratingService.Create(ctx, req.UserID, req.InstructorID, req.Rating, req.Comment)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.FromRating(rating))
}

// UpdateRating replaces the value and comment of an owned rating
// @Summary Update a rating
// @Description Replace the star value and comment of a rating owned by the caller. A rating that is absent or owned by another user yields the same 404.
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Rating ID"
// @Param request body dto.UpdateRatingRequest true "Updated rating"
// @Success 200 {object} dto.RatingResponse "Updated rating"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 404 {object} dto.ErrorResponse "Rating not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /ratings/{id} [put]
func (c *RatingController) UpdateRating(ctx *gin.Context) {
	ratingID, ok := parseRatingID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleServiceError(ctx, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error()))
		return
	}

	rating, err := c.ratingService.Update(ctx, req.UserID, ratingID, req.Rating, req.Comment)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromRating(rating))
}

// DeleteRating removes an owned rating
// @Summary Delete a rating
// @Description Delete a rating owned by the caller identified by userId.
// @Tags ratings
// @Produce json
// @Param id path string true "Rating ID"
// @Param userId query string true "Owner user ID"
// @Success 200 {object} dto.RatingResponse "Deleted rating"
// @Failure 404 {object} dto.ErrorResponse "Rating not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /ratings/{id} [delete]
func (c *RatingController) DeleteRating(ctx *gin.Context) {
	ratingID, ok := parseRatingID(ctx)
	if !ok {
		return
	}

	rating, err := c.ratingService.Delete(ctx, ratingID, ctx.Query("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromRating(rating))
}

// DeleteRatingAsModerator removes any rating regardless of owner
// @Summary Delete any rating (moderation)
// @Description Delete a rating without an ownership check. Requires a moderator bearer token.
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Success 200 {object} dto.RatingResponse "Deleted rating"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Token lacks the moderator role"
// @Failure 404 {object} dto.ErrorResponse "Rating not found"
// @Router /moderation/ratings/{id} [delete]
func (c *RatingController) DeleteRatingAsModerator(ctx *gin.Context) {
	ratingID, ok := parseRatingID(ctx)
	if !ok {
		return
	}

	rating, err := c.ratingService.DeleteAny(ctx, ratingID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromRating(rating))
}

// ListRatings lists a user's ratings with instructor display fields
// @Summary List a user's ratings
// @Description Get every rating submitted by the given user, each joined with the instructor's name and image URL.
// @Tags ratings
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {array} dto.RatingResponse "The user's ratings"
// @Failure 400 {object} dto.ErrorResponse "Missing userId"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /ratings [get]
func (c *RatingController) ListRatings(ctx *gin.Context) {
	ratings, err := c.ratingService.ListForUser(ctx, ctx.Query("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromRatings(ratings))
}

// ListCandidates lists instructors the user has not yet rated
// @Summary List candidate instructors
// @Description Get the instructors in the given campus/school/department that the user has not rated yet. All three hierarchy levels are required.
// @Tags ratings
// @Produce json
// @Param campus query string true "Campus"
// @Param school query string true "School"
// @Param department query string true "Department"
// @Param userId query string true "User ID"
// @Success 200 {array} dto.InstructorResponse "Candidate instructors"
// @Failure 400 {object} dto.ErrorResponse "Incomplete hierarchy or missing userId"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /ratings/candidates [get]
func (c *RatingController) ListCandidates(ctx *gin.Context) {
	candidates, err := c.ratingService.Candidates(ctx,
		ctx.Query("campus"), ctx.Query("school"), ctx.Query("department"), ctx.Query("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	response := make([]dto.InstructorResponse, 0, len(candidates))
	for _, in := range candidates {
		response = append(response, dto.FromInstructor(in))
	}

	ctx.JSON(http.StatusOK, response)
}
