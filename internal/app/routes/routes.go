package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusrate/campusrate/internal/app/controllers"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	filterController *controllers.FilterController,
	instructorController *controllers.InstructorController,
	ratingController *controllers.RatingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Filter hierarchy options (public access)
	v1.GET("/filter-options", filterController.GetFilterOptions)

	// Instructor listing with rating statistics (public access)
	v1.GET("/instructors", instructorController.ListInstructors)

	// Rating ledger routes
	ratings := v1.Group("/ratings")
	{
		ratings.GET("", ratingController.ListRatings)
		ratings.GET("/candidates", ratingController.ListCandidates)
		ratings.POST("", ratingController.CreateRating)
		ratings.PUT("/:id", ratingController.UpdateRating)
		ratings.DELETE("/:id", ratingController.DeleteRating)
	}

	// Moderation routes, guarded by the moderator role claim
	moderation := v1.Group("/moderation")
	moderation.Use(authMiddleware.ModeratorRequired())
	{
		moderation.DELETE("/ratings/:id", ratingController.DeleteRatingAsModerator)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})
}
