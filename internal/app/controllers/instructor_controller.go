package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/app/services"
)

// InstructorController handles instructor listing with rating statistics
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new instructor controller
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// ListInstructors lists instructors joined with derived rating statistics
// @Summary List instructors with statistics
// @Description Get instructors matching the optional filters, each with average rating, per-star counts and total ratings derived from the current ledger.
// @Tags instructors
// @Produce json
// @Param campus query string false "Only instructors at this campus"
// @Param department query string false "Only instructors in this department"
// @Param hecApproved query boolean false "Only HEC approved (or not approved) supervisors"
// @Success 200 {array} dto.InstructorWithStatsResponse "Instructors with statistics"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /instructors [get]
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	filter := models.InstructorFilter{
		Campus:     ctx.Query("campus"),
		Department: ctx.Query("department"),
	}

	if raw, ok := ctx.GetQuery("hecApproved"); ok {
		switch raw {
		case "true":
			v := true
			filter.HECApproved = &v
		case "false":
			v := false
			filter.HECApproved = &v
		default:
			handleValidationError(ctx, "hecApproved", "hecApproved must be true or false")
			return
		}
	}

	instructors, err := c.instructorService.ListWithStats(ctx, filter)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	response := make([]dto.InstructorWithStatsResponse, 0, len(instructors))
	for _, in := range instructors {
		response = append(response, dto.FromInstructorWithStats(in))
	}

	ctx.JSON(http.StatusOK, response)
}
