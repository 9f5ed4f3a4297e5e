package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusrate/campusrate/internal/app/models"
	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/app/services"
)

// FilterController handles filter hierarchy option resolution
type FilterController struct {
	filterService services.FilterService
}

// NewFilterController creates a new filter controller
func NewFilterController(filterService services.FilterService) *FilterController {
	return &FilterController{
		filterService: filterService,
	}
}

// GetFilterOptions resolves the option sets for every filter level
// @Summary Get filter options
// @Description Get campus, school and department option sets. Schools narrow by campus, departments by campus and school; campuses are always unconstrained. Passing changed=campus or changed=school applies the interactive cascade, clearing every level below the changed one before resolving.
// @Tags filters
// @Produce json
// @Param campus query string false "Selected campus"
// @Param school query string false "Selected school"
// @Param department query string false "Selected department"
// @Param changed query string false "The level the user just changed (campus, school or department)"
// @Success 200 {object} dto.FilterOptionsResponse "Filter options"
// @Failure 400 {object} dto.ErrorResponse "Unknown changed level"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /filter-options [get]
func (c *FilterController) GetFilterOptions(ctx *gin.Context) {
	selection := models.FilterSelection{
		Campus:     ctx.Query("campus"),
		School:     ctx.Query("school"),
		Department: ctx.Query("department"),
	}

	// An interactive change resets the levels below it. Edit flows omit
	// "changed" and resolve against the selection as-is.
	if changed, ok := ctx.GetQuery("changed"); ok {
		switch changed {
		case "campus":
			selection = selection.Apply(models.LevelCampus, selection.Campus)
		case "school":
			selection = selection.Apply(models.LevelSchool, selection.School)
		case "department":
			selection = selection.Apply(models.LevelDepartment, selection.Department)
		default:
			handleValidationError(ctx, "changed", "changed must be campus, school or department")
			return
		}
	}

	options, err := c.filterService.ResolveOptions(ctx, selection)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	response := dto.FilterOptionsResponse{
		Campuses:    options.Campuses,
		Schools:     make([]dto.SchoolOption, 0, len(options.Schools)),
		Departments: make([]dto.DepartmentOption, 0, len(options.Departments)),
	}
	for _, s := range options.Schools {
		response.Schools = append(response.Schools, dto.SchoolOption{Name: s.Name, Campus: s.Campus})
	}
	for _, d := range options.Departments {
		response.Departments = append(response.Departments, dto.DepartmentOption{Name: d.Name, School: d.School, Campus: d.Campus})
	}

	ctx.JSON(http.StatusOK, response)
}
