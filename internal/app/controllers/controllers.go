package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusrate/campusrate/internal/app/models/dto"
	"github.com/campusrate/campusrate/internal/pkg/apperrors"
	"github.com/campusrate/campusrate/internal/pkg/logger"
)

// handleValidationError rejects a request whose shape is wrong before any
// service runs, naming the offending field.
func handleValidationError(ctx *gin.Context, field, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	errorDetail = errorDetail.WithField(field)
	errorDetail = errorDetail.WithDetails(message)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// handleServiceError maps service-layer sentinel errors to HTTP responses.
// NotFound never distinguishes "absent" from "exists but not yours".
// Unavailable is the only retryable condition and is always logged.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrDuplicateRating):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "You have already rated this instructor")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrRatingNotFound),
		errors.Is(err, apperrors.ErrInstructorNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrUnavailable):
		logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("Storage unavailable")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Service temporarily unavailable, please retry")
		errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityWarning)
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))

	default:
		logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An error occurred while processing your request")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
