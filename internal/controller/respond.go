package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
)

// respondError translates service-layer errors to HTTP status codes.
// Structural quiz defects are 422, unmet quiz requirements 409, everything
// in the not-found family 404; unknown errors stay opaque 500s.
func respondError(ctx *gin.Context, err error) {
	var structural *service.StructuralError
	if errors.As(err, &structural) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: structural.Error()})
		return
	}

	var requirement *service.QuizRequirementError
	if errors.As(err, &requirement) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: requirement.Error()})
		return
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrModuleNotFound),
		errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrQuizNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrCategoryNameTaken),
		errors.Is(err, service.ErrAlreadyEnrolled),
		errors.Is(err, service.ErrAlreadyReviewed):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotEnrolled):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}

// parseIDParam reads a positive integer path parameter, replying 400 itself
// on failure.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
