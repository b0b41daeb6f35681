package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
)

type EnrollmentController struct {
	enrollmentService service.EnrollmentService
}

func NewEnrollmentController(enrollmentService service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Enroll godoc
// @Summary Enroll a user in a course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment_data body dto.EnrollmentCreateDTO true "User and course"
// @Success 201 {object} dto.EnrollmentResponseDTO
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	enrollment, err := c.enrollmentService.Enroll(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, enrollment)
}

// GetUserEnrollments godoc
// @Summary List a user's enrollments
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.EnrollmentResponseDTO
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{user_id}/enrollments [get]
func (c *EnrollmentController) GetUserEnrollments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	enrollments, err := c.enrollmentService.GetEnrollmentsByUser(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollments)
}

// GetCourseEnrollments godoc
// @Summary (Instructor) List enrollments in a course
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.EnrollmentResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id}/enrollments [get]
func (c *EnrollmentController) GetCourseEnrollments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	enrollments, err := c.enrollmentService.GetEnrollmentsByCourse(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, enrollments)
}

// Unenroll godoc
// @Summary Remove an enrollment
// @Tags Enrollments
// @Security BearerAuth
// @Param enrollment_id path int true "Enrollment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{enrollment_id} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "enrollment_id")
	if !ok {
		return
	}
	if err := c.enrollmentService.Unenroll(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
