package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// UpdateProgress godoc
// @Summary Update lesson progress for an enrollment
// @Description Marking a lesson COMPLETED requires a passing attempt on
// @Description every quiz attached to the lesson; the response names the
// @Description first unmet quiz otherwise. Other statuses update directly.
// @Tags Progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment_id path int true "Enrollment ID"
// @Param lesson_id path int true "Lesson ID"
// @Param progress_data body dto.ProgressUpdateDTO true "New status"
// @Success 200 {object} dto.CourseProgressResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Enrollment or lesson not found"
// @Failure 409 {object} dto.ErrorResponse "Quiz requirement unmet"
// @Router /enrollments/{enrollment_id}/lessons/{lesson_id}/progress [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	enrollmentID, ok := parseIDParam(ctx, "enrollment_id")
	if !ok {
		return
	}
	lessonID, ok := parseIDParam(ctx, "lesson_id")
	if !ok {
		return
	}
	var req dto.ProgressUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateProgress: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	progress, err := c.progressService.UpdateProgress(enrollmentID, lessonID, req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, progress)
}

// GetCourseProgress godoc
// @Summary List all lesson progress for an enrollment
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {array} dto.CourseProgressResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{enrollment_id}/progress [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	enrollmentID, ok := parseIDParam(ctx, "enrollment_id")
	if !ok {
		return
	}
	rows, err := c.progressService.GetCourseProgress(enrollmentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetCompletionRate godoc
// @Summary Completion rate for an enrollment
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} dto.CompletionRateDTO
// @Router /enrollments/{enrollment_id}/completion-rate [get]
func (c *ProgressController) GetCompletionRate(ctx *gin.Context) {
	enrollmentID, ok := parseIDParam(ctx, "enrollment_id")
	if !ok {
		return
	}
	rate, err := c.progressService.GetCompletionRate(enrollmentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rate)
}

// GetAnalytics godoc
// @Summary (Admin) Global progress analytics
// @Tags Progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsDTO
// @Router /progress/analytics [get]
func (c *ProgressController) GetAnalytics(ctx *gin.Context) {
	analytics, err := c.progressService.GetAnalytics()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}
