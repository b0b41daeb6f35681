package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreateReview godoc
// @Summary Review a course (enrolled users only, one per course)
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review_data body dto.ReviewCreateDTO true "Review data"
// @Success 201 {object} dto.ReviewResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in the course"
// @Failure 409 {object} dto.ErrorResponse "Already reviewed"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.ReviewCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	review, err := c.reviewService.CreateReview(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, review)
}

// GetCourseReviews godoc
// @Summary List a course's reviews with the average rating
// @Tags Reviews
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseReviewsDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id}/reviews [get]
func (c *ReviewController) GetCourseReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	reviews, err := c.reviewService.GetCourseReviews(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// UpdateReview godoc
// @Summary Update a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review_id path int true "Review ID"
// @Param review_data body dto.ReviewUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ReviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{review_id} [put]
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "review_id")
	if !ok {
		return
	}
	var req dto.ReviewUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	review, err := c.reviewService.UpdateReview(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Reviews
// @Security BearerAuth
// @Param review_id path int true "Review ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Router /reviews/{review_id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "review_id")
	if !ok {
		return
	}
	if err := c.reviewService.DeleteReview(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
