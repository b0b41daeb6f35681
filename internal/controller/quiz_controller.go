package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService    service.QuizService
	attemptService service.AttemptService
}

func NewQuizController(quizService service.QuizService, attemptService service.AttemptService) *QuizController {
	return &QuizController{quizService: quizService, attemptService: attemptService}
}

// GetQuiz godoc
// @Summary Get a quiz with its questions and answers
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuiz(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary (Instructor) Delete a quiz
// @Tags Quizzes
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	if err := c.quizService.DeleteQuiz(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SubmitAttempt godoc
// @Summary Submit answers for a quiz and get the graded result
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.AttemptSubmitDTO true "User ID and answers"
// @Success 201 {object} dto.AttemptResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz or user not found"
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	attempt, err := c.attemptService.SubmitAttempt(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// GetAttempts godoc
// @Summary List a user's attempts for a quiz, newest first
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.AttemptResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id"
// @Router /quizzes/{quiz_id}/attempts [get]
func (c *QuizController) GetAttempts(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	userID, err := strconv.ParseUint(ctx.Query("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format in query"})
		return
	}
	attempts, err := c.attemptService.GetAttempts(uint(userID), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
