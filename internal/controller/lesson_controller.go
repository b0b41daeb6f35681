package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
)

type LessonController struct {
	lessonService service.LessonService
	quizService   service.QuizService
}

func NewLessonController(lessonService service.LessonService, quizService service.QuizService) *LessonController {
	return &LessonController{lessonService: lessonService, quizService: quizService}
}

// CreateLesson godoc
// @Summary (Instructor) Create a lesson in a module
// @Tags Lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lesson_data body dto.LessonCreateDTO true "Lesson data"
// @Success 201 {object} dto.LessonResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req dto.LessonCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	lesson, err := c.lessonService.CreateLesson(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, lesson)
}

// GetLesson godoc
// @Summary Get a lesson by ID
// @Tags Lessons
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Success 200 {object} dto.LessonResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lesson_id")
	if !ok {
		return
	}
	lesson, err := c.lessonService.GetLesson(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

// CreateQuiz godoc
// @Summary (Instructor) Create a quiz for a lesson
// @Description The quiz is validated structurally before anything is stored:
// @Description every question must match its type's answer-count and
// @Description correct-count rules. Violations report the question position.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lesson_id path int true "Lesson ID"
// @Param quiz_data body dto.QuizCreateDTO true "Quiz with questions and answers"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Failure 422 {object} dto.ErrorResponse "Structurally invalid quiz"
// @Router /lessons/{lesson_id}/quizzes [post]
func (c *LessonController) CreateQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lesson_id")
	if !ok {
		return
	}
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	quiz, err := c.quizService.CreateQuiz(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetLessonQuizzes godoc
// @Summary List quizzes attached to a lesson
// @Tags Quizzes
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id}/quizzes [get]
func (c *LessonController) GetLessonQuizzes(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lesson_id")
	if !ok {
		return
	}
	quizzes, err := c.quizService.GetQuizzesByLesson(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// UpdateLesson godoc
// @Summary (Instructor) Update a lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lesson_id path int true "Lesson ID"
// @Param lesson_data body dto.LessonUpdateDTO true "Fields to update"
// @Success 200 {object} dto.LessonResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lesson_id")
	if !ok {
		return
	}
	var req dto.LessonUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	lesson, err := c.lessonService.UpdateLesson(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

// DeleteLesson godoc
// @Summary (Instructor) Delete a lesson
// @Tags Lessons
// @Security BearerAuth
// @Param lesson_id path int true "Lesson ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{lesson_id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lesson_id")
	if !ok {
		return
	}
	if err := c.lessonService.DeleteLesson(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
