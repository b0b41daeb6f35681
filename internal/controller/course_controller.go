package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/repository"
	"github.com/ndmanh/learnhub/internal/service"
)

type CourseController struct {
	courseService service.CourseService
	moduleService service.ModuleService
}

func NewCourseController(courseService service.CourseService, moduleService service.ModuleService) *CourseController {
	return &CourseController{courseService: courseService, moduleService: moduleService}
}

// CreateCourse godoc
// @Summary (Instructor) Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course_data body dto.CourseCreateDTO true "Course data"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Instructor or category not found"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	course, err := c.courseService.CreateCourse(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// GetCourses godoc
// @Summary List courses
// @Description Filter by category and title substring, paginated with page/limit.
// @Tags Courses
// @Produce json
// @Param category_id query int false "Category ID"
// @Param title query string false "Title substring"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.CourseListDTO
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	var filter repository.CourseFilter
	if v := ctx.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid category_id format"})
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	filter.Title = ctx.Query("title")
	filter.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "0"))
	filter.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	courses, err := c.courseService.GetCourses(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get a course with its modules and lessons
// @Tags Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	course, err := c.courseService.GetCourse(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// GetCourseModules godoc
// @Summary List a course's modules in order
// @Tags Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.ModuleResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id}/modules [get]
func (c *CourseController) GetCourseModules(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	modules, err := c.moduleService.GetModulesByCourse(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, modules)
}

// UpdateCourse godoc
// @Summary (Instructor) Update a course
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Param course_data body dto.CourseUpdateDTO true "Fields to update"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	var req dto.CourseUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	course, err := c.courseService.UpdateCourse(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary (Instructor) Delete a course
// @Tags Courses
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	if err := c.courseService.DeleteCourse(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
