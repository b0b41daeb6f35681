package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
)

type ModuleController struct {
	moduleService service.ModuleService
	lessonService service.LessonService
}

func NewModuleController(moduleService service.ModuleService, lessonService service.LessonService) *ModuleController {
	return &ModuleController{moduleService: moduleService, lessonService: lessonService}
}

// CreateModule godoc
// @Summary (Instructor) Create a module in a course
// @Tags Modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module_data body dto.ModuleCreateDTO true "Module data"
// @Success 201 {object} dto.ModuleResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var req dto.ModuleCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	module, err := c.moduleService.CreateModule(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, module)
}

// GetModule godoc
// @Summary Get a module by ID
// @Tags Modules
// @Produce json
// @Param module_id path int true "Module ID"
// @Success 200 {object} dto.ModuleResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{module_id} [get]
func (c *ModuleController) GetModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	module, err := c.moduleService.GetModule(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// GetModuleLessons godoc
// @Summary List a module's lessons in order
// @Tags Modules
// @Produce json
// @Param module_id path int true "Module ID"
// @Success 200 {array} dto.LessonResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{module_id}/lessons [get]
func (c *ModuleController) GetModuleLessons(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	lessons, err := c.lessonService.GetLessonsByModule(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lessons)
}

// UpdateModule godoc
// @Summary (Instructor) Update a module
// @Tags Modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module ID"
// @Param module_data body dto.ModuleUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ModuleResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{module_id} [put]
func (c *ModuleController) UpdateModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	var req dto.ModuleUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	module, err := c.moduleService.UpdateModule(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// DeleteModule godoc
// @Summary (Instructor) Delete a module
// @Tags Modules
// @Security BearerAuth
// @Param module_id path int true "Module ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{module_id} [delete]
func (c *ModuleController) DeleteModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "module_id")
	if !ok {
		return
	}
	if err := c.moduleService.DeleteModule(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
