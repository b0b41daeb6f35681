package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category_data body dto.CategoryCreateDTO true "Category data"
// @Success 201 {object} dto.CategoryResponseDTO
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Router /categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	category, err := c.categoryService.CreateCategory(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// GetAllCategories godoc
// @Summary List all categories
// @Tags Categories
// @Produce json
// @Success 200 {array} dto.CategoryResponseDTO
// @Router /categories [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.categoryService.GetAllCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category by ID
// @Tags Categories
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{category_id} [get]
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "category_id")
	if !ok {
		return
	}
	category, err := c.categoryService.GetCategory(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category_id path int true "Category ID"
// @Param category_data body dto.CategoryUpdateDTO true "Fields to update"
// @Success 200 {object} dto.CategoryResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{category_id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "category_id")
	if !ok {
		return
	}
	var req dto.CategoryUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	category, err := c.categoryService.UpdateCategory(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags Categories
// @Security BearerAuth
// @Param category_id path int true "Category ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /categories/{category_id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "category_id")
	if !ok {
		return
	}
	if err := c.categoryService.DeleteCategory(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
