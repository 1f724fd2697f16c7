package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new category
// @Description Create a new report category. Requires API key.
// @Tags Categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param category body CategoryRequest true "Category creation request"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var input CategoryRequest
	log := h.logger.WithField("method", "createCategory")

	if !h.bindAndValidate(c, log, &input) || !rejectBodyID(c, input.ID) {
		return
	}

	model := DTOToCategoryModel(input)
	if err := h.categoryService.CreateCategory(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "category not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToCategoryResponse(model))
}

// @Summary Get a list of categories
// @Description Get a paginated list of categories. Total count is returned in X-Total-Count. Requires API key.
// @Tags Categories
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number, zero based" default(0)
// @Param size query int false "Number of items per page" default(20)
// @Param sort query []string false "Sort criteria: field,asc|desc" collectionFormat(multi)
// @Success 200 {array} CategoryResponse
// @Header 200 {integer} X-Total-Count "Total number of categories"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	log := h.logger.WithField("method", "listCategories")

	categories, total, err := h.categoryService.ListCategories(c.Request.Context(), parsePageRequest(c))
	if err != nil {
		respondError(c, log, err, "category not found")
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, ModelsToCategoryResponses(categories))
}

// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func (h *Handler) getCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getCategory").WithField("id", id)

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "category not found")
		return
	}
	c.JSON(http.StatusOK, ModelToCategoryResponse(category))
}

// @Summary Update an existing category
// @Description The id in the body must match the path. Requires API key.
// @Tags Categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Category update request"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse "Invalid category ID or request body"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /categories/{id} [put]
func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateCategory").WithField("id", id)

	var input CategoryRequest
	if !h.bindAndValidate(c, log, &input) || !checkBodyID(c, id, input.ID) {
		return
	}

	model := DTOToCategoryModel(input)
	if err := h.categoryService.UpdateCategory(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "category not found")
		return
	}
	c.JSON(http.StatusOK, ModelToCategoryResponse(model))
}

// @Summary Delete a category
// @Description Reports referencing the category lose the reference. Requires API key.
// @Tags Categories
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid category ID"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Router /categories/{id} [delete]
func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteCategory").WithField("id", id)

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "category not found")
		return
	}
	c.Status(http.StatusNoContent)
}
