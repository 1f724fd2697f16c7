package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new institution
// @Description Create a new institution. Requires API key.
// @Tags Institutions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param institution body InstitutionRequest true "Institution creation request"
// @Success 201 {object} InstitutionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /institutions [post]
func (h *Handler) createInstitution(c *gin.Context) {
	var input InstitutionRequest
	log := h.logger.WithField("method", "createInstitution")

	if !h.bindAndValidate(c, log, &input) || !rejectBodyID(c, input.ID) {
		return
	}

	model := DTOToInstitutionModel(input)
	if err := h.institutionService.CreateInstitution(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "institution not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToInstitutionResponse(model))
}

// @Summary Get a list of institutions
// @Description Get a paginated list of institutions. Total count is returned in X-Total-Count. Requires API key.
// @Tags Institutions
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number, zero based" default(0)
// @Param size query int false "Number of items per page" default(20)
// @Param sort query []string false "Sort criteria: field,asc|desc" collectionFormat(multi)
// @Success 200 {array} InstitutionResponse
// @Header 200 {integer} X-Total-Count "Total number of institutions"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /institutions [get]
func (h *Handler) listInstitutions(c *gin.Context) {
	log := h.logger.WithField("method", "listInstitutions")

	institutions, total, err := h.institutionService.ListInstitutions(c.Request.Context(), parsePageRequest(c))
	if err != nil {
		respondError(c, log, err, "institution not found")
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, ModelsToInstitutionResponses(institutions))
}

// @Summary Get institution by ID
// @Tags Institutions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Institution ID"
// @Success 200 {object} InstitutionResponse
// @Failure 400 {object} ErrorResponse "Invalid institution ID"
// @Failure 404 {object} ErrorResponse "Institution not found"
// @Router /institutions/{id} [get]
func (h *Handler) getInstitution(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getInstitution").WithField("id", id)

	institution, err := h.institutionService.GetInstitution(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "institution not found")
		return
	}
	c.JSON(http.StatusOK, ModelToInstitutionResponse(institution))
}

// @Summary Update an existing institution
// @Description The id in the body must match the path. Requires API key.
// @Tags Institutions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Institution ID"
// @Param institution body InstitutionRequest true "Institution update request"
// @Success 200 {object} InstitutionResponse
// @Failure 400 {object} ErrorResponse "Invalid institution ID or request body"
// @Failure 404 {object} ErrorResponse "Institution not found"
// @Router /institutions/{id} [put]
func (h *Handler) updateInstitution(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateInstitution").WithField("id", id)

	var input InstitutionRequest
	if !h.bindAndValidate(c, log, &input) || !checkBodyID(c, id, input.ID) {
		return
	}

	model := DTOToInstitutionModel(input)
	if err := h.institutionService.UpdateInstitution(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "institution not found")
		return
	}
	c.JSON(http.StatusOK, ModelToInstitutionResponse(model))
}

// @Summary Delete a institution
// @Description Reports addressed to the institution lose the reference. Requires API key.
// @Tags Institutions
// @Security ApiKeyAuth
// @Param id path int true "Institution ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid institution ID"
// @Failure 404 {object} ErrorResponse "Institution not found"
// @Router /institutions/{id} [delete]
func (h *Handler) deleteInstitution(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteInstitution").WithField("id", id)

	if err := h.institutionService.DeleteInstitution(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "institution not found")
		return
	}
	c.Status(http.StatusNoContent)
}
