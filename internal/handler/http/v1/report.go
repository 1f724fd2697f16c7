package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new report
// @Description Create a report. Referenced category and institution must exist. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body ReportRequest true "Report creation request"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid request body, validation error or unknown reference"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input ReportRequest
	log := h.logger.WithField("method", "createReport")

	if !h.bindAndValidate(c, log, &input) || !rejectBodyID(c, input.ID) {
		return
	}

	model := DTOToReportModel(input)
	if err := h.reportService.CreateReport(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "report not found")
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(model))
}

// @Summary Get a list of reports
// @Description Get a paginated list of reports. Total count is returned in X-Total-Count. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number, zero based" default(0)
// @Param size query int false "Number of items per page" default(20)
// @Param sort query []string false "Sort criteria: field,asc|desc" collectionFormat(multi)
// @Success 200 {array} ReportResponse
// @Header 200 {integer} X-Total-Count "Total number of reports"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	reports, total, err := h.reportService.ListReports(c.Request.Context(), parsePageRequest(c))
	if err != nil {
		respondError(c, log, err, "report not found")
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err, "report not found")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Update an existing report
// @Description The id in the body must match the path. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Report ID"
// @Param report body ReportRequest true "Report update request"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse "Invalid report ID, request body or unknown reference"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Router /reports/{id} [put]
func (h *Handler) updateReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateReport").WithField("id", id)

	var input ReportRequest
	if !h.bindAndValidate(c, log, &input) || !checkBodyID(c, id, input.ID) {
		return
	}

	model := DTOToReportModel(input)
	if err := h.reportService.UpdateReport(c.Request.Context(), model); err != nil {
		respondError(c, log, err, "report not found")
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(model))
}

// @Summary Delete a report
// @Tags Reports
// @Security ApiKeyAuth
// @Param id path int true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Router /reports/{id} [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteReport").WithField("id", id)

	if err := h.reportService.DeleteReport(c.Request.Context(), id); err != nil {
		respondError(c, log, err, "report not found")
		return
	}
	c.Status(http.StatusNoContent)
}
