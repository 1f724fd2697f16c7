package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/service_desk/internal/config"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/shenikar/service_desk/internal/service"
	"github.com/sirupsen/logrus"
)

// TotalCountHeader - заголовок с общим количеством записей списка
const TotalCountHeader = "X-Total-Count"

type Handler struct {
	categoryService    service.CategoryService
	institutionService service.InstitutionService
	reportService      service.ReportService
	logger             *logrus.Logger
	validate           *validator.Validate
	cfg                *config.Config
}

func NewHandler(
	categoryService service.CategoryService,
	institutionService service.InstitutionService,
	reportService service.ReportService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		categoryService:    categoryService,
		institutionService: institutionService,
		reportService:      reportService,
		logger:             logger,
		validate:           validator.New(),
		cfg:                cfg,
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindAndValidate разбирает тело запроса и проверяет его. При ошибке ответ уже записан.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// parseID читает идентификатор из пути. При ошибке ответ уже записан.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// checkBodyID проверяет, что идентификатор в теле совпадает с идентификатором в пути
func checkBodyID(c *gin.Context, pathID int64, bodyID *int64) bool {
	if bodyID == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id is required in request body"})
		return false
	}
	if *bodyID != pathID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id in request body does not match path"})
		return false
	}
	return true
}

// rejectBodyID отклоняет создание записи с уже заданным идентификатором
func rejectBodyID(c *gin.Context, bodyID *int64) bool {
	if bodyID != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "a new entity cannot already have an id"})
		return false
	}
	return true
}

// parsePageRequest читает page, size и sort из query string
func parsePageRequest(c *gin.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(models.DefaultPageSize)))
	return models.PageRequest{
		Page: page,
		Size: size,
		Sort: c.QueryArray("sort"),
	}.Normalize()
}

func setTotalCount(c *gin.Context, total int64) {
	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
}

// respondError переводит ошибку сервиса в HTTP статус
func respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Entity not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMessage})
	case errors.Is(err, models.ErrInvalidReference):
		log.WithError(err).Warn("Invalid reference")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
