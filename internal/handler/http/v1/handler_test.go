package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/service_desk/internal/client"
	"github.com/shenikar/service_desk/internal/config"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/shenikar/service_desk/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

type serviceMocks struct {
	categories   *mocks.MockCategoryService
	institutions *mocks.MockInstitutionService
	reports      *mocks.MockReportService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		categories:   mocks.NewMockCategoryService(ctrl),
		institutions: mocks.NewMockInstitutionService(ctrl),
		reports:      mocks.NewMockReportService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}

	handler := NewHandler(m.categories, m.institutions, m.reports, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func ptr[T any](v T) *T { return &v }

func TestHealthCheck_NoAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_MissingAndInvalidKey(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.categories.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/categories", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.categories.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/categories", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_DisabledWithoutKeys(t *testing.T) {
	handler, m, _ := newTestHandler(t)
	handler.cfg = &config.Config{}
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))

	m.categories.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCreateCategory_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.categories.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Category) error {
			assert.Nil(t, c.ID)
			c.ID = ptr(int64(7)) // Симулируем, что БД присвоила ID
			return nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/categories", jsonBody(t, CategoryRequest{Name: "Дороги"}), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Дороги", resp.Name)
}

func TestCreateCategory_WithIDRejected(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/categories", jsonBody(t, CategoryRequest{ID: ptr(int64(1)), Name: "x"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot already have an id")
}

func TestCreateCategory_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/categories", jsonBody(t, CategoryRequest{}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateCategory_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.categories.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/categories", bytes.NewBufferString(`{"name": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestListCategories_PagingAndTotalCount(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.Category{
		{ID: ptr(int64(1)), Name: "a"},
		{ID: ptr(int64(2)), Name: "b"},
	}

	m.categories.EXPECT().
		ListCategories(gomock.Any(), models.PageRequest{Page: 2, Size: 5, Sort: []string{"name,desc", "id"}}).
		Return(expected, int64(12), nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/categories?page=2&size=5&sort=name,desc&sort=id", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12", w.Header().Get(TotalCountHeader))
	var resp []CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "b", resp[1].Name)
}

func TestListCategories_DefaultPage(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.categories.EXPECT().
		ListCategories(gomock.Any(), models.PageRequest{Page: 0, Size: models.DefaultPageSize}).
		Return([]*models.Category{}, int64(0), nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/categories?size=abc", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get(TotalCountHeader))
}

func TestGetCategory_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.categories.EXPECT().GetCategory(gomock.Any(), int64(3)).Return(nil, fmt.Errorf("wrapped: %w", models.ErrNotFound)).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/categories/3", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "category not found")
}

func TestGetCategory_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.categories.EXPECT().GetCategory(gomock.Any(), gomock.Any()).Times(0)

	for _, id := range []string{"abc", "0", "-4"} {
		w := makeRequest(router, http.MethodGet, "/api/categories/"+id, nil, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Contains(t, w.Body.String(), "invalid id", id)
	}
}

func TestUpdateCategory_IDChecks(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.categories.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/categories/5", jsonBody(t, CategoryRequest{Name: "x"}), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id is required")

	w = makeRequest(router, http.MethodPut, "/api/categories/5", jsonBody(t, CategoryRequest{ID: ptr(int64(6)), Name: "x"}), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "does not match")
}

func TestUpdateCategory_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.categories.EXPECT().
		UpdateCategory(gomock.Any(), &models.Category{ID: ptr(int64(5)), Name: "Парки"}).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPut, "/api/categories/5", jsonBody(t, CategoryRequest{ID: ptr(int64(5)), Name: "Парки"}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5,"name":"Парки"}`, w.Body.String())
}

func TestDeleteCategory(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.categories.EXPECT().DeleteCategory(gomock.Any(), int64(5)).Return(nil).Times(1)
	m.categories.EXPECT().DeleteCategory(gomock.Any(), int64(6)).Return(models.ErrNotFound).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/categories/5", nil, authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodDelete, "/api/categories/6", nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateInstitution_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := InstitutionRequest{InstanceName: "Мэрия", Address: "пл. Ленина, 1", ContactNumber: "+7 900 000-00-00"}

	m.institutions.EXPECT().
		CreateInstitution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i *models.Institution) error {
			i.ID = ptr(int64(3))
			return nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/institutions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp InstitutionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, reqBody.ContactNumber, resp.ContactNumber)
}

func TestListInstitutions_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.institutions.EXPECT().ListInstitutions(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db error")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/institutions", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Empty(t, w.Header().Get(TotalCountHeader))
}

func TestCreateReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	date := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	body := `{
		"title": "Яма на дороге",
		"content": "Глубокая",
		"date": "2024-03-01T09:30:00Z",
		"images": "AQID",
		"imagesContentType": "image/png",
		"type": "COMPLAINT",
		"category": {"id": 2, "name": "ignored"},
		"institution": {"id": 3}
	}`

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			assert.True(t, date.Equal(*r.Date))
			assert.Equal(t, []byte{1, 2, 3}, r.Images)
			assert.Equal(t, models.ReportTypeComplaint, *r.Type)
			assert.Equal(t, &models.Category{ID: ptr(int64(2))}, r.Category)
			r.ID = ptr(int64(10))
			r.Category = &models.Category{ID: ptr(int64(2)), Name: "Дороги"}
			return nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/reports", bytes.NewBufferString(body), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Дороги", resp.Category.Name)
	assert.Contains(t, w.Body.String(), `"date":"2024-03-01T09:30:00Z"`)
	assert.Contains(t, w.Body.String(), `"images":"AQID"`)
}

func TestCreateReport_UnknownType(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/reports", bytes.NewBufferString(`{"title":"x","type":"PRAISE"}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateReport_ImagesWithoutContentType(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/reports", bytes.NewBufferString(`{"title":"x","images":"AQID"}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ImagesContentType")
}

func TestCreateReport_InvalidReference(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: category 9 does not exist", models.ErrInvalidReference)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/reports", bytes.NewBufferString(`{"title":"x","category":{"id":9}}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "category 9 does not exist")
}

func TestUpdateReport_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().UpdateReport(gomock.Any(), gomock.Any()).Return(models.ErrNotFound).Times(1)

	w := makeRequest(router, http.MethodPut, "/api/reports/4", bytes.NewBufferString(`{"id":4,"title":"x"}`), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestGetReport_OmitsMissingDate(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().GetReport(gomock.Any(), int64(4)).Return(&models.Report{ID: ptr(int64(4)), Title: "x", Date: &time.Time{}}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/reports/4", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "date")
}

// Клиент и сервер должны одинаково понимать формат дат, вложений и заголовок X-Total-Count
func TestReports_ClientRoundTrip(t *testing.T) {
	_, m, router := newTestHandler(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	local := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2024, 5, 9, 12, 0, 0, 0, local)
	stored := &models.Report{
		ID:                ptr(int64(1)),
		Title:             "Сломанный фонарь",
		Date:              &date,
		Images:            []byte{0x89, 0x50, 0x4e, 0x47},
		ImagesContentType: "image/png",
		Type:              ptr(models.ReportTypeIncident),
		Institution:       &models.Institution{ID: ptr(int64(2)), InstanceName: "Мэрия"},
	}

	m.reports.EXPECT().
		ListReports(gomock.Any(), models.PageRequest{Page: 0, Size: 1, Sort: []string{"date,desc"}}).
		Return([]*models.Report{stored}, int64(3), nil).
		Times(1)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c := client.NewClient(&config.ClientConfig{Endpoint: srv.URL + "/api", APIKey: testAPIKey, Timeout: 5 * time.Second}, logger)

	resp, err := client.NewReportService(c).Query(context.Background(), client.Paged(0, 1).WithSort("date,desc"))
	require.NoError(t, err)

	total, ok := resp.TotalCount()
	assert.True(t, ok)
	assert.Equal(t, int64(3), total)
	require.Len(t, resp.Body, 1)
	got := resp.Body[0]
	assert.True(t, date.Equal(*got.Date))
	assert.Equal(t, stored.Images, got.Images)
	assert.Equal(t, stored.Institution, got.Institution)
	assert.Equal(t, models.ReportTypeIncident, *got.Type)
}
