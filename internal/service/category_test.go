package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/service_desk/internal/models"
	"github.com/shenikar/service_desk/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCategoryService(t *testing.T) (CategoryService, *mocks.MockCategoryRepository, *mocks.MockReportCacheInvalidator) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCategoryRepository(ctrl)
	reportsMock := mocks.NewMockReportCacheInvalidator(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewCategoryService(repoMock, reportsMock, logger), repoMock, reportsMock
}

func TestCreateCategory_Success(t *testing.T) {
	service, repoMock, _ := newTestCategoryService(t)
	ctx := context.Background()
	category := &models.Category{Name: "Дороги"}

	repoMock.EXPECT().
		Create(ctx, category).
		DoAndReturn(func(_ context.Context, c *models.Category) error {
			c.ID = ptr(int64(1))
			return nil
		}).Times(1)

	require.NoError(t, service.CreateCategory(ctx, category))
	assert.Equal(t, int64(1), *category.ID)
}

func TestCreateCategory_Error(t *testing.T) {
	service, repoMock, _ := newTestCategoryService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error")).Times(1)

	err := service.CreateCategory(ctx, &models.Category{Name: "x"})
	assert.ErrorContains(t, err, "could not create category")
}

func TestGetCategory_NotFound(t *testing.T) {
	service, repoMock, _ := newTestCategoryService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(3)).Return(nil, models.ErrNotFound).Times(1)

	_, err := service.GetCategory(ctx, 3)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateCategory_InvalidatesReferencingReports(t *testing.T) {
	service, repoMock, reportsMock := newTestCategoryService(t)
	ctx := context.Background()
	category := &models.Category{ID: ptr(int64(3)), Name: "Парки"}

	gomock.InOrder(
		repoMock.EXPECT().Update(ctx, category).Return(nil).Times(1),
		reportsMock.EXPECT().ListIDsByCategory(ctx, int64(3)).Return([]int64{10, 11}, nil).Times(1),
		reportsMock.EXPECT().InvalidateReportsCache(ctx, []int64{10, 11}).Return(nil).Times(1),
	)

	assert.NoError(t, service.UpdateCategory(ctx, category))
}

func TestUpdateCategory_NoReferencingReports(t *testing.T) {
	service, repoMock, reportsMock := newTestCategoryService(t)
	ctx := context.Background()
	category := &models.Category{ID: ptr(int64(3)), Name: "Парки"}

	repoMock.EXPECT().Update(ctx, category).Return(nil).Times(1)
	reportsMock.EXPECT().ListIDsByCategory(ctx, int64(3)).Return([]int64{}, nil).Times(1)
	reportsMock.EXPECT().InvalidateReportsCache(gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, service.UpdateCategory(ctx, category))
}

func TestUpdateCategory_CacheErrorIsNotFatal(t *testing.T) {
	service, repoMock, reportsMock := newTestCategoryService(t)
	ctx := context.Background()
	category := &models.Category{ID: ptr(int64(3)), Name: "Парки"}

	repoMock.EXPECT().Update(ctx, category).Return(nil).Times(1)
	reportsMock.EXPECT().ListIDsByCategory(ctx, int64(3)).Return([]int64{10}, nil).Times(1)
	reportsMock.EXPECT().InvalidateReportsCache(ctx, []int64{10}).Return(errors.New("redis down")).Times(1)

	assert.NoError(t, service.UpdateCategory(ctx, category))
}

func TestUpdateCategory_RepositoryErrorKeepsCache(t *testing.T) {
	service, repoMock, reportsMock := newTestCategoryService(t)
	ctx := context.Background()
	category := &models.Category{ID: ptr(int64(3)), Name: "Парки"}

	repoMock.EXPECT().Update(ctx, category).Return(models.ErrNotFound).Times(1)
	reportsMock.EXPECT().ListIDsByCategory(gomock.Any(), gomock.Any()).Times(0)

	err := service.UpdateCategory(ctx, category)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteCategory_InvalidatesReportsListedBeforeDelete(t *testing.T) {
	service, repoMock, reportsMock := newTestCategoryService(t)
	ctx := context.Background()

	gomock.InOrder(
		reportsMock.EXPECT().ListIDsByCategory(ctx, int64(3)).Return([]int64{10}, nil).Times(1),
		repoMock.EXPECT().Delete(ctx, int64(3)).Return(nil).Times(1),
		reportsMock.EXPECT().InvalidateReportsCache(ctx, []int64{10}).Return(nil).Times(1),
	)

	assert.NoError(t, service.DeleteCategory(ctx, 3))
}

func TestListCategories(t *testing.T) {
	service, repoMock, _ := newTestCategoryService(t)
	ctx := context.Background()
	expected := []*models.Category{{ID: ptr(int64(1)), Name: "a"}}

	repoMock.EXPECT().
		List(ctx, models.PageRequest{Page: 1, Size: 10, Sort: []string{"name,asc"}}).
		Return(expected, int64(11), nil).
		Times(1)

	categories, total, err := service.ListCategories(ctx, models.PageRequest{Page: 1, Size: 10, Sort: []string{"name,asc"}})

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
	assert.Equal(t, int64(11), total)
}
