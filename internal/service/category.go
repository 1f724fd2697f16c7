package service

//go:generate mockgen -source=category.go -destination=mocks/category_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/service_desk/internal/models"
	"github.com/sirupsen/logrus"
)

// CategoryRepository определяет контракт для работы с бд категорий
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page models.PageRequest) ([]*models.Category, int64, error)
}

// CategoryService определяет контракт бизнес-логики справочника категорий
type CategoryService interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, page models.PageRequest) ([]*models.Category, int64, error)
}

type categoryService struct {
	repo    CategoryRepository
	reports ReportCacheInvalidator
	logger  *logrus.Logger
}

func NewCategoryService(repo CategoryRepository, reports ReportCacheInvalidator, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repo:    repo,
		reports: reports,
		logger:  logger,
	}
}

// CreateCategory создает категорию
func (s *categoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "category",
		"method":  "CreateCategory",
		"name":    category.Name,
	})
	log.Info("Attempting to create a new category")

	if err := s.repo.Create(ctx, category); err != nil {
		log.WithError(err).Error("Failed to create category in repository")
		return fmt.Errorf("service: could not create category: %w", err)
	}

	log.WithField("category_id", *category.ID).Info("Category created successfully")
	return nil
}

// GetCategory получает категорию по ID
func (s *categoryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "GetCategory",
		"category_id": id,
	})
	log.Info("Fetching category by ID")

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get category in repository")
		return nil, fmt.Errorf("service: could not get category: %w", err)
	}
	return category, nil
}

// UpdateCategory обновляет категорию
func (s *categoryService) UpdateCategory(ctx context.Context, category *models.Category) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "UpdateCategory",
		"category_id": *category.ID,
	})
	log.Info("Attempting to update category")

	if err := s.repo.Update(ctx, category); err != nil {
		log.WithError(err).Error("Failed to update category in repository")
		return fmt.Errorf("service: could not update category: %w", err)
	}
	s.invalidateCategoryReports(ctx, log, *category.ID)
	log.Info("Category updated successfully")
	return nil
}

// DeleteCategory удаляет категорию
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "DeleteCategory",
		"category_id": id,
	})
	log.Info("Attempting to delete category")

	// После удаления ссылки в обращениях обнуляются, поэтому их список берется заранее
	ids, err := s.reports.ListIDsByCategory(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to list reports of category")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete category in repository")
		return fmt.Errorf("service: could not delete category: %w", err)
	}
	invalidateReports(ctx, s.reports, log, ids)
	log.Info("Category deleted successfully")
	return nil
}

// ListCategories возвращает страницу категорий и общее количество
func (s *categoryService) ListCategories(ctx context.Context, page models.PageRequest) ([]*models.Category, int64, error) {
	page = page.Normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "category",
		"method":    "ListCategories",
		"page":      page.Page,
		"page_size": page.Size,
	})
	log.Info("Listing categories")

	categories, total, err := s.repo.List(ctx, page)
	if err != nil {
		log.WithError(err).Error("Failed to list categories from repository")
		return nil, 0, fmt.Errorf("service: could not list categories: %w", err)
	}

	log.WithField("count", len(categories)).Info("Categories listed successfully")
	return categories, total, nil
}

// invalidateCategoryReports сбрасывает кеш обращений, в которые встроена копия категории
func (s *categoryService) invalidateCategoryReports(ctx context.Context, log *logrus.Entry, id int64) {
	ids, err := s.reports.ListIDsByCategory(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to list reports of category")
		return
	}
	invalidateReports(ctx, s.reports, log, ids)
}
