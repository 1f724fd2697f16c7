package service

//go:generate mockgen -source=report.go -destination=mocks/report_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/service_desk/internal/models"
	"github.com/shenikar/service_desk/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReportCacheInvalidator сбрасывает кеш обращений, в которые встроены категория или учреждение
type ReportCacheInvalidator interface {
	ListIDsByCategory(ctx context.Context, categoryID int64) ([]int64, error)
	ListIDsByInstitution(ctx context.Context, institutionID int64) ([]int64, error)
	InvalidateReportsCache(ctx context.Context, ids []int64) error
}

// ReportRepository определяет контракт для работы с бд и кешем обращений
type ReportRepository interface {
	ReportCacheInvalidator

	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	Update(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page models.PageRequest) ([]*models.Report, int64, error)

	GetReportFromCache(ctx context.Context, id int64) (*models.Report, error)
	SetReportCache(ctx context.Context, report *models.Report) error
	InvalidateReportCache(ctx context.Context, id int64) error
}

// ReportService определяет контракт бизнес-логики обращений
type ReportService interface {
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id int64) (*models.Report, error)
	UpdateReport(ctx context.Context, report *models.Report) error
	DeleteReport(ctx context.Context, id int64) error
	ListReports(ctx context.Context, page models.PageRequest) ([]*models.Report, int64, error)
}

type reportService struct {
	repo         ReportRepository
	categories   CategoryRepository
	institutions InstitutionRepository
	logger       *logrus.Logger
	publisher    webhook.EventPublisher
}

func NewReportService(
	repo ReportRepository,
	categories CategoryRepository,
	institutions InstitutionRepository,
	logger *logrus.Logger,
	publisher webhook.EventPublisher,
) ReportService {
	return &reportService{
		repo:         repo,
		categories:   categories,
		institutions: institutions,
		logger:       logger,
		publisher:    publisher,
	}
}

// CreateReport создает обращение и публикует событие report.created
func (s *reportService) CreateReport(ctx context.Context, report *models.Report) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "CreateReport",
		"title":   report.Title,
	})
	log.Info("Attempting to create a new report")

	if err := s.resolveReferences(ctx, report); err != nil {
		log.WithError(err).Warn("Report references could not be resolved")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}
	log = log.WithField("report_id", *report.ID)

	event := webhook.NewReportEvent(webhook.EventReportCreated, report, time.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Обращение уже сохранено, ошибка доставки события его не отменяет
		log.WithError(err).Error("Failed to publish report event")
	}

	log.Info("Report created successfully")
	return nil
}

// GetReport получает обращение по ID, сначала из кеша
func (s *reportService) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})
	log.Info("Fetching report by ID")

	cached, err := s.repo.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from cache")
	}
	if cached != nil {
		log.Debug("Report fetched from cache")
		return cached, nil
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report in repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to set report cache")
	}

	log.Info("Report fetched successfully")
	return report, nil
}

// UpdateReport обновляет обращение и сбрасывает его кеш
func (s *reportService) UpdateReport(ctx context.Context, report *models.Report) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "UpdateReport",
		"report_id": *report.ID,
	})
	log.Info("Attempting to update report")

	if err := s.resolveReferences(ctx, report); err != nil {
		log.WithError(err).Warn("Report references could not be resolved")
		return fmt.Errorf("service: could not update report: %w", err)
	}

	if err := s.repo.Update(ctx, report); err != nil {
		log.WithError(err).Error("Failed to update report in repository")
		return fmt.Errorf("service: could not update report: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, *report.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	log.Info("Report updated successfully")
	return nil
}

// DeleteReport удаляет обращение и сбрасывает его кеш
func (s *reportService) DeleteReport(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "DeleteReport",
		"report_id": id,
	})
	log.Info("Attempting to delete report")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete report in repository")
		return fmt.Errorf("service: could not delete report: %w", err)
	}

	if err := s.repo.InvalidateReportCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate report cache")
	}

	log.Info("Report deleted successfully")
	return nil
}

// ListReports возвращает страницу обращений и общее количество
func (s *reportService) ListReports(ctx context.Context, page models.PageRequest) ([]*models.Report, int64, error) {
	page = page.Normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page.Page,
		"page_size": page.Size,
	})
	log.Info("Listing reports")

	reports, total, err := s.repo.List(ctx, page)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, 0, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, total, nil
}

// resolveReferences заменяет категорию и учреждение обращения их сохраненными копиями
func (s *reportService) resolveReferences(ctx context.Context, report *models.Report) error {
	g, gctx := errgroup.WithContext(ctx)

	if report.Category != nil {
		ref := report.Category
		g.Go(func() error {
			if ref.ID == nil {
				return fmt.Errorf("%w: category without id", models.ErrInvalidReference)
			}
			category, err := s.categories.GetByID(gctx, *ref.ID)
			if err != nil {
				return referenceError("category", *ref.ID, err)
			}
			report.Category = category
			return nil
		})
	}

	if report.Institution != nil {
		ref := report.Institution
		g.Go(func() error {
			if ref.ID == nil {
				return fmt.Errorf("%w: institution without id", models.ErrInvalidReference)
			}
			institution, err := s.institutions.GetByID(gctx, *ref.ID)
			if err != nil {
				return referenceError("institution", *ref.ID, err)
			}
			report.Institution = institution
			return nil
		})
	}

	return g.Wait()
}

func referenceError(kind string, id int64, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %s %d does not exist", models.ErrInvalidReference, kind, id)
	}
	return fmt.Errorf("failed to load %s %d: %w", kind, id, err)
}

// invalidateReports сбрасывает кеш обращений ids. Ошибки кеша только логируются.
func invalidateReports(ctx context.Context, cache ReportCacheInvalidator, log *logrus.Entry, ids []int64) {
	if len(ids) == 0 {
		return
	}
	if err := cache.InvalidateReportsCache(ctx, ids); err != nil {
		log.WithError(err).Warn("Failed to invalidate cache of referencing reports")
		return
	}
	log.WithField("reports", len(ids)).Debug("Cache of referencing reports invalidated")
}
