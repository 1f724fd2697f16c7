package service

//go:generate mockgen -source=institution.go -destination=mocks/institution_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shenikar/service_desk/internal/models"
	"github.com/sirupsen/logrus"
)

// InstitutionRepository определяет контракт для работы с бд учреждений
type InstitutionRepository interface {
	Create(ctx context.Context, institution *models.Institution) error
	GetByID(ctx context.Context, id int64) (*models.Institution, error)
	Update(ctx context.Context, institution *models.Institution) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page models.PageRequest) ([]*models.Institution, int64, error)
}

// InstitutionService определяет контракт бизнес-логики справочника учреждений
type InstitutionService interface {
	CreateInstitution(ctx context.Context, institution *models.Institution) error
	GetInstitution(ctx context.Context, id int64) (*models.Institution, error)
	UpdateInstitution(ctx context.Context, institution *models.Institution) error
	DeleteInstitution(ctx context.Context, id int64) error
	ListInstitutions(ctx context.Context, page models.PageRequest) ([]*models.Institution, int64, error)
}

type institutionService struct {
	repo    InstitutionRepository
	reports ReportCacheInvalidator
	logger  *logrus.Logger
}

func NewInstitutionService(repo InstitutionRepository, reports ReportCacheInvalidator, logger *logrus.Logger) InstitutionService {
	return &institutionService{
		repo:    repo,
		reports: reports,
		logger:  logger,
	}
}

func (s *institutionService) CreateInstitution(ctx context.Context, institution *models.Institution) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "institution",
		"method":  "CreateInstitution",
		"name":    institution.InstanceName,
	})
	log.Info("Attempting to create a new institution")

	if err := s.repo.Create(ctx, institution); err != nil {
		log.WithError(err).Error("Failed to create institution in repository")
		return fmt.Errorf("service: could not create institution: %w", err)
	}

	log.WithField("institution_id", *institution.ID).Info("Institution created successfully")
	return nil
}

func (s *institutionService) GetInstitution(ctx context.Context, id int64) (*models.Institution, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "institution",
		"method":         "GetInstitution",
		"institution_id": id,
	})
	log.Info("Fetching institution by ID")

	institution, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get institution in repository")
		return nil, fmt.Errorf("service: could not get institution: %w", err)
	}
	return institution, nil
}

func (s *institutionService) UpdateInstitution(ctx context.Context, institution *models.Institution) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "institution",
		"method":         "UpdateInstitution",
		"institution_id": *institution.ID,
	})
	log.Info("Attempting to update institution")

	if err := s.repo.Update(ctx, institution); err != nil {
		log.WithError(err).Error("Failed to update institution in repository")
		return fmt.Errorf("service: could not update institution: %w", err)
	}
	s.invalidateInstitutionReports(ctx, log, *institution.ID)
	log.Info("Institution updated successfully")
	return nil
}

func (s *institutionService) DeleteInstitution(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "institution",
		"method":         "DeleteInstitution",
		"institution_id": id,
	})
	log.Info("Attempting to delete institution")

	// После удаления ссылки в обращениях обнуляются, поэтому их список берется заранее
	ids, err := s.reports.ListIDsByInstitution(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to list reports of institution")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete institution in repository")
		return fmt.Errorf("service: could not delete institution: %w", err)
	}
	invalidateReports(ctx, s.reports, log, ids)
	log.Info("Institution deleted successfully")
	return nil
}

func (s *institutionService) ListInstitutions(ctx context.Context, page models.PageRequest) ([]*models.Institution, int64, error) {
	page = page.Normalize()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "institution",
		"method":    "ListInstitutions",
		"page":      page.Page,
		"page_size": page.Size,
	})
	log.Info("Listing institutions")

	institutions, total, err := s.repo.List(ctx, page)
	if err != nil {
		log.WithError(err).Error("Failed to list institutions from repository")
		return nil, 0, fmt.Errorf("service: could not list institutions: %w", err)
	}

	log.WithField("count", len(institutions)).Info("Institutions listed successfully")
	return institutions, total, nil
}

// invalidateInstitutionReports сбрасывает кеш обращений, в которые встроена копия учреждения
func (s *institutionService) invalidateInstitutionReports(ctx context.Context, log *logrus.Entry, id int64) {
	ids, err := s.reports.ListIDsByInstitution(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to list reports of institution")
		return
	}
	invalidateReports(ctx, s.reports, log, ids)
}
