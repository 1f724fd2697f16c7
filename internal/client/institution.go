package client

import (
	"context"

	"github.com/shenikar/service_desk/internal/collection"
	"github.com/shenikar/service_desk/internal/models"
)

// InstitutionService - операции над ресурсом /institutions
type InstitutionService struct {
	resource resource[*models.Institution]
}

func NewInstitutionService(c *Client) *InstitutionService {
	return &InstitutionService{resource: resource[*models.Institution]{client: c, path: "/institutions"}}
}

func (s *InstitutionService) Create(ctx context.Context, institution *models.Institution) (*Response[*models.Institution], error) {
	if institution == nil {
		return nil, ErrNilEntity
	}
	return s.resource.create(ctx, institution)
}

func (s *InstitutionService) Update(ctx context.Context, institution *models.Institution) (*Response[*models.Institution], error) {
	return s.resource.update(ctx, models.InstitutionIdentifier(institution), institution)
}

func (s *InstitutionService) Find(ctx context.Context, id int64) (*Response[*models.Institution], error) {
	return s.resource.find(ctx, id)
}

func (s *InstitutionService) Query(ctx context.Context, opts *RequestOptions) (*Response[[]*models.Institution], error) {
	return s.resource.query(ctx, opts)
}

func (s *InstitutionService) Delete(ctx context.Context, id int64) (*Response[struct{}], error) {
	return s.resource.delete(ctx, id)
}

func (s *InstitutionService) AddInstitutionToCollectionIfMissing(institutions []*models.Institution, toCheck ...*models.Institution) []*models.Institution {
	return collection.AddIfMissing(institutions, models.InstitutionIdentifier, toCheck...)
}
