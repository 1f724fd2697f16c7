package client

import (
	"context"

	"github.com/shenikar/service_desk/internal/collection"
	"github.com/shenikar/service_desk/internal/models"
)

// CategoryService - операции над ресурсом /categories
type CategoryService struct {
	resource resource[*models.Category]
}

// NewCategoryService создает CategoryService
func NewCategoryService(c *Client) *CategoryService {
	return &CategoryService{resource: resource[*models.Category]{client: c, path: "/categories"}}
}

func (s *CategoryService) Create(ctx context.Context, category *models.Category) (*Response[*models.Category], error) {
	if category == nil {
		return nil, ErrNilEntity
	}
	return s.resource.create(ctx, category)
}

func (s *CategoryService) Update(ctx context.Context, category *models.Category) (*Response[*models.Category], error) {
	return s.resource.update(ctx, models.CategoryIdentifier(category), category)
}

func (s *CategoryService) Find(ctx context.Context, id int64) (*Response[*models.Category], error) {
	return s.resource.find(ctx, id)
}

func (s *CategoryService) Query(ctx context.Context, opts *RequestOptions) (*Response[[]*models.Category], error) {
	return s.resource.query(ctx, opts)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (*Response[struct{}], error) {
	return s.resource.delete(ctx, id)
}

// AddCategoryToCollectionIfMissing добавляет в начало списка отсутствующие в нем категории
func (s *CategoryService) AddCategoryToCollectionIfMissing(categories []*models.Category, toCheck ...*models.Category) []*models.Category {
	return collection.AddIfMissing(categories, models.CategoryIdentifier, toCheck...)
}
