package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/shenikar/service_desk/internal/service"
)

var categorySortColumns = map[string]string{
	"id":   "id",
	"name": "name",
}

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) service.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create создает новую категорию в бд
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id;`
	var id int64
	if err := r.db.QueryRow(ctx, query, category.Name).Scan(&id); err != nil {
		return wrapError("failed to create category", err)
	}
	category.ID = &id
	return nil
}

// GetByID возвращает категорию по id
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	category := &models.Category{}
	query := `SELECT id, name FROM categories WHERE id = $1;`
	if err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name); err != nil {
		return nil, wrapError(fmt.Sprintf("failed to get category %d", id), err)
	}
	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `UPDATE categories SET name = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, category.Name, *category.ID)
	if err != nil {
		return wrapError("failed to update category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("category", *category.ID)
	}
	return nil
}

// Delete удаляет категорию, ссылки обращений на нее обнуляются
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		return wrapError("failed to delete category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("category", id)
	}
	return nil
}

// List возвращает страницу категорий и их общее количество
func (r *CategoryRepository) List(ctx context.Context, page models.PageRequest) ([]*models.Category, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories;`).Scan(&total); err != nil {
		return nil, 0, wrapError("failed to count categories", err)
	}

	query := fmt.Sprintf(`SELECT id, name FROM categories %s LIMIT $1 OFFSET $2;`,
		orderBy(page.Sort, categorySortColumns, "id ASC"))
	rows, err := r.db.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, wrapError("failed to list categories", err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, 0, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return categories, total, nil
}
