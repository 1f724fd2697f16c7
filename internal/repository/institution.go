package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/shenikar/service_desk/internal/service"
)

var institutionSortColumns = map[string]string{
	"id":            "id",
	"instanceName":  "instance_name",
	"address":       "address",
	"contactNumber": "contact_number",
}

type InstitutionRepository struct {
	db *pgxpool.Pool
}

func NewInstitutionRepository(db *pgxpool.Pool) service.InstitutionRepository {
	return &InstitutionRepository{db: db}
}

func (r *InstitutionRepository) Create(ctx context.Context, institution *models.Institution) error {
	query := `
		INSERT INTO institutions (instance_name, address, contact_number)
		VALUES ($1, $2, $3) RETURNING id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		institution.InstanceName,
		institution.Address,
		institution.ContactNumber,
	).Scan(&id)
	if err != nil {
		return wrapError("failed to create institution", err)
	}
	institution.ID = &id
	return nil
}

func (r *InstitutionRepository) GetByID(ctx context.Context, id int64) (*models.Institution, error) {
	institution := &models.Institution{}
	query := `SELECT id, instance_name, address, contact_number FROM institutions WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&institution.ID,
		&institution.InstanceName,
		&institution.Address,
		&institution.ContactNumber,
	)
	if err != nil {
		return nil, wrapError(fmt.Sprintf("failed to get institution %d", id), err)
	}
	return institution, nil
}

func (r *InstitutionRepository) Update(ctx context.Context, institution *models.Institution) error {
	query := `
		UPDATE institutions SET
			instance_name = $1,
			address = $2,
			contact_number = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		institution.InstanceName,
		institution.Address,
		institution.ContactNumber,
		*institution.ID,
	)
	if err != nil {
		return wrapError("failed to update institution", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("institution", *institution.ID)
	}
	return nil
}

func (r *InstitutionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM institutions WHERE id = $1;`, id)
	if err != nil {
		return wrapError("failed to delete institution", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("institution", id)
	}
	return nil
}

// List возвращает страницу учреждений и их общее количество
func (r *InstitutionRepository) List(ctx context.Context, page models.PageRequest) ([]*models.Institution, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM institutions;`).Scan(&total); err != nil {
		return nil, 0, wrapError("failed to count institutions", err)
	}

	query := fmt.Sprintf(`
		SELECT id, instance_name, address, contact_number
		FROM institutions
		%s
		LIMIT $1 OFFSET $2;
	`, orderBy(page.Sort, institutionSortColumns, "id ASC"))
	rows, err := r.db.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, wrapError("failed to list institutions", err)
	}
	defer rows.Close()

	institutions := make([]*models.Institution, 0)
	for rows.Next() {
		institution := &models.Institution{}
		err := rows.Scan(
			&institution.ID,
			&institution.InstanceName,
			&institution.Address,
			&institution.ContactNumber,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan institution row: %w", err)
		}
		institutions = append(institutions, institution)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return institutions, total, nil
}
