package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/shenikar/service_desk/internal/service"
)

const reportSelect = `
	SELECT
		r.id,
		r.title,
		r.content,
		r.date,
		r.images,
		r.images_content_type,
		r.location,
		r.type,
		c.id,
		c.name,
		i.id,
		i.instance_name,
		i.address,
		i.contact_number
	FROM reports r
	LEFT JOIN categories c ON c.id = r.category_id
	LEFT JOIN institutions i ON i.id = r.institution_id
`

var reportSortColumns = map[string]string{
	"id":       "r.id",
	"title":    "r.title",
	"date":     "r.date",
	"type":     "r.type",
	"location": "r.location",
}

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новое обращение в бд
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (title, content, date, images, images_content_type, location, type, category_id, institution_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query, reportArgs(report)...).Scan(&id)
	if err != nil {
		return wrapError("failed to create report", err)
	}
	report.ID = &id
	return nil
}

// GetByID возвращает обращение вместе с категорией и учреждением
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	report, err := scanReport(r.db.QueryRow(ctx, reportSelect+` WHERE r.id = $1;`, id))
	if err != nil {
		return nil, wrapError(fmt.Sprintf("failed to get report %d", id), err)
	}
	return report, nil
}

func (r *ReportRepository) Update(ctx context.Context, report *models.Report) error {
	query := `
		UPDATE reports SET
			title = $1,
			content = $2,
			date = $3,
			images = $4,
			images_content_type = $5,
			location = $6,
			type = $7,
			category_id = $8,
			institution_id = $9
		WHERE id = $10;
	`
	args := append(reportArgs(report), *report.ID)
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return wrapError("failed to update report", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("report", *report.ID)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1;`, id)
	if err != nil {
		return wrapError("failed to delete report", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("report", id)
	}
	return nil
}

// List возвращает страницу обращений и их общее количество
func (r *ReportRepository) List(ctx context.Context, page models.PageRequest) ([]*models.Report, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports;`).Scan(&total); err != nil {
		return nil, 0, wrapError("failed to count reports", err)
	}

	query := fmt.Sprintf(`%s %s LIMIT $1 OFFSET $2;`, reportSelect, orderBy(page.Sort, reportSortColumns, "r.id ASC"))
	rows, err := r.db.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, wrapError("failed to list reports", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, total, nil
}

// GetReportFromCache пытается получить обращение из Redis.
// Отсутствие ключа не является ошибкой: возвращается nil, nil.
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id int64) (*models.Report, error) {
	val, err := r.redisClient.Get(ctx, reportCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return report, nil
}

// SetReportCache сохраняет обращение в Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.Report) error {
	if report.ID == nil {
		return fmt.Errorf("cannot cache report without id")
	}
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, reportCacheKey(*report.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set report in cache: %w", err)
	}
	return nil
}

// InvalidateReportCache удаляет обращение из Redis кеша
func (r *ReportRepository) InvalidateReportCache(ctx context.Context, id int64) error {
	if err := r.redisClient.Del(ctx, reportCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return nil
}

// InvalidateReportsCache удаляет из Redis кеша несколько обращений одной командой
func (r *ReportRepository) InvalidateReportsCache(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.redisClient.Del(ctx, reportCacheKeys(ids)...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate reports cache: %w", err)
	}
	return nil
}

// ListIDsByCategory возвращает идентификаторы обращений с категорией categoryID
func (r *ReportRepository) ListIDsByCategory(ctx context.Context, categoryID int64) ([]int64, error) {
	return r.listIDs(ctx, `SELECT id FROM reports WHERE category_id = $1`, categoryID)
}

// ListIDsByInstitution возвращает идентификаторы обращений, адресованных учреждению institutionID
func (r *ReportRepository) ListIDsByInstitution(ctx context.Context, institutionID int64) ([]int64, error) {
	return r.listIDs(ctx, `SELECT id FROM reports WHERE institution_id = $1`, institutionID)
}

func (r *ReportRepository) listIDs(ctx context.Context, query string, ref int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, ref)
	if err != nil {
		return nil, wrapError("failed to list report ids", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, wrapError("failed to scan report ids", err)
	}
	return ids, nil
}

func reportCacheKeys(ids []int64) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, reportCacheKey(id))
	}
	return keys
}

func reportCacheKey(id int64) string {
	return fmt.Sprintf("report:%d", id)
}

func reportArgs(report *models.Report) []any {
	var reportType *string
	if report.Type != nil {
		s := string(*report.Type)
		reportType = &s
	}
	return []any{
		report.Title,
		report.Content,
		report.Date,
		report.Images,
		report.ImagesContentType,
		report.Location,
		reportType,
		models.CategoryIdentifier(report.Category),
		models.InstitutionIdentifier(report.Institution),
	}
}

// scanReport читает строку reportSelect. Отсутствующие связи дают nil вместо пустых структур.
func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	var (
		reportType                        *string
		categoryID, institutionID         *int64
		categoryName, instanceName        *string
		institutionAddress, contactNumber *string
	)
	err := row.Scan(
		&report.ID,
		&report.Title,
		&report.Content,
		&report.Date,
		&report.Images,
		&report.ImagesContentType,
		&report.Location,
		&reportType,
		&categoryID,
		&categoryName,
		&institutionID,
		&instanceName,
		&institutionAddress,
		&contactNumber,
	)
	if err != nil {
		return nil, err
	}

	if reportType != nil {
		t := models.ReportType(*reportType)
		report.Type = &t
	}
	if categoryID != nil {
		report.Category = &models.Category{ID: categoryID, Name: deref(categoryName)}
	}
	if institutionID != nil {
		report.Institution = &models.Institution{
			ID:            institutionID,
			InstanceName:  deref(instanceName),
			Address:       deref(institutionAddress),
			ContactNumber: deref(contactNumber),
		}
	}
	return report, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
