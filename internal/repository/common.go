package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/service_desk/internal/models"
)

const foreignKeyViolation = "23503"

// orderBy строит ORDER BY из параметров сортировки вида "field,asc".
// Неизвестные поля пропускаются, пустой результат заменяется fallback.
func orderBy(sort []string, columns map[string]string, fallback string) string {
	clauses := make([]string, 0, len(sort))
	for _, item := range sort {
		field, dir, _ := strings.Cut(item, ",")
		column, ok := columns[strings.TrimSpace(field)]
		if !ok {
			continue
		}
		direction := "ASC"
		if strings.EqualFold(strings.TrimSpace(dir), "desc") {
			direction = "DESC"
		}
		clauses = append(clauses, column+" "+direction)
	}
	if len(clauses) == 0 {
		return "ORDER BY " + fallback
	}
	return "ORDER BY " + strings.Join(clauses, ", ")
}

// wrapError приводит ошибки pgx к ошибкам предметной области
func wrapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s: %w: %s", op, models.ErrInvalidReference, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s with id %d: %w", kind, id, models.ErrNotFound)
}
