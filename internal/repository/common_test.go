package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name string
		sort []string
		want string
	}{
		{name: "fallback when empty", sort: nil, want: "ORDER BY r.id ASC"},
		{name: "single field", sort: []string{"title,desc"}, want: "ORDER BY r.title DESC"},
		{name: "direction defaults to asc", sort: []string{"date"}, want: "ORDER BY r.date ASC"},
		{name: "unknown fields skipped", sort: []string{"id;DROP TABLE reports", "date,DESC"}, want: "ORDER BY r.date DESC"},
		{name: "only unknown fields", sort: []string{"password"}, want: "ORDER BY r.id ASC"},
		{name: "multiple fields", sort: []string{"type,asc", "id,desc"}, want: "ORDER BY r.type ASC, r.id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.sort, reportSortColumns, "r.id ASC"))
		})
	}
}

func TestWrapError(t *testing.T) {
	err := wrapError("failed to get report 1", pgx.ErrNoRows)
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = wrapError("failed to create report", &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "reports_category_id_fkey"})
	assert.ErrorIs(t, err, models.ErrInvalidReference)
	assert.ErrorContains(t, err, "reports_category_id_fkey")

	cause := errors.New("connection refused")
	err = wrapError("failed to list reports", cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestReportCacheKey(t *testing.T) {
	assert.Equal(t, "report:42", reportCacheKey(42))
	assert.Equal(t, fmt.Sprintf("report:%d", int64(-1)), reportCacheKey(-1))
}

func TestReportCacheKeys(t *testing.T) {
	assert.Equal(t, []string{"report:1", "report:7"}, reportCacheKeys([]int64{1, 7}))
	assert.Empty(t, reportCacheKeys(nil))
}
