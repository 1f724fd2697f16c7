package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shenikar/service_desk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_CreateSendsDateAsString(t *testing.T) {
	date := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		body["id"] = 11
		writeJSON(w, http.StatusCreated, body)
	})

	resp, err := NewReportService(c).Create(context.Background(), &models.Report{
		Title:    "A",
		Content:  "B",
		Date:     &date,
		Location: "L",
	})
	require.NoError(t, err)

	reqs := requests()
	require.Len(t, reqs, 1)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
	assert.IsType(t, "", sent["date"])
	assert.Equal(t, "2024-03-15T10:30:00Z", sent["date"])
	assert.Equal(t, "A", sent["title"])

	require.NotNil(t, resp.Body.ID)
	assert.Equal(t, int64(11), *resp.Body.ID)
	require.NotNil(t, resp.Body.Date)
	assert.True(t, date.Equal(*resp.Body.Date))
}

func TestReportService_CreateOmitsInvalidDate(t *testing.T) {
	c, requests := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1, "title": "A"})
	})
	zero := time.Time{}

	resp, err := NewReportService(c).Create(context.Background(), &models.Report{Title: "A", Date: &zero})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(requests()[0].Body, &sent))
	assert.NotContains(t, sent, "date")
	assert.Nil(t, resp.Body.Date)
}

func TestReportService_DoesNotMutateInput(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 4, "date": "2024-01-02T03:04:05Z"})
	})
	local := time.Date(2024, 1, 2, 6, 4, 5, 0, time.FixedZone("MSK", 3*3600))
	report := &models.Report{ID: ptr(int64(4)), Date: &local}

	_, err := NewReportService(c).Update(context.Background(), report)
	require.NoError(t, err)

	assert.Same(t, &local, report.Date)
	assert.Equal(t, "MSK", report.Date.Location().String())
}

func TestReportService_FindParsesDateAndReferences(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id":                5,
			"title":             "Pothole",
			"date":              "2024-05-01T08:00:00.123Z",
			"images":            "aGVsbG8=",
			"imagesContentType": "image/png",
			"type":              "COMPLAINT",
			"category":          map[string]any{"id": 2, "name": "Roads"},
			"institution":       map[string]any{"id": 3, "instanceName": "City Hall"},
		})
	})

	resp, err := NewReportService(c).Find(context.Background(), 5)
	require.NoError(t, err)

	report := resp.Body
	require.NotNil(t, report.Date)
	assert.True(t, time.Date(2024, 5, 1, 8, 0, 0, 123000000, time.UTC).Equal(*report.Date))
	assert.Equal(t, []byte("hello"), report.Images)
	require.NotNil(t, report.Type)
	assert.Equal(t, models.ReportTypeComplaint, *report.Type)
	assert.Equal(t, "Roads", report.Category.Name)
	assert.Equal(t, "City Hall", report.Institution.InstanceName)
}

func TestReportService_FindWithoutDate(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 5, "date": ""})
	})

	resp, err := NewReportService(c).Find(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, resp.Body.Date)
}

func TestReportService_FindInvalidServerDate(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 5, "date": "yesterday"})
	})

	_, err := NewReportService(c).Find(context.Background(), 5)
	assert.ErrorContains(t, err, "invalid date")
}

func TestReportService_QueryConvertsEveryElement(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "date": "2024-01-01T00:00:00Z"},
			{"id": 2},
		})
	})

	resp, err := NewReportService(c).Query(context.Background(), Paged(0, 20))
	require.NoError(t, err)

	require.Len(t, resp.Body, 2)
	require.NotNil(t, resp.Body[0].Date)
	assert.Equal(t, 2024, resp.Body[0].Date.Year())
	assert.Nil(t, resp.Body[1].Date)
}

func TestReportService_QueryEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	resp, err := NewReportService(c).Query(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, resp.Body)
	assert.Len(t, resp.Body, 0)
}

func TestWireDate_RoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC),
		time.Date(1999, 12, 31, 12, 0, 0, 0, time.FixedZone("X", -5*3600)),
		time.Now(),
	}
	for _, d := range dates {
		parsed, err := ParseWireDate(FormatWireDate(&d))
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.True(t, d.Equal(*parsed), "date %v", d)
	}

	zero := time.Time{}
	assert.Nil(t, FormatWireDate(nil))
	assert.Nil(t, FormatWireDate(&zero))

	parsed, err := ParseWireDate(nil)
	assert.NoError(t, err)
	assert.Nil(t, parsed)
}
