package editor

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/service_desk/internal/client"
	"github.com/shenikar/service_desk/internal/collection"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func ptr[T any](v T) *T { return &v }

type fakeReports struct {
	mu      sync.Mutex
	created []*models.Report
	updated []*models.Report
	err     error
}

func (f *fakeReports) Create(_ context.Context, r *models.Report) (*client.Response[*models.Report], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, r)
	if f.err != nil {
		return nil, f.err
	}
	saved := *r
	saved.ID = ptr(int64(100))
	return &client.Response[*models.Report]{StatusCode: http.StatusCreated, Body: &saved}, nil
}

func (f *fakeReports) Update(_ context.Context, r *models.Report) (*client.Response[*models.Report], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, r)
	if f.err != nil {
		return nil, f.err
	}
	return &client.Response[*models.Report]{StatusCode: http.StatusOK, Body: r}, nil
}

type fakeCategories struct {
	items []*models.Category
	err   error
}

func (f *fakeCategories) Query(context.Context, *client.RequestOptions) (*client.Response[[]*models.Category], error) {
	if f.err != nil {
		return nil, f.err
	}
	return &client.Response[[]*models.Category]{StatusCode: http.StatusOK, Body: append([]*models.Category{}, f.items...)}, nil
}

func (f *fakeCategories) AddCategoryToCollectionIfMissing(c []*models.Category, toCheck ...*models.Category) []*models.Category {
	return collection.AddIfMissing(c, models.CategoryIdentifier, toCheck...)
}

type fakeInstitutions struct {
	items []*models.Institution
	delay time.Duration
	err   error
}

func (f *fakeInstitutions) Query(ctx context.Context, _ *client.RequestOptions) (*client.Response[[]*models.Institution], error) {
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &client.Response[[]*models.Institution]{StatusCode: http.StatusOK, Body: append([]*models.Institution{}, f.items...)}, nil
}

func (f *fakeInstitutions) AddInstitutionToCollectionIfMissing(c []*models.Institution, toCheck ...*models.Institution) []*models.Institution {
	return collection.AddIfMissing(c, models.InstitutionIdentifier, toCheck...)
}

type fakeNavigator struct{ backs atomic.Int32 }

func (n *fakeNavigator) Back() { n.backs.Add(1) }

type testEditor struct {
	*Editor
	reports      *fakeReports
	categories   *fakeCategories
	institutions *fakeInstitutions
	events       *EventManager
	navigator    *fakeNavigator
}

func newTestEditor(t *testing.T) *testEditor {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	te := &testEditor{
		reports: &fakeReports{},
		categories: &fakeCategories{items: []*models.Category{
			{ID: ptr(int64(1)), Name: "Roads"},
			{ID: ptr(int64(2)), Name: "Parks"},
		}},
		institutions: &fakeInstitutions{items: []*models.Institution{
			{ID: ptr(int64(10)), InstanceName: "City Hall"},
		}},
		events:    NewEventManager(),
		navigator: &fakeNavigator{},
	}
	te.Editor = NewEditor(te.reports, te.categories, te.institutions, te.events, te.navigator, logger)
	te.Editor.location = time.UTC
	te.Editor.now = func() time.Time { return time.Date(2024, 6, 1, 15, 45, 0, 0, time.UTC) }
	return te
}

func fillRequired(st *State) {
	st.PatchForm(func(f *ReportForm) {
		f.Title = "Pothole"
		f.Content = "Big one"
		f.Location = "Main st."
		f.Images = pngHeader
		f.ImagesContentType = "image/png"
	})
}

func TestOpen_NewReportGetsStartOfDay(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()

	require.NoError(t, te.Open(context.Background(), st, &models.Report{}))

	assert.Equal(t, "2024-06-01T00:00", st.Form().Date)
	assert.Len(t, st.Categories(), 2)
	assert.Len(t, st.Institutions(), 1)
}

func TestOpen_ExistingReportKeepsSelectionInLookups(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()
	date := time.Date(2023, 1, 2, 3, 4, 0, 0, time.UTC)
	report := &models.Report{
		ID:          ptr(int64(5)),
		Title:       "Old",
		Date:        &date,
		Category:    &models.Category{ID: ptr(int64(99)), Name: "Archived"},
		Institution: &models.Institution{ID: ptr(int64(10)), InstanceName: "City Hall"},
	}

	require.NoError(t, te.Open(context.Background(), st, report))

	assert.Equal(t, "2023-01-02T03:04", st.Form().Date)
	categories := st.Categories()
	require.Len(t, categories, 3)
	assert.Equal(t, int64(99), *categories[0].ID)
	assert.Len(t, st.Institutions(), 1)
}

func TestLoadRelationshipsOptions_Error(t *testing.T) {
	te := newTestEditor(t)
	te.categories.err = errors.New("unavailable")
	st := NewState()

	err := te.LoadRelationshipsOptions(context.Background(), st)

	assert.ErrorContains(t, err, "could not load categories")
}

func TestLoadRelationshipsOptions_CategoryFailureKeepsInstitutions(t *testing.T) {
	te := newTestEditor(t)
	te.categories.err = errors.New("boom")
	te.institutions.delay = 50 * time.Millisecond
	st := NewState()

	err := te.LoadRelationshipsOptions(context.Background(), st)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not load categories: boom")
	assert.NotContains(t, err.Error(), "institutions")
	assert.Empty(t, st.Categories())
	require.Len(t, st.Institutions(), 1)
	assert.Equal(t, int64(10), *st.Institutions()[0].ID)
}

func TestLoadRelationshipsOptions_BothFail(t *testing.T) {
	te := newTestEditor(t)
	te.categories.err = errors.New("categories down")
	te.institutions.err = errors.New("institutions down")
	st := NewState()

	err := te.LoadRelationshipsOptions(context.Background(), st)

	assert.ErrorContains(t, err, "categories down")
	assert.ErrorContains(t, err, "institutions down")
}

func TestSave_CreatesNewReport(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()
	require.NoError(t, te.Open(context.Background(), st, nil))
	fillRequired(st)

	sub, err := te.Save(context.Background(), st)
	require.NoError(t, err)
	sub.Wait()

	require.Len(t, te.reports.created, 1)
	assert.Empty(t, te.reports.updated)
	sent := te.reports.created[0]
	require.NotNil(t, sent.Date)
	assert.True(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Equal(*sent.Date))

	assert.Equal(t, int64(100), *st.Form().ID)
	assert.False(t, st.IsSaving())
	assert.Equal(t, int32(1), te.navigator.backs.Load())
}

func TestSave_UpdatesExistingReport(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()
	require.NoError(t, te.Open(context.Background(), st, &models.Report{ID: ptr(int64(5))}))
	fillRequired(st)
	st.PatchForm(func(f *ReportForm) { f.Date = "2024-02-03T04:05" })

	sub, err := te.Save(context.Background(), st)
	require.NoError(t, err)
	sub.Wait()

	assert.Empty(t, te.reports.created)
	require.Len(t, te.reports.updated, 1)
	assert.Equal(t, int64(5), *te.reports.updated[0].ID)
}

func TestSave_ValidationFails(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()
	require.NoError(t, te.Open(context.Background(), st, nil))

	sub, err := te.Save(context.Background(), st)

	assert.Nil(t, sub)
	assert.ErrorContains(t, err, "Title")
	assert.False(t, st.IsSaving())
	assert.Empty(t, te.reports.created)
}

func TestSave_ErrorBroadcastsAlertAndResetsFlag(t *testing.T) {
	te := newTestEditor(t)
	te.reports.err = &client.HTTPError{Method: http.MethodPost, URL: "/api/reports", StatusCode: http.StatusInternalServerError}
	st := NewState()
	require.NoError(t, te.Open(context.Background(), st, nil))
	fillRequired(st)

	var alerts []AlertError
	var mu sync.Mutex
	unsubscribe := te.events.Subscribe(ErrorEvent, func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		alerts = append(alerts, e.Content.(AlertError))
	})
	defer unsubscribe()

	sub, err := te.Save(context.Background(), st)
	require.NoError(t, err)
	sub.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, alerts, 1)
	assert.Equal(t, "error.http", alerts[0].Key)
	assert.False(t, st.IsSaving())
	assert.Equal(t, int32(0), te.navigator.backs.Load())
	assert.Nil(t, st.Form().ID)
}

func TestCreateFromForm_InvalidDateIsOmitted(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()
	st.PatchForm(func(f *ReportForm) { f.Date = "not a date" })

	report := te.CreateFromForm(st)

	assert.Nil(t, report.Date)
}

func TestSetFileData(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()

	require.NoError(t, te.SetFileData(st, bytes.NewReader(pngHeader), true))
	assert.Equal(t, "image/png", st.Form().ImagesContentType)
	assert.Equal(t, "16 bytes", te.ByteSize(st))

	te.ClearInputImage(st)
	assert.Nil(t, st.Form().Images)
	assert.Empty(t, st.Form().ImagesContentType)
}

func TestSetFileData_NotAnImage(t *testing.T) {
	te := newTestEditor(t)
	st := NewState()
	var alert AlertError
	te.events.Subscribe(ErrorEvent, func(e Event) { alert = e.Content.(AlertError) })

	err := te.SetFileData(st, bytes.NewReader([]byte("plain text")), true)

	var loadErr *FileLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "not.image", loadErr.Key)
	assert.Equal(t, "not.image", alert.Key)
	assert.Contains(t, alert.Params["fileType"], "text/plain")
	assert.Nil(t, st.Form().Images)
}

func TestTrackByID(t *testing.T) {
	assert.Equal(t, int64(3), TrackCategoryByID(&models.Category{ID: ptr(int64(3))}))
	assert.Equal(t, int64(0), TrackInstitutionByID(&models.Institution{}))
}
