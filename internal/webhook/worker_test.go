package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/service_desk/internal/config"
	"github.com/shenikar/service_desk/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, url string) (*Worker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	w := NewWorker(nil, logger, cfg)
	var sleeps []time.Duration
	w.sleep = func(_ context.Context, d time.Duration) { sleeps = append(sleeps, d) }
	return w, &sleeps
}

func testPayload(t *testing.T) (ReportEvent, string) {
	id := int64(7)
	event := NewReportEvent(EventReportCreated, &models.Report{ID: &id, Title: "Pothole"}, time.Now())
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(data)
}

func TestProcessEvent_DeliversSignedPayload(t *testing.T) {
	var gotSignature string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get(SignatureHeader)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	worker, sleeps := newTestWorker(t, srv.URL)
	event, payload := testPayload(t)

	ok := worker.processEvent(context.Background(), event, payload)

	require.True(t, ok)
	assert.Equal(t, payload, string(gotBody))
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotSignature)
	assert.Empty(t, *sleeps)
	assert.Equal(t, int64(7), event.ReportID)
}

func TestProcessEvent_RetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker, sleeps := newTestWorker(t, srv.URL)
	event, payload := testPayload(t)

	ok := worker.processEvent(context.Background(), event, payload)

	require.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, *sleeps)
}

func TestProcessEvent_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker, _ := newTestWorker(t, srv.URL)
	event, payload := testPayload(t)

	assert.False(t, worker.processEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessEvent_LastAttemptDoesNotAnnounceRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	worker, sleeps := newTestWorker(t, srv.URL)
	hook := test.NewLocal(worker.logger)
	event, payload := testPayload(t)

	require.False(t, worker.processEvent(context.Background(), event, payload))

	var retries, failures int
	for _, entry := range hook.AllEntries() {
		switch {
		case strings.HasPrefix(entry.Message, "Webhook delivery failed. Retrying"):
			retries++
			assert.NotContains(t, entry.Message, "Retries left: 0")
		case entry.Message == "Webhook delivery failed.":
			failures++
		}
	}
	assert.Equal(t, 2, retries)
	assert.Equal(t, 1, failures)
	assert.Len(t, *sleeps, 2)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestProcessEvent_NoURL(t *testing.T) {
	worker, _ := newTestWorker(t, "")
	event, payload := testPayload(t)

	assert.False(t, worker.processEvent(context.Background(), event, payload))
}
