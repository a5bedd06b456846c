package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"golibrary/internal/pkg/metrics"
)

func TestObserve_IncrementsCounter(t *testing.T) {
	m := metrics.New()

	m.Observe(http.MethodGet, "/api/books/{id}", http.StatusOK, 20*time.Millisecond)
	m.Observe(http.MethodGet, "/api/books/{id}", http.StatusOK, 30*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/books/{id}", "200")))
}

func TestHandler_ExposesHTTPMetrics(t *testing.T) {
	m := metrics.New()
	m.Observe(http.MethodPost, "/api/books", http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `golibrary_http_requests_total{method="POST",route="/api/books",status="201"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
