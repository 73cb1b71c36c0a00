package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordRejection(t *testing.T) {
	m := New()

	m.RecordRejection("CLASS_FULL")
	m.RecordRejection("CLASS_FULL")
	m.RecordRejection("OVERPAYMENT")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rejections.WithLabelValues("CLASS_FULL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("OVERPAYMENT")))
}

func TestMetrics_Handler_ExposesRequests(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/classes", http.StatusOK, 20*time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gymops_http_requests_total{method="GET",path="/api/classes",status="200"} 1`)
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a, b := New(), New()

	a.RecordRejection("NOT_FOUND")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.rejections.WithLabelValues("NOT_FOUND")))
}
