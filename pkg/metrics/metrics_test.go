package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := NewMetrics("attendo")
	m.ObserveJoin(ResultCreated)
	m.ObserveJoin(ResultExisting)
	m.ObserveJoin(ResultExisting)
	m.ObserveVerify(ResultNotFound)
	m.ObserveSignup(ResultConflict)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.participantJoin.WithLabelValues(ResultCreated)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.participantJoin.WithLabelValues(ResultExisting)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.attendanceVerify.WithLabelValues(ResultNotFound)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.accountSignup.WithLabelValues(ResultConflict)))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveVerify(ResultVerified) })
}

func TestEchoMiddleware(t *testing.T) {
	m := NewMetrics("attendo")
	e := echo.New()
	e.Use(m.EchoMiddleware())
	e.GET("/get-events", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-events", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/get-events", "200")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "attendo_http_requests_total"))
}
