package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/shared"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRequestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger.InitZap(logger.OptionSetWriter(buf))
	defer logger.InitZap()

	e := echo.New()
	mw := HTTPRequestLogger(map[string]struct{}{"/metrics": {}})

	t.Run("Testcase #1: use inbound request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/get-events", nil)
		req.Header.Set(helper.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()

		handler := mw(func(c echo.Context) error {
			assert.Equal(t, "req-123", shared.GetRequestIDFromContext(c.Request().Context()))
			return c.JSON(http.StatusOK, []string{})
		})
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, "req-123", rec.Header().Get(helper.HeaderXRequestID))
		assert.Contains(t, buf.String(), `"request_id":"req-123"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("Testcase #2: generate request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/verify-student", nil)
		rec := httptest.NewRecorder()

		handler := mw(func(c echo.Context) error {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Student not found!"})
		})
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Len(t, rec.Header().Get(helper.HeaderXRequestID), 36)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("Testcase #3: skipped path is not logged", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()

		handler := mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Empty(t, buf.String())
	})
}
