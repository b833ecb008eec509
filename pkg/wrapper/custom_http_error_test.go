package wrapper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestCustomHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "Testcase #1: route not found",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Resource \"GET /unknown\" not found"}`,
		},
		{
			name:     "Testcase #2: method not allowed",
			err:      echo.ErrMethodNotAllowed,
			wantCode: http.StatusMethodNotAllowed,
			wantBody: `{"message":"Method Not Allowed"}`,
		},
		{
			name:     "Testcase #3: plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Internal Server Error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			CustomHTTPErrorHandler(tt.err, c)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
