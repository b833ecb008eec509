package resthandler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicDir(t *testing.T) string {
	dir := t.TempDir()
	for _, file := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte("<html>"+file+"</html>"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "style.css"), []byte("body{}"), 0o644))
	return dir
}

func TestRestHandler_Mount(t *testing.T) {
	e := echo.New()
	NewRestHandler(newPublicDir(t)).Mount(e.Group(""))

	tests := []struct {
		name, path   string
		wantRespCode int
		wantBody     string
	}{
		{name: "Testcase #1: Positive, root serve signup page", path: "/", wantRespCode: 200, wantBody: "<html>sign.html</html>"},
		{name: "Testcase #2: Positive, events serve past event page", path: "/events", wantRespCode: 200, wantBody: "<html>past-event.html</html>"},
		{name: "Testcase #3: Positive, attendance page", path: "/attendance", wantRespCode: 200, wantBody: "<html>attendance.html</html>"},
		{name: "Testcase #4: Positive, static asset", path: "/css/style.css", wantRespCode: 200, wantBody: "body{}"},
		{name: "Testcase #5: Positive, html file by name", path: "/verify.html", wantRespCode: 200, wantBody: "<html>verify.html</html>"},
		{name: "Testcase #6: Negative, missing file", path: "/missing.html", wantRespCode: 404},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			res := httptest.NewRecorder()
			e.ServeHTTP(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, res.Body.String())
			}
		})
	}
}

func TestRestHandler_missingPage(t *testing.T) {
	e := echo.New()
	NewRestHandler(t.TempDir()).Mount(e.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/teacher", nil)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
