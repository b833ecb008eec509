package restserver

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"

	"github.com/golangid/attendo/pkg/codebase/factory"
	"github.com/golangid/attendo/pkg/codebase/factory/constant"
	"github.com/golangid/attendo/pkg/codebase/factory/dependency"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/metrics"
	"github.com/golangid/attendo/pkg/middleware"
)

type pingHandler struct{}

func (pingHandler) Mount(root *echo.Group) {
	root.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "pong"})
	})
}

type testModule struct{}

func (testModule) RestHandler() interfaces.EchoRestHandler {
	return pingHandler{}
}

func (testModule) Name() constant.Module {
	return "ping"
}

type testService struct {
	deps dependency.Dependency
}

func (s testService) GetDependency() dependency.Dependency {
	return s.deps
}

func (s testService) GetModules() []factory.ModuleFactory {
	return []factory.ModuleFactory{testModule{}}
}

func (s testService) Name() constant.Service {
	return constant.Attendo
}

func newTestServer(m *metrics.Metrics, opts ...OptionFunc) *restServer {
	deps := dependency.InitDependency(
		dependency.SetMiddleware(middleware.NewMiddleware("user", "pass")),
		dependency.SetMetrics(m),
	)
	opts = append(opts, SetDebugMode(false))
	return NewServer(testService{deps: deps}, opts...).(*restServer)
}

func serve(srv *restServer, req *http.Request) *httptest.ResponseRecorder {
	res := httptest.NewRecorder()
	srv.serverEngine.ServeHTTP(res, req)
	return res
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestRestServer_healthz(t *testing.T) {
	t.Run("Testcase #1: Positive", func(t *testing.T) {
		srv := newTestServer(nil, AddHealthChecker("mongodb", func(ctx context.Context) error { return nil }))
		res := serve(srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), `"mongodb":"ok"`)
		assert.Contains(t, res.Body.String(), "Service attendo up and running")
	})

	t.Run("Testcase #2: Negative, backend down", func(t *testing.T) {
		srv := newTestServer(nil, AddHealthChecker("mongodb", func(ctx context.Context) error { return errors.New("no reachable servers") }))
		res := serve(srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, res.Code)
		assert.Contains(t, res.Body.String(), "no reachable servers")
	})
}

func TestRestServer_basicAuthEndpoint(t *testing.T) {
	srv := newTestServer(metrics.NewMetrics("attendo"))

	tests := []struct {
		name, path, authorization string
		wantRespCode              int
	}{
		{name: "Testcase #1: Negative, memstats without credential", path: "/memstats", wantRespCode: http.StatusUnauthorized},
		{name: "Testcase #2: Negative, metrics with wrong credential", path: "/metrics", authorization: basicAuth("user", "wrong"), wantRespCode: http.StatusUnauthorized},
		{name: "Testcase #3: Positive, memstats", path: "/memstats", authorization: basicAuth("user", "pass"), wantRespCode: http.StatusOK},
		{name: "Testcase #4: Positive, metrics", path: "/metrics", authorization: basicAuth("user", "pass"), wantRespCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}
			res := serve(srv, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestServer_withoutMetrics(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set(echo.HeaderAuthorization, basicAuth("user", "pass"))
	res := serve(srv, req)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestRestServer_moduleRoute(t *testing.T) {
	srv := newTestServer(metrics.NewMetrics("attendo"))

	res := serve(srv, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"message":"pong"}`, res.Body.String())
}

func TestRestServer_cors(t *testing.T) {
	srv := newTestServer(nil, SetCORS([]string{"http://localhost:8080"}, nil, nil, false))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	res := serve(srv, req)
	assert.Equal(t, "http://localhost:8080", res.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	res = serve(srv, req)
	assert.Empty(t, res.Header().Get("Access-Control-Allow-Origin"))
}

func TestRestServer_Name(t *testing.T) {
	assert.Equal(t, "rest", newTestServer(nil).Name())
}
