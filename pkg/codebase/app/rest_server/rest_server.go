package restserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo"
	"github.com/rs/cors"

	"github.com/golangid/attendo/config/env"
	"github.com/golangid/attendo/pkg/codebase/factory"
	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/middleware"
	"github.com/golangid/attendo/pkg/tracer"
	"github.com/golangid/attendo/pkg/wrapper"
)

type restServer struct {
	opt          option
	serverEngine *echo.Echo
	service      factory.ServiceFactory
}

// NewServer create new REST server
func NewServer(service factory.ServiceFactory, opts ...OptionFunc) factory.AppServerFactory {
	server := &restServer{
		opt:          getDefaultOption(),
		serverEngine: echo.New(),
		service:      service,
	}
	for _, opt := range opts {
		opt(&server.opt)
	}

	server.serverEngine.HideBanner = true
	server.serverEngine.HidePort = true
	server.serverEngine.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler
	server.mount()

	return server
}

func (h *restServer) mount() {
	deps := h.service.GetDependency()
	m := deps.GetMetrics()

	h.serverEngine.Pre(echo.WrapMiddleware(cors.New(h.opt.cors).Handler))
	h.serverEngine.Use(m.EchoMiddleware())

	h.serverEngine.GET("/healthz", echo.WrapHandler(
		wrapper.HTTPHandlerHealth(string(h.service.Name()), env.BaseEnv().StartAt, h.opt.healthCheckers),
	))
	basicAuth := deps.GetMiddleware().HTTPBasicAuth(false)
	h.serverEngine.GET("/memstats", echo.WrapHandler(http.HandlerFunc(wrapper.HTTPHandlerMemstats)), basicAuth)
	if m != nil {
		h.serverEngine.GET("/metrics", echo.WrapHandler(m.Handler()), basicAuth)
	}

	restRootPath := h.serverEngine.Group("",
		tracer.EchoRestTracerMiddleware(h.opt.masker, MiddlewareExcludeURLPath),
		middleware.HTTPRequestLogger(MiddlewareExcludeURLPath),
	)
	for _, module := range h.service.GetModules() {
		if handler := module.RestHandler(); handler != nil {
			handler.Mount(restRootPath)
		}
	}

	if h.opt.debugMode {
		h.printRoutes()
	}
}

func (h *restServer) printRoutes() {
	var routes strings.Builder
	httpRoutes := h.serverEngine.Routes()
	sort.Slice(httpRoutes, func(i, j int) bool {
		if httpRoutes[i].Path == httpRoutes[j].Path {
			return httpRoutes[i].Method < httpRoutes[j].Method
		}
		return httpRoutes[i].Path < httpRoutes[j].Path
	})
	for _, route := range httpRoutes {
		if !strings.Contains(route.Name, "(*Group)") {
			routes.WriteString(helper.StringGreen(fmt.Sprintf("[REST-ROUTE] %-6s %-30s --> %s\n", route.Method, route.Path, route.Name)))
		}
	}
	fmt.Print(routes.String())
}

func (h *restServer) Serve() {
	port := fmt.Sprintf(":%d", h.opt.httpPort)
	fmt.Printf("\x1b[34;1m⇨ REST server run at port [::]%s\x1b[0m\n\n", port)
	if err := h.serverEngine.Start(port); err != nil {
		switch e := err.(type) {
		case *net.OpError:
			panic(e)
		}
	}
}

func (h *restServer) Shutdown(ctx context.Context) {
	deferFunc := logger.LogWithDefer("Stopping REST HTTP server...")
	defer deferFunc()

	if err := h.serverEngine.Shutdown(ctx); err != nil {
		logger.LogE(err.Error())
	}
}

func (h *restServer) Name() string {
	return "rest"
}
