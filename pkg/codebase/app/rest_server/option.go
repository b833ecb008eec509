package restserver

import (
	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/wrapper"
	"github.com/rs/cors"
)

type (
	option struct {
		httpPort       uint16
		debugMode      bool
		cors           cors.Options
		masker         logger.Masker
		healthCheckers map[string]wrapper.HealthChecker
	}

	// OptionFunc type
	OptionFunc func(*option)
)

var (
	// MiddlewareExcludeURLPath path skipped by tracer and request logger
	MiddlewareExcludeURLPath = map[string]struct{}{"/healthz": {}, "/metrics": {}, "/memstats": {}, "/favicon.ico": {}}
)

func getDefaultOption() option {
	return option{
		httpPort:  3000,
		debugMode: true,
		cors: cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{helper.HeaderXRequestID},
		},
		masker:         logger.NewMasker(),
		healthCheckers: map[string]wrapper.HealthChecker{},
	}
}

// SetHTTPPort option func
func SetHTTPPort(port uint16) OptionFunc {
	return func(o *option) {
		o.httpPort = port
	}
}

// SetDebugMode option func, print all registered route when true
func SetDebugMode(debugMode bool) OptionFunc {
	return func(o *option) {
		o.debugMode = debugMode
	}
}

// SetCORS option func
func SetCORS(allowOrigins, allowMethods, allowHeaders []string, allowCredential bool) OptionFunc {
	return func(o *option) {
		if len(allowOrigins) > 0 {
			o.cors.AllowedOrigins = allowOrigins
		}
		if len(allowMethods) > 0 {
			o.cors.AllowedMethods = allowMethods
		}
		if len(allowHeaders) > 0 {
			o.cors.AllowedHeaders = allowHeaders
		}
		o.cors.AllowCredentials = allowCredential
	}
}

// SetMasker option func, masker for request body recorded in trace
func SetMasker(masker logger.Masker) OptionFunc {
	return func(o *option) {
		o.masker = masker
	}
}

// AddHealthChecker option func
func AddHealthChecker(name string, checker wrapper.HealthChecker) OptionFunc {
	return func(o *option) {
		o.healthCheckers[name] = checker
	}
}
