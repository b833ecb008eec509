package middleware

import (
	"time"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/zap/zapcore"
)

// HTTPRequestLogger assign request id (taken from X-Request-Id or generated) and write one log line per request
func HTTPRequestLogger(skipPath map[string]struct{}) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(helper.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(helper.HeaderXRequestID, requestID)
			c.SetRequest(req.WithContext(shared.SetToContext(req.Context(), shared.ContextKeyRequestID, requestID)))

			if _, ok := skipPath[req.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := zapcore.InfoLevel
			switch {
			case status >= 500:
				level = zapcore.ErrorLevel
			case status >= 400:
				level = zapcore.WarnLevel
			}
			logger.LogWithField(level, map[string]interface{}{
				"message":    "http request",
				"request_id": requestID,
				"remote_ip":  c.RealIP(),
				"method":     req.Method,
				"uri":        req.RequestURI,
				"status":     status,
				"latency":    time.Since(start).String(),
				"bytes_out":  c.Response().Size,
			})
			return nil
		}
	}
}
