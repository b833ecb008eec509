package tracer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/labstack/echo"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

type httpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *httpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}
func (w *httpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// failedBody replays a request body read error to the next reader
type failedBody struct{ err error }

func (b failedBody) Read([]byte) (int, error) { return 0, b.err }

// EchoRestTracerMiddleware for wrap from http inbound (request from client),
// request and response body are recorded with sensitive field masked
func EchoRestTracerMiddleware(masker logger.Masker, excludePath map[string]struct{}) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if _, ok := excludePath[req.URL.Path]; ok {
				return next(c)
			}
			if isDisableTrace, _ := strconv.ParseBool(req.Header.Get(helper.HeaderDisableTrace)); isDisableTrace {
				c.SetRequest(req.WithContext(SkipTraceContext(req.Context())))
				return next(c)
			}

			globalTracer := opentracing.GlobalTracer()
			operationName := fmt.Sprintf("%s %s", req.Method, req.URL.Path)

			var span opentracing.Span
			var ctx context.Context
			if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header)); err != nil {
				span, ctx = opentracing.StartSpanFromContext(req.Context(), operationName)
			} else {
				span = globalTracer.StartSpan(operationName, ext.RPCServerOption(spanCtx))
				ctx = opentracing.ContextWithSpan(req.Context(), span)
			}
			ext.SpanKindRPCServer.Set(span)

			body, readErr := io.ReadAll(req.Body)
			if len(body) < maxPacketSize {
				span.SetTag("request.body", string(masker.Mask(body)))
			} else {
				span.SetTag("request.body.size", len(body))
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body)) // reuse body
			if readErr != nil {
				ext.Error.Set(span, true)
				span.SetTag("request.body.error", readErr.Error())
				req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), failedBody{err: readErr}))
			}

			ext.HTTPUrl.Set(span, req.Host+req.RequestURI)
			ext.HTTPMethod.Set(span, req.Method)

			defer func() {
				span.Finish()
				if traceURL := GetTraceURL(ctx); traceURL != "" {
					logger.LogGreen("rest_server > trace_url: " + traceURL)
				}
			}()

			resBody := new(bytes.Buffer)
			originWriter := c.Response().Writer
			c.Response().Writer = &httpResponseWriter{Writer: io.MultiWriter(originWriter, resBody), ResponseWriter: originWriter}
			defer func() { c.Response().Writer = originWriter }()
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			statusCode := c.Response().Status
			ext.HTTPStatusCode.Set(span, uint16(statusCode))
			if statusCode >= http.StatusInternalServerError {
				ext.Error.Set(span, true)
			}

			if resBody.Len() < maxPacketSize {
				span.SetTag("response.body", resBody.String())
			} else {
				span.SetTag("response.body.size", resBody.Len())
			}
			return err
		}
	}
}
