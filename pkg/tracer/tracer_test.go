package tracer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/golangid/attendo/pkg/helper"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/labstack/echo"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTrace(t *testing.T) {
	mt := mocktracer.New()
	opentracing.SetGlobalTracer(mt)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	trace, ctx := StartTraceWithContext(context.Background(), "AttendanceUsecase:Verify")
	trace.SetTag("unique_number", "123456")
	trace.SetError(errors.New("not found"))
	trace.Finish(map[string]interface{}{"attendance": 2})

	child := StartTrace(ctx, "ParticipantRepoMongo:IncrementAttendance")
	child.Finish()

	spans := mt.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "AttendanceUsecase:Verify", spans[0].OperationName)
	assert.Equal(t, "123456", spans[0].Tag("unique_number"))
	assert.Equal(t, "2", spans[0].Tag("attendance"))
	assert.Equal(t, true, spans[0].Tag("error"))
	assert.Equal(t, spans[0].SpanContext.SpanID, spans[1].ParentID)
}

func TestSkipTraceContext(t *testing.T) {
	mt := mocktracer.New()
	opentracing.SetGlobalTracer(mt)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	ctx := SkipTraceContext(context.Background())
	trace := StartTrace(ctx, "skipped")
	trace.Finish()

	assert.Empty(t, mt.FinishedSpans())
	assert.Equal(t, ctx, trace.Context())
}

func TestEchoRestTracerMiddleware(t *testing.T) {
	mt := mocktracer.New()
	opentracing.SetGlobalTracer(mt)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	e := echo.New()
	mw := EchoRestTracerMiddleware(logger.NewMasker(), map[string]struct{}{"/metrics": {}})
	handler := mw(func(c echo.Context) error {
		assert.NotNil(t, opentracing.SpanFromContext(c.Request().Context()))
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid password"})
	})

	t.Run("Testcase #1: body is recorded with password masked", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@x.com","password":"pw1"}`))
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))

		spans := mt.FinishedSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "POST /login", spans[0].OperationName)
		assert.NotContains(t, spans[0].Tag("request.body"), "pw1")
		assert.Contains(t, spans[0].Tag("response.body"), "Invalid password")
		assert.Contains(t, rec.Body.String(), "Invalid password")
	})

	t.Run("Testcase #2: disabled by header", func(t *testing.T) {
		mt.Reset()
		req := httptest.NewRequest(http.MethodGet, "/get-events", nil)
		req.Header.Set(helper.HeaderDisableTrace, "true")
		rec := httptest.NewRecorder()
		skipHandler := mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, skipHandler(e.NewContext(req, rec)))
		assert.Empty(t, mt.FinishedSpans())
	})

	t.Run("Testcase #3: body read error reaches handler", func(t *testing.T) {
		mt.Reset()
		errRead := errors.New("connection reset")
		req := httptest.NewRequest(http.MethodPost, "/join-event", iotest.ErrReader(errRead))
		rec := httptest.NewRecorder()
		readHandler := mw(func(c echo.Context) error {
			_, err := io.ReadAll(c.Request().Body)
			assert.ErrorIs(t, err, errRead)
			return c.NoContent(http.StatusInternalServerError)
		})
		require.NoError(t, readHandler(e.NewContext(req, rec)))

		spans := mt.FinishedSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, "connection reset", spans[0].Tag("request.body.error"))
		assert.Equal(t, true, spans[0].Tag("error"))
	})
}
