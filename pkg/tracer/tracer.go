package tracer

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/golangid/attendo/pkg/shared"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

const skipTracer shared.ContextKey = "skipTracer"

// Tracer for trace
type Tracer interface {
	Context() context.Context
	Tags() map[string]interface{}
	SetTag(key string, value interface{})
	SetError(err error)
	Log(key string, value interface{})
	Finish(additionalTags ...map[string]interface{})
}

type tracerImpl struct {
	ctx  context.Context
	span opentracing.Span
	tags map[string]interface{}
}

// StartTrace starting trace child span from parent span
func StartTrace(ctx context.Context, operationName string) Tracer {
	if shared.GetValueFromContext(ctx, skipTracer) != nil {
		return &noopTracer{ctx}
	}

	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		span, ctx = opentracing.StartSpanFromContext(ctx, operationName)
	} else {
		span = opentracing.GlobalTracer().StartSpan(operationName, opentracing.ChildOf(span.Context()))
		ctx = opentracing.ContextWithSpan(ctx, span)
	}
	return &tracerImpl{
		ctx:  ctx,
		span: span,
		tags: make(map[string]interface{}),
	}
}

// StartTraceWithContext starting trace child span from parent span, returning tracer and context
func StartTraceWithContext(ctx context.Context, operationName string) (Tracer, context.Context) {
	t := StartTrace(ctx, operationName)
	return t, t.Context()
}

// SkipTraceContext mark context so no span is created from it
func SkipTraceContext(ctx context.Context) context.Context {
	return shared.SetToContext(ctx, skipTracer, struct{}{})
}

// Context get active context
func (t *tracerImpl) Context() context.Context {
	return t.ctx
}

// Tags create tags in tracer span
func (t *tracerImpl) Tags() map[string]interface{} {
	return t.tags
}

// SetTag set single tag
func (t *tracerImpl) SetTag(key string, value interface{}) {
	t.tags[key] = value
}

// SetError set error in span
func (t *tracerImpl) SetError(err error) {
	if err == nil {
		return
	}
	ext.Error.Set(t.span, true)
	t.span.SetTag("error.value", err.Error())
	t.span.LogKV("stacktrace", string(debug.Stack()))
}

// Log key value in span
func (t *tracerImpl) Log(key string, value interface{}) {
	t.span.LogKV(key, toString(value))
}

// Finish trace with additional tags data, must in deferred function
func (t *tracerImpl) Finish(additionalTags ...map[string]interface{}) {
	defer t.span.Finish()

	for _, tags := range additionalTags {
		for k, v := range tags {
			t.tags[k] = v
		}
	}
	for k, v := range t.tags {
		t.span.SetTag(k, toString(v))
	}
}

func toString(v interface{}) (s string) {
	switch val := v.(type) {
	case error:
		if val != nil {
			s = val.Error()
		}
	case string:
		s = val
	case []byte:
		s = string(val)
	case int:
		s = strconv.Itoa(val)
	default:
		b, _ := json.Marshal(val)
		s = string(b)
	}
	return
}

// GetTraceID func
func GetTraceID(ctx context.Context) string {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return ""
	}

	traceID := fmt.Sprintf("%+v", span)
	splits := strings.Split(traceID, ":")
	if len(splits) > 0 {
		return splits[0]
	}

	return traceID
}

type noopTracer struct{ ctx context.Context }

func (n noopTracer) Context() context.Context                      { return n.ctx }
func (noopTracer) Tags() map[string]interface{}                    { return map[string]interface{}{} }
func (noopTracer) SetTag(key string, value interface{})            {}
func (noopTracer) SetError(err error)                              {}
func (noopTracer) Log(key string, value interface{})               {}
func (noopTracer) Finish(additionalTags ...map[string]interface{}) {}
