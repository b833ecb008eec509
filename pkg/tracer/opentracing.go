package tracer

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go/config"
)

const maxPacketSize = 65000

var traceDashboard string

// InitOpenTracing with jaeger agent and service name, returned closer must be closed on shutdown
func InitOpenTracing(agentHost, serviceName, environment string) (io.Closer, error) {
	if environment != "" {
		serviceName = fmt.Sprintf("%s-%s", serviceName, strings.ToLower(environment))
	}
	cfg := &config.Configuration{
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:            true,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  agentHost,
		},
		ServiceName: serviceName,
		Tags: []opentracing.Tag{
			{Key: "num_cpu", Value: runtime.NumCPU()},
			{Key: "go_version", Value: runtime.Version()},
		},
	}
	tracer, closer, err := cfg.NewTracer(config.MaxTagValueLength(math.MaxInt32))
	if err != nil {
		return nil, fmt.Errorf("cannot init opentracing connection: %w", err)
	}
	opentracing.SetGlobalTracer(tracer)

	if urlAgent, err := url.Parse("//" + agentHost); err == nil {
		traceDashboard = fmt.Sprintf("http://%s:16686/trace", urlAgent.Hostname())
	}
	return closer, nil
}

// GetTraceURL link to trace dashboard, empty if tracing disabled
func GetTraceURL(ctx context.Context) string {
	traceID := GetTraceID(ctx)
	if traceDashboard == "" || traceID == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", traceDashboard, traceID)
}
