package logger_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/shared"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func initBuffer(opts ...logger.OptionFunc) *bytes.Buffer {
	buf := new(bytes.Buffer)
	logger.InitZap(append([]logger.OptionFunc{logger.OptionSetWriter(buf)}, opts...)...)
	return buf
}

func TestLog(t *testing.T) {
	buf := initBuffer()
	logger.Log(zapcore.InfoLevel, "testing log", "test_context", "test_scope")

	assert.Contains(t, buf.String(), `"message":"testing log"`)
	assert.Contains(t, buf.String(), `"context":"test_context"`)
	assert.Contains(t, buf.String(), `"scope":"test_scope"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestLogCtx(t *testing.T) {
	buf := initBuffer()
	ctx := shared.SetToContext(context.Background(), shared.ContextKeyRequestID, "req-1")
	logger.LogCtx(ctx, zapcore.ErrorLevel, "failed insert", "AccountRepoMongo-Insert")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLogIfError(t *testing.T) {
	buf := initBuffer()
	logger.LogIfError(io.EOF)
	logger.LogIfError(nil)

	assert.Contains(t, buf.String(), "EOF")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestLogWithField(t *testing.T) {
	buf := initBuffer()
	logger.LogWithField(zapcore.InfoLevel, map[string]interface{}{
		"message": "test log with fields",
		"status":  201,
	})

	assert.Contains(t, buf.String(), "test log with fields")
	assert.Contains(t, buf.String(), `"status":201`)
}

func TestOptionSetLevel(t *testing.T) {
	buf := initBuffer(logger.OptionSetLevel(zapcore.WarnLevel))
	logger.LogI("hidden")
	logger.LogE("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
