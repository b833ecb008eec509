package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golangid/attendo/pkg/credential"
	"github.com/golangid/attendo/pkg/locker"
	"github.com/golangid/attendo/pkg/metrics"
	mockinterfaces "github.com/golangid/attendo/pkg/mocks/codebase/interfaces"
)

func TestInitDependency(t *testing.T) {
	t.Run("Testcase #1: Positive, default locker", func(t *testing.T) {
		deps := InitDependency()
		assert.Equal(t, locker.NoopLocker{}, deps.GetLocker())
		assert.Nil(t, deps.GetMetrics())
		assert.Nil(t, deps.GetMongoDatabase())
		assert.Nil(t, deps.GetRedisPool())
	})

	t.Run("Testcase #2: Positive, with option", func(t *testing.T) {
		mw := &mockinterfaces.Middleware{}
		validator := &mockinterfaces.Validator{}
		hasher := credential.NewBcryptHasher(4)
		m := metrics.NewMetrics("test")

		deps := InitDependency(
			SetMiddleware(mw), SetValidator(validator),
			SetHasher(hasher), SetMetrics(m),
		)
		assert.Equal(t, mw, deps.GetMiddleware())
		assert.Equal(t, validator, deps.GetValidator())
		assert.Equal(t, hasher, deps.GetHasher())
		assert.Equal(t, m, deps.GetMetrics())
	})
}
