package dependency

import (
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/credential"
	"github.com/golangid/attendo/pkg/locker"
	"github.com/golangid/attendo/pkg/metrics"
)

// Dependency base
type Dependency interface {
	GetMiddleware() interfaces.Middleware
	GetValidator() interfaces.Validator
	GetMongoDatabase() interfaces.MongoDatabase
	GetRedisPool() interfaces.RedisPool
	GetLocker() locker.Locker
	GetHasher() credential.Hasher
	GetMetrics() *metrics.Metrics
}

// Option func type
type Option func(*deps)

type deps struct {
	mw        interfaces.Middleware
	validator interfaces.Validator
	mongoDB   interfaces.MongoDatabase
	redisPool interfaces.RedisPool
	locker    locker.Locker
	hasher    credential.Hasher
	metrics   *metrics.Metrics
}

// SetMiddleware option func
func SetMiddleware(mw interfaces.Middleware) Option {
	return func(d *deps) {
		d.mw = mw
	}
}

// SetValidator option func
func SetValidator(validator interfaces.Validator) Option {
	return func(d *deps) {
		d.validator = validator
	}
}

// SetMongoDatabase option func
func SetMongoDatabase(db interfaces.MongoDatabase) Option {
	return func(d *deps) {
		d.mongoDB = db
	}
}

// SetRedisPool option func
func SetRedisPool(db interfaces.RedisPool) Option {
	return func(d *deps) {
		d.redisPool = db
	}
}

// SetLocker option func
func SetLocker(lock locker.Locker) Option {
	return func(d *deps) {
		d.locker = lock
	}
}

// SetHasher option func
func SetHasher(hasher credential.Hasher) Option {
	return func(d *deps) {
		d.hasher = hasher
	}
}

// SetMetrics option func
func SetMetrics(m *metrics.Metrics) Option {
	return func(d *deps) {
		d.metrics = m
	}
}

// InitDependency constructor, locker fallback to noop locker
func InitDependency(opts ...Option) Dependency {
	opt := new(deps)
	for _, o := range opts {
		o(opt)
	}
	if opt.locker == nil {
		opt.locker = locker.NoopLocker{}
	}
	return opt
}

func (d *deps) GetMiddleware() interfaces.Middleware {
	return d.mw
}
func (d *deps) GetValidator() interfaces.Validator {
	return d.validator
}
func (d *deps) GetMongoDatabase() interfaces.MongoDatabase {
	return d.mongoDB
}
func (d *deps) GetRedisPool() interfaces.RedisPool {
	return d.redisPool
}
func (d *deps) GetLocker() locker.Locker {
	return d.locker
}
func (d *deps) GetHasher() credential.Hasher {
	return d.hasher
}
func (d *deps) GetMetrics() *metrics.Metrics {
	return d.metrics
}
