package config

import (
	"context"
	"fmt"
	"io"

	"github.com/golangid/attendo/config/database"
	"github.com/golangid/attendo/config/env"
	"github.com/golangid/attendo/pkg/logger"
	"github.com/golangid/attendo/pkg/tracer"
)

// Config app
type Config struct {
	Mongo *database.MongoInstance
	// Redis is nil when REDIS_WRITE_DSN is not set
	Redis *database.RedisInstance

	tracerCloser io.Closer
}

// Init app config, connect all backend in LOAD_CONFIG_TIMEOUT
func Init(serviceName string) *Config {
	env.Load(serviceName)
	logger.SetDebugMode(env.BaseEnv().DebugMode)

	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	defer cancel()

	cfgChan := make(chan *Config)
	errConnect := make(chan error)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errConnect <- fmt.Errorf("%v", r)
			}
			close(cfgChan)
			close(errConnect)
		}()

		cfg, err := connect(ctx, env.BaseEnv())
		if err != nil {
			errConnect <- err
			return
		}
		cfgChan <- cfg
	}()

	// with timeout to init configuration
	select {
	case cfg := <-cfgChan:
		return cfg
	case <-ctx.Done():
		panic(fmt.Errorf("Timeout to init configuration: %v", ctx.Err()))
	case err := <-errConnect:
		panic(fmt.Errorf("Failed init configuration :=> %v", err))
	}
}

func connect(ctx context.Context, e env.Env) (cfg *Config, err error) {
	cfg = new(Config)

	if e.JaegerTracingHost != "" {
		cfg.tracerCloser, err = tracer.InitOpenTracing(e.JaegerTracingHost, e.ServiceName, e.Environment)
		if err != nil {
			return nil, err
		}
	}

	cfg.Mongo, err = database.InitMongoDB(ctx, e.DbMongoWriteHost, e.DbMongoReadHost, e.DbMongoDatabase)
	if err != nil {
		return nil, err
	}

	if e.DbRedisWriteDSN != "" {
		cfg.Redis, err = database.InitRedis(ctx, e.DbRedisWriteDSN, e.DbRedisReadDSN)
		if err != nil {
			cfg.Mongo.Disconnect(ctx)
			return nil, err
		}
	}
	return cfg, nil
}

// Exit close all connection
func (c *Config) Exit(ctx context.Context) {
	if c.Redis != nil {
		logger.LogIfError(c.Redis.Disconnect(ctx))
	}
	if c.Mongo != nil {
		logger.LogIfError(c.Mongo.Disconnect(ctx))
	}
	if c.tracerCloser != nil {
		logger.LogIfError(c.tracerCloser.Close())
	}
	logger.Sync()
}
