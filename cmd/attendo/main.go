package main

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/golangid/attendo/api/jsonschema"
	"github.com/golangid/attendo/config"
	"github.com/golangid/attendo/config/env"
	service "github.com/golangid/attendo/internal"
	"github.com/golangid/attendo/pkg/codebase/app"
	"github.com/golangid/attendo/pkg/codebase/factory/dependency"
	"github.com/golangid/attendo/pkg/credential"
	"github.com/golangid/attendo/pkg/locker"
	"github.com/golangid/attendo/pkg/metrics"
	"github.com/golangid/attendo/pkg/middleware"
	"github.com/golangid/attendo/pkg/shared/repository"
	"github.com/golangid/attendo/pkg/validator"
)

const (
	serviceName = "attendo"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Failed to start %s service: %v\n", serviceName, r)
			fmt.Printf("Stack trace: \n%s\n", debug.Stack())
		}
	}()

	cfg := config.Init(serviceName)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cfg.Exit(ctx)
	}()

	repoMongo := repository.NewRepositoryMongo(cfg.Mongo.ReadDB(), cfg.Mongo.WriteDB())
	ctx, cancel := context.WithTimeout(context.Background(), env.BaseEnv().LoadConfigTimeout)
	err := repoMongo.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		panic(fmt.Errorf("Failed ensure mongo indexes: %v", err))
	}

	v, err := validator.NewValidator(jsonschema.FS)
	if err != nil {
		panic(err)
	}

	opts := []dependency.Option{
		dependency.SetMiddleware(middleware.NewMiddleware(env.BaseEnv().BasicAuthUsername, env.BaseEnv().BasicAuthPassword)),
		dependency.SetValidator(v),
		dependency.SetMongoDatabase(cfg.Mongo),
		dependency.SetHasher(credential.NewBcryptHasher(env.BaseEnv().BcryptCost)),
		dependency.SetMetrics(metrics.NewMetrics(serviceName)),
	}
	if cfg.Redis != nil {
		opts = append(opts,
			dependency.SetRedisPool(cfg.Redis),
			dependency.SetLocker(locker.NewRedisLocker(cfg.Redis.WritePool(), locker.WithPrefix(serviceName))),
		)
	}

	srv := service.NewService(dependency.InitDependency(opts...), repoMongo, env.BaseEnv().PublicDir)
	app.New(srv).Run()
}
