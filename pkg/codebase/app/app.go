package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangid/attendo/config/env"
	restserver "github.com/golangid/attendo/pkg/codebase/app/rest_server"
	"github.com/golangid/attendo/pkg/codebase/factory"
)

// App service
type App struct {
	servers []factory.AppServerFactory
}

// New service app, rest server is configured from base environment
func New(service factory.ServiceFactory) *App {
	log.Printf("Starting \x1b[32;1m%s\x1b[0m service\n\n", service.Name())

	deps := service.GetDependency()
	opts := []restserver.OptionFunc{
		restserver.SetHTTPPort(env.BaseEnv().HTTPPort),
		restserver.SetDebugMode(env.BaseEnv().DebugMode),
		restserver.SetCORS(
			env.BaseEnv().CORSAllowOrigins, env.BaseEnv().CORSAllowMethods,
			env.BaseEnv().CORSAllowHeaders, env.BaseEnv().CORSAllowCredential,
		),
	}
	if db := deps.GetMongoDatabase(); db != nil {
		opts = append(opts, restserver.AddHealthChecker("mongodb", db.Health))
	}
	if pool := deps.GetRedisPool(); pool != nil {
		opts = append(opts, restserver.AddHealthChecker("redis", pool.Health))
	}

	return NewWithServer(restserver.NewServer(service, opts...))
}

// NewWithServer app with explicit server list
func NewWithServer(servers ...factory.AppServerFactory) *App {
	return &App{servers: servers}
}

// Run start app, block until SIGINT/SIGTERM or one server failed
func (a *App) Run() {
	if len(a.servers) == 0 {
		panic("No server running")
	}

	errServe := make(chan error, len(a.servers))
	for _, server := range a.servers {
		go func(srv factory.AppServerFactory) {
			defer func() {
				if r := recover(); r != nil {
					errServe <- fmt.Errorf("%s: %v", srv.Name(), r)
				}
			}()
			srv.Serve()
		}(server)
	}

	quitSignal := make(chan os.Signal, 1)
	signal.Notify(quitSignal, os.Interrupt, syscall.SIGTERM)

	select {
	case e := <-errServe:
		a.shutdown()
		panic(e)
	case <-quitSignal:
		a.shutdown()
	}
}

// graceful shutdown all server, server still processing request after timeout is forced to stop
func (a *App) shutdown() {
	fmt.Println("\x1b[34;1mGracefully shutdown...\x1b[0m")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	for _, server := range a.servers {
		server.Shutdown(ctx)
	}
}
