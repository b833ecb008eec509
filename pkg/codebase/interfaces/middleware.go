package interfaces

import (
	"context"

	"github.com/labstack/echo"
)

// Middleware abstraction
type Middleware interface {
	Basic(ctx context.Context, key string) error

	HTTPMiddleware
}

// HTTPMiddleware interface, common middleware for http handler
type HTTPMiddleware interface {
	HTTPBasicAuth(showAlert bool) echo.MiddlewareFunc
}
