package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/golangid/attendo/pkg/wrapper"
	"github.com/labstack/echo"
)

const (
	// Basic constanta
	Basic = "basic"
)

// Basic validate base64 encoded "username:password", empty configured credential reject every request
func (m *Middleware) Basic(ctx context.Context, key string) error {

	isValid := func() bool {
		if m.username == "" && m.password == "" {
			return false
		}

		data, err := base64.StdEncoding.DecodeString(key)
		if err != nil {
			return false
		}

		username, password, ok := strings.Cut(string(data), ":")
		if !ok {
			return false
		}

		return subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1 &&
			subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	}

	if !isValid() {
		return errors.New("Unauthorized")
	}

	return nil
}

// HTTPBasicAuth http basic auth middleware
func (m *Middleware) HTTPBasicAuth(showAlert bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {

			if showAlert {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm=""`)
			}

			authorization := c.Request().Header.Get(echo.HeaderAuthorization)
			if authorization == "" {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, "Invalid authorization").JSON(c.Response())
			}

			key, err := extractAuthType(Basic, authorization)
			if err != nil {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
			}

			if err := m.Basic(c.Request().Context(), key); err != nil {
				return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
			}

			return next(c)
		}
	}
}

func extractAuthType(prefix, authorization string) (string, error) {
	authValues := strings.Split(authorization, " ")
	if len(authValues) == 2 && strings.ToLower(authValues[0]) == prefix {
		return authValues[1], nil
	}

	return "", errors.New("Invalid authorization")
}
