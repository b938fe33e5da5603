package handlers

import (
	"fmt"
	"time"

	"iotpersistence/domain"
	"iotpersistence/helpers"
	"iotpersistence/interfaces"
	"iotpersistence/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const callerKey = "iotpersistence.caller"

// RequestID tags every request and response with a time-ordered id.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	})
}

// AccessLog writes one log line per request after the error handler has produced the response.
func AccessLog(logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			start := time.Now()
			if err := next(ectx); err != nil {
				ectx.Error(err)
			}

			req := ectx.Request()
			res := ectx.Response()
			level.Info(logger).Log(
				"msg", "HTTP request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration", time.Since(start),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

// Authenticate verifies the HTTP Basic credentials of every request and stores the
// verified user for the handlers. Failures carry a Basic challenge for realm.
func Authenticate(auth interfaces.Authenticator, realm string) echo.MiddlewareFunc {
	auth = helpers.NilPanic(auth, "handlers.middleware.go: auth is required")
	challenge := fmt.Sprintf("Basic realm=%q", helpers.StrPanic(realm, "handlers.middleware.go: realm is required"))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			name, secret, ok := ectx.Request().BasicAuth()
			if !ok {
				ectx.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
				return service.NewInvalidUserOrPasswordError("missing credentials", nil)
			}

			user, err := auth.Verify(ectx.Request().Context(), name, secret)
			if err != nil {
				if service.IsInvalidUserOrPasswordError(err) {
					ectx.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
				}
				return err
			}

			ectx.Set(callerKey, user)
			return next(ectx)
		}
	}
}

// RequireRoles rejects callers whose role gate does not admit. It must run after Authenticate.
func RequireRoles(gate service.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ectx echo.Context) error {
			caller, ok := callerFrom(ectx)
			if !ok {
				return service.NewInvalidUserOrPasswordError("missing credentials", nil)
			}
			if err := gate.Authorize(caller); err != nil {
				return err
			}
			return next(ectx)
		}
	}
}

func callerFrom(ectx echo.Context) (domain.User, bool) {
	user, ok := ectx.Get(callerKey).(domain.User)
	return user, ok
}

// callerHandler is a handler that acts on behalf of a verified user.
type callerHandler func(ectx echo.Context, caller domain.User) error

// withCaller passes the user stored by Authenticate to h.
func withCaller(h callerHandler) echo.HandlerFunc {
	return func(ectx echo.Context) error {
		caller, ok := callerFrom(ectx)
		if !ok {
			return service.NewInvalidUserOrPasswordError("missing credentials", nil)
		}
		return h(ectx, caller)
	}
}
