package http

import (
	nethttp "net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"dashboard/backend/internal/handler"
	"dashboard/backend/pkg/logger"
)

const (
	SessionCookieName = "dash_session"
	SessionHeader     = "X-Session-ID"
)

// SessionMiddleware resolves the caller's session id from the X-Session-ID header or the
// session cookie. Missing or malformed ids are replaced by a fresh UUID sent back as a cookie.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(SessionHeader)
			if id == "" {
				if cookie, err := c.Cookie(SessionCookieName); err == nil {
					id = cookie.Value
				}
			}
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
				c.SetCookie(&nethttp.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: nethttp.SameSiteLaxMode,
				})
			}
			c.Set(handler.SessionContextKey, id)
			return next(c)
		}
	}
}

func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			args := []any{
				"module", "http",
				"action", "request",
				"resource", c.Path(),
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", status,
				"latency", time.Since(start),
			}
			switch {
			case status >= nethttp.StatusInternalServerError:
				logger.Error("http request", append(args, "result", "failed")...)
			case status >= nethttp.StatusBadRequest:
				logger.Warn("http request", append(args, "result", "rejected")...)
			default:
				logger.Debug("http request", append(args, "result", "ok")...)
			}
			return nil
		}
	}
}

// RateLimitMiddleware limits each client IP to perSecond requests. A non-positive value
// disables limiting.
func RateLimitMiddleware(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	burst := int(perSecond * 2)
	if burst < 1 {
		burst = 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(nethttp.StatusTooManyRequests, map[string]string{"error": "too many requests"})
		},
	})
}
