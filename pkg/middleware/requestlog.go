package middleware

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	HeaderRequestID = "X-Request-Id"
	ContextKey      = "request_id"
)

// RequestLog tags every request with an id (reusing the caller's
// X-Request-Id when present) and writes one [http] line per response.
func RequestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(ContextKey, id)
			c.Response().Header().Set(HeaderRequestID, id)

			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is final
				c.Error(err)
			}
			req := c.Request()
			log.Printf("[http] %s %s %d %s id=%s", req.Method, req.URL.Path,
				c.Response().Status, time.Since(start).Round(time.Millisecond), id)
			return nil
		}
	}
}

// RequestID returns the id assigned by RequestLog, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(ContextKey).(string)
	return id
}
