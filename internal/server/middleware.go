package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// LoggingMiddleware tags every request with a generated ID and emits a
// structured entry once it completes.
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := uuid.NewString()
			c.Set(requestIDKey, requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			err := next(c)

			status := c.Response().Status
			entry := logger.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    time.Since(start),
				"ip":         c.RealIP(),
			})
			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			switch {
			case status >= 500:
				entry.Error("server error")
			case status >= 400:
				entry.Warn("client error")
			default:
				entry.Info("request processed")
			}
			return err
		}
	}
}
