package middleware

import (
	"time"

	"sentiment_dashboard/core/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// RequestLogger log mỗi request sau khi handler chạy xong: 5xx ở mức error,
// 4xx ở mức warn, còn lại debug.
func RequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		entry := logger.WithRequest(c).WithFields(logrus.Fields{
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("Request completed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("Request completed")
		default:
			entry.Debug("Request completed")
		}
		return err
	}
}
