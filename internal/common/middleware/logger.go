package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger логирует запросы вместе с углом рендера и ID сохранённого документа
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} angle=${query:angle} | render=${respHeader:X-Render-ID}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}
