package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về logger entry kèm thông tin request (request_id, method, path, IP)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(context.Background())

	// Request ID do middleware requestid set vào Locals hoặc header
	var requestID string
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok {
			requestID = ridStr
		}
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = c.GetRespHeader("X-Request-ID")
	}
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	entry = entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	return entry
}

// WithFields trả về logger entry với các fields bổ sung
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError trả về logger entry với error
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}

// WithModule trả về logger entry với module name
// Module: tên module (ví dụ: "auth", "content", "media")
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}
