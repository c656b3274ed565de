package basehdl

import (
	"context"
	"time"

	"franchise_social/internal/common"
	"franchise_social/internal/global"

	"github.com/gofiber/fiber/v3"
)

// SystemHandler xử lý các route liên quan đến system operations
type SystemHandler struct {
	*BaseHandler[interface{}, interface{}, interface{}]
}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	baseHandler := &BaseHandler[interface{}, interface{}, interface{}]{}
	handler := &SystemHandler{
		BaseHandler: baseHandler,
	}
	return handler, nil
}

// HandleHealth kiểm tra tình trạng hệ thống
// Kiểm tra trạng thái của API và database connection
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}

	// Kiểm tra MongoDB connection
	if global.MongoDB_Session != nil {
		err := global.MongoDB_Session.Ping(ctx, nil)
		if err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["database"] = "error"
			healthData["database_error"] = err.Error()
			return c.Status(common.StatusServiceUnavailable).JSON(fiber.Map{
				"code":    common.StatusServiceUnavailable,
				"message": "Hệ thống đang gặp sự cố",
				"data":    healthData,
				"status":  "error",
			})
		}
		healthData["services"].(fiber.Map)["database"] = "ok"
	} else {
		healthData["status"] = "degraded"
		healthData["services"].(fiber.Map)["database"] = "not_initialized"
	}

	return c.Status(common.StatusOK).JSON(fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    healthData,
		"status":  "success",
	})
}
