package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"franchise_social/internal/common"
)

// JSONResponse gửi response dạng JSON với status code và dữ liệu
func JSONResponse(c fiber.Ctx, statusCode int, data fiber.Map) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse chuyển đổi lỗi thành response chuẩn của hệ thống
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
	}

	return JSONResponse(c, http.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	})
}
