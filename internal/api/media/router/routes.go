// Package router đăng ký các route thuộc domain media.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mediahdl "franchise_social/internal/api/media/handler"
	apirouter "franchise_social/internal/api/router"
	"franchise_social/internal/api/middleware"
)

// Register đăng ký các route media lên v1.
// Download là route public để URL media nhúng được vào client,
// upload yêu cầu xác thực và workspace context.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	mediaFileHandler, err := mediahdl.NewMediaFileHandler()
	if err != nil {
		return fmt.Errorf("failed to create media file handler: %w", err)
	}

	v1.Get("/media/files/download/:id", mediaFileHandler.HandleDownload)

	authChain := []fiber.Handler{
		middleware.AuthMiddleware(),
		middleware.WorkspaceContextMiddleware(),
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/media/files", "POST", "/upload", authChain, mediaFileHandler.HandleUpload)
	return nil
}
