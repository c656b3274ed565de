// Package router đăng ký các route thuộc domain content: Asset, Calendar, Stats, HashtagGroup.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "franchise_social/internal/api/content/handler"
	apirouter "franchise_social/internal/api/router"
	"franchise_social/internal/api/middleware"
)

// Register đăng ký tất cả route content lên v1.
// Toàn bộ route content yêu cầu xác thực và workspace context.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	assetHandler, err := contenthdl.NewAssetHandler()
	if err != nil {
		return fmt.Errorf("failed to create asset handler: %w", err)
	}
	hashtagGroupHandler, err := contenthdl.NewHashtagGroupHandler()
	if err != nil {
		return fmt.Errorf("failed to create hashtag group handler: %w", err)
	}

	authChain := []fiber.Handler{
		middleware.AuthMiddleware(),
		middleware.WorkspaceContextMiddleware(),
	}

	// Asset: tạo, thư viện template, listing, chi tiết, clone, save, thay ảnh
	apirouter.RegisterRouteWithMiddleware(v1, "/content/assets", "POST", "/", authChain, assetHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/assets", "GET", "/library", authChain, assetHandler.HandleLibrary)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/assets", "GET", "/", authChain, assetHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/assets", "GET", "/:id", authChain, assetHandler.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/assets", "POST", "/:id/clone", authChain, assetHandler.HandleClone)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/assets", "PUT", "/:id/save", authChain, assetHandler.HandleSave)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/assets", "PUT", "/:id/media", authChain, assetHandler.HandleReplaceMedia)

	// Calendar và dashboard
	apirouter.RegisterRouteWithMiddleware(v1, "/content", "GET", "/calendar", authChain, assetHandler.HandleCalendar)
	apirouter.RegisterRouteWithMiddleware(v1, "/content", "GET", "/stats", authChain, assetHandler.HandleStats)

	// Hashtag groups: chỉ có create và list
	apirouter.RegisterRouteWithMiddleware(v1, "/content/hashtag-groups", "GET", "/", authChain, hashtagGroupHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/hashtag-groups", "POST", "/", authChain, hashtagGroupHandler.HandleCreate)
	return nil
}
