// Package router đăng ký các route thuộc domain auth: System, Auth, User, Workspace.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "franchise_social/internal/api/auth/handler"
	basehdl "franchise_social/internal/api/base/handler"
	apirouter "franchise_social/internal/api/router"
	"franchise_social/internal/api/middleware"
)

// Register đăng ký tất cả route auth (system, auth, user, workspace) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	if err := registerWorkspaceRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Register và Login là route public, không cần token
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadOnlyConfig)

	// Khóa/mở khóa tài khoản chỉ dành cho workspace national
	nationalChain := []fiber.Handler{
		middleware.AuthMiddleware(),
		middleware.WorkspaceContextMiddleware(),
		middleware.NationalOnlyMiddleware(),
	}
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", nationalChain, userHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", nationalChain, userHandler.HandleUnBlockUser)
	return nil
}

func registerWorkspaceRoutes(router fiber.Router, r *apirouter.Router) error {
	workspaceHandler, err := authhdl.NewWorkspaceHandler()
	if err != nil {
		return fmt.Errorf("failed to create workspace handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/workspace", workspaceHandler, apirouter.ReadWriteConfig)

	// Bật/tắt workspace chỉ dành cho workspace national
	nationalChain := []fiber.Handler{
		middleware.AuthMiddleware(),
		middleware.WorkspaceContextMiddleware(),
		middleware.NationalOnlyMiddleware(),
	}
	apirouter.RegisterRouteWithMiddleware(router, "/workspace", "POST", "/activate/:id", nationalChain, workspaceHandler.HandleActivate)
	apirouter.RegisterRouteWithMiddleware(router, "/workspace", "POST", "/deactivate/:id", nationalChain, workspaceHandler.HandleDeactivate)
	return nil
}
