package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	authmodels "franchise_social/internal/api/auth/models"
	authsvc "franchise_social/internal/api/auth/service"
	"franchise_social/internal/common"
	"franchise_social/internal/utility"
)

// WorkspaceContextManager quản lý việc tra cứu workspace của user đang đăng nhập.
type WorkspaceContextManager struct {
	WorkspaceCRUD *authsvc.WorkspaceService
	Cache         *utility.Cache
}

var (
	wsContextManager     *WorkspaceContextManager
	wsContextManagerOnce sync.Once
)

// GetWorkspaceContextManager trả về instance singleton của WorkspaceContextManager
func GetWorkspaceContextManager() (*WorkspaceContextManager, error) {
	var initErr error
	wsContextManagerOnce.Do(func() {
		workspaceService, err := authsvc.NewWorkspaceService()
		if err != nil {
			initErr = err
			return
		}
		wsContextManager = &WorkspaceContextManager{
			WorkspaceCRUD: workspaceService,
			Cache:         utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return wsContextManager, nil
}

// InvalidateWorkspaceCache xóa cache của một workspace sau khi dữ liệu thay đổi.
// Gọi từ event handler khi collection workspace có thao tác ghi.
func InvalidateWorkspaceCache(workspaceID string) {
	if wsContextManager == nil {
		return
	}
	wsContextManager.Cache.Delete("workspace:" + workspaceID)
}

// findWorkspace tra cứu workspace theo id, có cache để giảm truy vấn lặp lại.
func (m *WorkspaceContextManager) findWorkspace(c fiber.Ctx, user *authmodels.User) (*authmodels.Workspace, error) {
	key := "workspace:" + user.WorkspaceID.Hex()
	if cached, ok := m.Cache.Get(key); ok {
		if ws, ok := cached.(*authmodels.Workspace); ok {
			return ws, nil
		}
	}

	workspace, err := m.WorkspaceCRUD.FindOneById(c.Context(), user.WorkspaceID)
	if err != nil {
		return nil, err
	}

	m.Cache.Set(key, &workspace)
	return &workspace, nil
}

// WorkspaceContextMiddleware nạp workspace của user đã xác thực vào context.
// Phải đặt SAU AuthMiddleware trong chain (cần Locals user).
//
// Locals được set:
//   - workspace_id:   ObjectID hex của workspace
//   - workspace_type: "national" hoặc "local"
func WorkspaceContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(*authmodels.User)
		if !ok || user == nil {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthToken,
				common.ErrTokenMissing.Error(),
				http.StatusUnauthorized,
				nil,
			))
		}

		if user.WorkspaceID.IsZero() {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthWorkspace,
				common.ErrNoWorkspace.Error(),
				http.StatusForbidden,
				nil,
			))
		}

		manager, err := GetWorkspaceContextManager()
		if err != nil {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				"Không thể khởi tạo workspace context",
				http.StatusInternalServerError,
				err.Error(),
			))
		}

		workspace, err := manager.findWorkspace(c, user)
		if err != nil {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthWorkspace,
				common.ErrNoWorkspace.Error(),
				http.StatusForbidden,
				nil,
			))
		}

		if !workspace.IsActive {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthWorkspace,
				"Workspace đã bị vô hiệu hóa",
				http.StatusForbidden,
				nil,
			))
		}

		c.Locals("workspace_id", workspace.ID.Hex())
		c.Locals("workspace_type", workspace.Type)

		return c.Next()
	}
}

// NationalOnlyMiddleware giới hạn route chỉ cho user thuộc workspace national.
// Phải đặt SAU WorkspaceContextMiddleware trong chain.
func NationalOnlyMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		wsType, ok := c.Locals("workspace_type").(string)
		if !ok || wsType != authmodels.WorkspaceTypeNational {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthWorkspace,
				common.ErrNationalOnly.Error(),
				http.StatusForbidden,
				nil,
			))
		}
		return c.Next()
	}
}
