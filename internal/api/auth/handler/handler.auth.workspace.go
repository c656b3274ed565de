package authhdl

import (
	"fmt"

	authdto "franchise_social/internal/api/auth/dto"
	models "franchise_social/internal/api/auth/models"
	authsvc "franchise_social/internal/api/auth/service"
	basehdl "franchise_social/internal/api/base/handler"
	"franchise_social/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkspaceHandler xử lý các request quản lý workspace
type WorkspaceHandler struct {
	*basehdl.BaseHandler[models.Workspace, authdto.WorkspaceCreateInput, authdto.WorkspaceUpdateInput]
	workspaceService *authsvc.WorkspaceService
}

// NewWorkspaceHandler tạo instance mới của WorkspaceHandler
func NewWorkspaceHandler() (*WorkspaceHandler, error) {
	workspaceService, err := authsvc.NewWorkspaceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Workspace, authdto.WorkspaceCreateInput, authdto.WorkspaceUpdateInput](workspaceService)
	return &WorkspaceHandler{
		BaseHandler:      baseHandler,
		workspaceService: workspaceService,
	}, nil
}

// setActive xử lý chung cho activate/deactivate workspace theo id trên path
func (h *WorkspaceHandler) setActive(c fiber.Ctx, isActive bool) error {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng ObjectID", common.StatusBadRequest, err))
		return nil
	}
	workspace, err := h.workspaceService.SetActive(c.Context(), objID, isActive)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, workspace, nil)
	return nil
}

// HandleActivate bật trạng thái hoạt động của workspace
func (h *WorkspaceHandler) HandleActivate(c fiber.Ctx) error {
	return h.setActive(c, true)
}

// HandleDeactivate tắt trạng thái hoạt động của workspace
func (h *WorkspaceHandler) HandleDeactivate(c fiber.Ctx) error {
	return h.setActive(c, false)
}
