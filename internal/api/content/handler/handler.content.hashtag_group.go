package contenthdl

import (
	"fmt"

	contentdto "franchise_social/internal/api/content/dto"
	models "franchise_social/internal/api/content/models"
	contentsvc "franchise_social/internal/api/content/service"
	basehdl "franchise_social/internal/api/base/handler"
	"franchise_social/internal/common"

	"github.com/gofiber/fiber/v3"
)

// HashtagGroupHandler xử lý các request về nhóm hashtag
type HashtagGroupHandler struct {
	*basehdl.BaseHandler[models.HashtagGroup, contentdto.HashtagGroupCreateInput, contentdto.HashtagGroupUpdateInput]
	hashtagGroupService *contentsvc.HashtagGroupService
}

// NewHashtagGroupHandler tạo instance mới của HashtagGroupHandler
func NewHashtagGroupHandler() (*HashtagGroupHandler, error) {
	hashtagGroupService, err := contentsvc.NewHashtagGroupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create hashtag group service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.HashtagGroup, contentdto.HashtagGroupCreateInput, contentdto.HashtagGroupUpdateInput](hashtagGroupService)
	return &HashtagGroupHandler{
		BaseHandler:         baseHandler,
		hashtagGroupService: hashtagGroupService,
	}, nil
}

// HandleCreate tạo nhóm hashtag mới trong workspace của user
func (h *HashtagGroupHandler) HandleCreate(c fiber.Ctx) error {
	workspaceID := h.GetActiveWorkspaceID(c)
	if workspaceID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthWorkspace, common.ErrNoWorkspace.Error(), common.StatusForbidden, nil))
		return nil
	}

	var input contentdto.HashtagGroupCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	group, err := h.hashtagGroupService.Create(c.Context(), *workspaceID, &input)
	h.HandleResponse(c, group, err)
	return nil
}

// HandleList trả về các nhóm hashtag của workspace hiện tại
func (h *HashtagGroupHandler) HandleList(c fiber.Ctx) error {
	workspaceID := h.GetActiveWorkspaceID(c)
	if workspaceID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthWorkspace, common.ErrNoWorkspace.Error(), common.StatusForbidden, nil))
		return nil
	}

	groups, err := h.hashtagGroupService.ListByWorkspace(c.Context(), *workspaceID)
	h.HandleResponse(c, groups, err)
	return nil
}
