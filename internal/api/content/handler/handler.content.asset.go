package contenthdl

import (
	"fmt"
	"strconv"

	contentdto "franchise_social/internal/api/content/dto"
	models "franchise_social/internal/api/content/models"
	contentsvc "franchise_social/internal/api/content/service"
	basehdl "franchise_social/internal/api/base/handler"
	authmodels "franchise_social/internal/api/auth/models"
	"franchise_social/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetHandler xử lý các request về asset nội dung
type AssetHandler struct {
	*basehdl.BaseHandler[models.Asset, contentdto.AssetCreateInput, contentdto.AssetUpdateInput]
	assetService *contentsvc.AssetService
}

// NewAssetHandler tạo instance mới của AssetHandler
func NewAssetHandler() (*AssetHandler, error) {
	assetService, err := contentsvc.NewAssetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create asset service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Asset, contentdto.AssetCreateInput, contentdto.AssetUpdateInput](assetService)
	return &AssetHandler{
		BaseHandler:  baseHandler,
		assetService: assetService,
	}, nil
}

// workspaceContext lấy workspace id và type từ Locals do middleware gắn vào
func (h *AssetHandler) workspaceContext(c fiber.Ctx) (*primitive.ObjectID, string, error) {
	workspaceID := h.GetActiveWorkspaceID(c)
	if workspaceID == nil {
		return nil, "", common.NewError(common.ErrCodeAuthWorkspace, common.ErrNoWorkspace.Error(), common.StatusForbidden, nil)
	}
	workspaceType, _ := c.Locals("workspace_type").(string)
	return workspaceID, workspaceType, nil
}

// parseAssetID đọc và kiểm tra param :id
func parseAssetID(c fiber.Ctx) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng ObjectID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleCreate tạo asset mới trong workspace của user.
// Tạo template national yêu cầu user thuộc workspace national.
func (h *AssetHandler) HandleCreate(c fiber.Ctx) error {
	workspaceID, workspaceType, err := h.workspaceContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input contentdto.AssetCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	asset, err := h.assetService.Create(c.Context(), *workspaceID, workspaceType, &input)
	h.HandleResponse(c, asset, err)
	return nil
}

// HandleLibrary trả về thư viện template national đã publish
func (h *AssetHandler) HandleLibrary(c fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "0"), 10, 64)
	assets, err := h.assetService.ListLibrary(c.Context(), limit)
	h.HandleResponse(c, assets, err)
	return nil
}

// HandleList trả về bài đăng của workspace hiện tại, lọc được theo status
func (h *AssetHandler) HandleList(c fiber.Ctx) error {
	workspaceID, _, err := h.workspaceContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	assets, err := h.assetService.ListByWorkspace(c.Context(), *workspaceID, c.Query("status"))
	h.HandleResponse(c, assets, err)
	return nil
}

// HandleGetById trả về một asset theo id, kiểm tra quyền workspace
func (h *AssetHandler) HandleGetById(c fiber.Ctx) error {
	objID, err := parseAssetID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	asset, err := h.assetService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// Template national đọc được từ mọi workspace, bài đăng local thì không
	if !asset.IsNationalTemplate {
		if err := h.ValidateUserHasAccessToWorkspace(c, asset.WorkspaceID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
	}

	h.HandleResponse(c, asset, nil)
	return nil
}

// HandleClone clone một template national về workspace của user
func (h *AssetHandler) HandleClone(c fiber.Ctx) error {
	workspaceID, _, err := h.workspaceContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	objID, err := parseAssetID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	clone, err := h.assetService.Clone(c.Context(), objID, *workspaceID)
	h.HandleResponse(c, clone, err)
	return nil
}

// HandleSave lưu bundle soạn thảo của một asset
func (h *AssetHandler) HandleSave(c fiber.Ctx) error {
	objID, err := parseAssetID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateWorkspaceAccess(c, c.Params("id")); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input contentdto.AssetSaveInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	asset, err := h.assetService.Save(c.Context(), objID, &input)
	h.HandleResponse(c, asset, err)
	return nil
}

// HandleReplaceMedia thay ảnh của một asset
func (h *AssetHandler) HandleReplaceMedia(c fiber.Ctx) error {
	objID, err := parseAssetID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateWorkspaceAccess(c, c.Params("id")); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input contentdto.AssetReplaceMediaInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	mediaFileID, err := primitive.ObjectIDFromHex(input.MediaFileID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "mediaFileId không đúng định dạng ObjectID", common.StatusBadRequest, err))
		return nil
	}

	asset, err := h.assetService.ReplaceMedia(c.Context(), objID, mediaFileID)
	h.HandleResponse(c, asset, err)
	return nil
}

// HandleCalendar trả về lưới lịch tháng của workspace với bài đăng theo ngày
func (h *AssetHandler) HandleCalendar(c fiber.Ctx) error {
	workspaceID, _, err := h.workspaceContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Tham số year không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Tham số month không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	calendar, err := h.assetService.ListCalendarMonth(c.Context(), *workspaceID, year, month)
	h.HandleResponse(c, calendar, err)
	return nil
}

// HandleStats trả về thống kê dashboard theo loại workspace
func (h *AssetHandler) HandleStats(c fiber.Ctx) error {
	workspaceID, workspaceType, err := h.workspaceContext(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if workspaceType == authmodels.WorkspaceTypeNational {
		stats, err := h.assetService.GetNationalStats(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	}

	stats, err := h.assetService.GetLocalStats(c.Context(), *workspaceID)
	h.HandleResponse(c, stats, err)
	return nil
}
