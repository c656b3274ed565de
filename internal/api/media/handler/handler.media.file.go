package mediahdl

import (
	"fmt"

	models "franchise_social/internal/api/media/models"
	mediasvc "franchise_social/internal/api/media/service"
	basehdl "franchise_social/internal/api/base/handler"
	"franchise_social/internal/common"
	"franchise_social/internal/global"
	"franchise_social/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaFileHandler xử lý upload và download media file
type MediaFileHandler struct {
	*basehdl.BaseHandler[models.MediaFile, struct{}, struct{}]
	mediaService *mediasvc.MediaFileService
}

// NewMediaFileHandler tạo instance mới của MediaFileHandler
func NewMediaFileHandler() (*MediaFileHandler, error) {
	mediaService, err := mediasvc.NewMediaFileService()
	if err != nil {
		return nil, fmt.Errorf("failed to create media file service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.MediaFile, struct{}, struct{}](mediaService)
	return &MediaFileHandler{
		BaseHandler:  baseHandler,
		mediaService: mediaService,
	}, nil
}

// HandleUpload nhận file multipart, ghi vào GridFS ở trạng thái pending.
// Response chứa id và downloadUrl để client gắn vào asset.
func (h *MediaFileHandler) HandleUpload(c fiber.Ctx) error {
	workspaceID := h.GetActiveWorkspaceID(c)
	if workspaceID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthWorkspace, common.ErrNoWorkspace.Error(), common.StatusForbidden, nil))
		return nil
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file upload", common.StatusBadRequest, err.Error()))
		return nil
	}
	maxUploadSize := int64(global.ServerConfig.MediaMaxSizeMB) * 1024 * 1024
	if fileHeader.Size > maxUploadSize {
		h.HandleResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"File vượt quá kích thước cho phép ("+utility.FormatBytes(uint64(maxUploadSize))+")",
			common.StatusBadRequest,
			nil,
		))
		return nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không thể đọc file upload", common.StatusBadRequest, err.Error()))
		return nil
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	mediaFile, err := h.mediaService.Upload(c.Context(), *workspaceID, fileHeader.Filename, contentType, file)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	h.HandleResponse(c, fiber.Map{
		"mediaFile":   mediaFile,
		"downloadUrl": h.mediaService.DownloadURL(mediaFile),
	}, nil)
	return nil
}

// HandleDownload stream bytes của media file từ GridFS về client
func (h *MediaFileHandler) HandleDownload(c fiber.Ctx) error {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng ObjectID", common.StatusBadRequest, err))
		return nil
	}

	mediaFile, stream, err := h.mediaService.Download(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	defer stream.Close()

	if mediaFile.ContentType != "" {
		c.Set("Content-Type", mediaFile.ContentType)
	}
	c.Set("Content-Disposition", `inline; filename="`+mediaFile.FileName+`"`)
	return c.SendStream(stream, int(mediaFile.Size))
}
