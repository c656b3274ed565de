// Package contentsvc - service Asset: tạo, lưu, clone, listing.
package contentsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	contentdto "franchise_social/internal/api/content/dto"
	models "franchise_social/internal/api/content/models"
	basesvc "franchise_social/internal/api/base/service"
	mediasvc "franchise_social/internal/api/media/service"
	"franchise_social/internal/common"
	"franchise_social/internal/global"
	"franchise_social/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssetService là cấu trúc chứa các phương thức liên quan đến asset nội dung
type AssetService struct {
	*basesvc.BaseServiceMongoImpl[models.Asset]
	mediaService *mediasvc.MediaFileService
}

// NewAssetService tạo mới AssetService
func NewAssetService() (*AssetService, error) {
	assetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Assets)
	if !exist {
		return nil, fmt.Errorf("failed to get assets collection: %v", common.ErrNotFound)
	}
	mediaService, err := mediasvc.NewMediaFileService()
	if err != nil {
		return nil, fmt.Errorf("failed to create media file service: %v", err)
	}

	return &AssetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Asset](assetCollection),
		mediaService:         mediaService,
	}, nil
}

// validatePlatformKeys từ chối key ngoài tập nền tảng hỗ trợ
func validatePlatformKeys(platformContent map[string]string, platformSettings map[string]bool) error {
	for platform := range platformContent {
		if !models.IsValidPlatform(platform) {
			return common.NewError(common.ErrCodeValidationInput, "Nền tảng không được hỗ trợ: "+platform, common.StatusBadRequest, nil)
		}
	}
	for platform := range platformSettings {
		if !models.IsValidPlatform(platform) {
			return common.NewError(common.ErrCodeValidationInput, "Nền tảng không được hỗ trợ: "+platform, common.StatusBadRequest, nil)
		}
	}
	return nil
}

// Create tạo asset mới trong một workspace.
// Template national được tạo thẳng ở trạng thái PUBLISHED, bài đăng
// local bắt đầu ở DRAFT.
func (s *AssetService) Create(ctx context.Context, workspaceID primitive.ObjectID, workspaceType string, input *contentdto.AssetCreateInput) (*models.Asset, error) {
	if err := validatePlatformKeys(input.PlatformContent, input.PlatformSettings); err != nil {
		return nil, err
	}
	if input.IsNationalTemplate && workspaceType != "national" {
		return nil, common.NewError(common.ErrCodeAuthWorkspace, common.ErrNationalOnly.Error(), common.StatusForbidden, nil)
	}

	asset := models.Asset{
		WorkspaceID:        workspaceID,
		MediaURL:           input.MediaURL,
		SourceLink:         input.SourceLink,
		Caption:            input.Caption,
		PlatformContent:    input.PlatformContent,
		PlatformSettings:   input.PlatformSettings,
		Status:             models.StatusDraft,
		ScheduledFor:       input.ScheduledFor,
		IsNationalTemplate: input.IsNationalTemplate,
		Revision:           0,
	}
	if asset.PlatformContent == nil {
		asset.PlatformContent = map[string]string{}
	}
	if asset.PlatformSettings == nil {
		asset.PlatformSettings = map[string]bool{}
	}
	if input.IsNationalTemplate {
		asset.Status = models.StatusPublished
	}

	if input.MediaFileID != "" {
		mediaID, err := primitive.ObjectIDFromHex(input.MediaFileID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "mediaFileId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
		}
		asset.MediaFileID = &mediaID
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, asset)
	if err != nil {
		return nil, err
	}

	// Upload là staged: asset đầu tiên tham chiếu media file sẽ chuyển nó sang linked
	if created.MediaFileID != nil {
		if err := s.mediaService.MarkLinked(ctx, *created.MediaFileID); err != nil {
			utility.LogWarning("Create: Không thể chuyển media file sang linked", "media_file_id", created.MediaFileID.Hex(), "error", err.Error())
		}
	}

	return &created, nil
}

// validateSaveTransition kiểm tra phần trạng thái của bundle save:
// chuyển trạng thái hợp lệ và SCHEDULED phải có thời gian đăng.
func validateSaveTransition(currentStatus string, input *contentdto.AssetSaveInput) error {
	if !models.ValidateStatusTransition(currentStatus, input.Status) {
		return common.NewError(common.ErrCodeValidationInput,
			"Không thể chuyển trạng thái từ "+currentStatus+" sang "+input.Status,
			common.StatusBadRequest, nil)
	}
	if input.Status == models.StatusScheduled && input.ScheduledFor == nil {
		return common.NewError(common.ErrCodeValidationInput, "Vui lòng chọn thời gian đăng", common.StatusBadRequest, nil)
	}
	return nil
}

// applySaveBundle dựng phần nội dung sẽ ghi từ input, đi qua các helper
// của model. Caption của tab đang mở được mirror vào caption gốc.
func applySaveBundle(input *contentdto.AssetSaveInput) *models.Asset {
	working := &models.Asset{
		Caption:          input.Caption,
		PlatformContent:  map[string]string{},
		PlatformSettings: map[string]bool{},
		Status:           input.Status,
		ScheduledFor:     input.ScheduledFor,
	}
	for platform, text := range input.PlatformContent {
		models.ApplyCaption(working, platform, text)
	}
	for platform, enabled := range input.PlatformSettings {
		models.ApplyPlatformEnabled(working, platform, enabled)
	}
	if input.ActivePlatform != "" {
		working.Caption = models.ResolveCaption(working, input.ActivePlatform)
	}
	return working
}

// Save lưu bundle soạn thảo: caption, override theo platform, trạng thái
// và thời gian đăng. Đây là một update nguyên tử có điều kiện revision,
// hai người cùng sửa thì người lưu sau nhận lỗi xung đột.
func (s *AssetService) Save(ctx context.Context, assetID primitive.ObjectID, input *contentdto.AssetSaveInput) (*models.Asset, error) {
	if err := validatePlatformKeys(input.PlatformContent, input.PlatformSettings); err != nil {
		return nil, err
	}

	current, err := s.BaseServiceMongoImpl.FindOneById(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if err := validateSaveTransition(current.Status, input); err != nil {
		return nil, err
	}

	working := applySaveBundle(input)
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"caption":          working.Caption,
			"platformContent":  working.PlatformContent,
			"platformSettings": working.PlatformSettings,
			"status":           working.Status,
		},
		Inc: map[string]interface{}{
			"revision": 1,
		},
	}
	if working.ScheduledFor != nil {
		update.Set["scheduledFor"] = *working.ScheduledFor
	} else {
		update.Unset = map[string]interface{}{"scheduledFor": ""}
	}

	filter := bson.M{"_id": assetID, "revision": input.Revision}
	updated, err := s.BaseServiceMongoImpl.UpdateOne(ctx, filter, update, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Document tồn tại nhưng revision không khớp => có người khác đã lưu trước
			exists, existsErr := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"_id": assetID})
			if existsErr == nil && exists {
				return nil, common.ErrRevisionConflict
			}
		}
		return nil, err
	}

	return &updated, nil
}

// Clone nhân bản một template national thành bài đăng độc lập của
// workspace đích: id mới, revision 0, trạng thái DRAFT.
// ScheduledFor được copy như một gợi ý, DRAFT giữ nó không có hiệu lực.
// Clone hai lần tạo hai document riêng biệt.
func (s *AssetService) Clone(ctx context.Context, sourceTemplateID primitive.ObjectID, targetWorkspaceID primitive.ObjectID) (*models.Asset, error) {
	source, err := s.BaseServiceMongoImpl.FindOneById(ctx, sourceTemplateID)
	if err != nil {
		return nil, err
	}
	if !source.IsNationalTemplate || source.Status != models.StatusPublished {
		return nil, common.NewError(common.ErrCodeValidationInput, "Chỉ có thể clone template national đã publish", common.StatusBadRequest, nil)
	}

	clone := newCloneFrom(&source, targetWorkspaceID)

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, clone)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"source_template_id":  sourceTemplateID.Hex(),
		"target_workspace_id": targetWorkspaceID.Hex(),
		"clone_id":            created.ID.Hex(),
	}).Info("Clone: Đã nhân bản template về workspace")
	return &created, nil
}

// ListLibrary trả về thư viện template national đã publish, mới nhất trước
func (s *AssetService) ListLibrary(ctx context.Context, limit int64) ([]models.Asset, error) {
	filter := bson.M{"isNationalTemplate": true, "status": models.StatusPublished}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// ListByWorkspace trả về bài đăng của một workspace, lọc được theo trạng thái
func (s *AssetService) ListByWorkspace(ctx context.Context, workspaceID primitive.ObjectID, status string) ([]models.Asset, error) {
	filter := bson.M{"workspaceId": workspaceID, "isNationalTemplate": false}
	if status != "" {
		if !models.IsValidStatus(status) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Trạng thái không hợp lệ: "+status, common.StatusBadRequest, nil)
		}
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// ReplaceMedia thay ảnh của asset, media file mới được chuyển sang linked
func (s *AssetService) ReplaceMedia(ctx context.Context, assetID primitive.ObjectID, mediaFileID primitive.ObjectID) (*models.Asset, error) {
	mediaFile, err := s.mediaService.BaseServiceMongoImpl.FindOneById(ctx, mediaFileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Media file không tồn tại", common.StatusBadRequest, nil)
		}
		return nil, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"mediaFileId": mediaFileID,
			"mediaUrl":    s.mediaService.DownloadURL(&mediaFile),
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, assetID, update)
	if err != nil {
		return nil, err
	}

	if err := s.mediaService.MarkLinked(ctx, mediaFileID); err != nil {
		utility.LogWarning("ReplaceMedia: Không thể chuyển media file sang linked", "media_file_id", mediaFileID.Hex(), "error", err.Error())
	}

	return &updated, nil
}

// newCloneFrom dựng bản sao độc lập của một template cho workspace đích:
// id mới, revision 0, trạng thái DRAFT, giữ tham chiếu về template gốc.
func newCloneFrom(source *models.Asset, targetWorkspaceID primitive.ObjectID) models.Asset {
	return models.Asset{
		WorkspaceID:        targetWorkspaceID,
		MediaFileID:        source.MediaFileID,
		MediaURL:           source.MediaURL,
		SourceLink:         source.SourceLink,
		Caption:            source.Caption,
		PlatformContent:    copyStringMap(source.PlatformContent),
		PlatformSettings:   copyBoolMap(source.PlatformSettings),
		Status:             models.StatusDraft,
		ScheduledFor:       source.ScheduledFor,
		IsNationalTemplate: false,
		SourceTemplateID:   &source.ID,
		Revision:           0,
	}
}

func copyStringMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyBoolMap(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// PublishDue chuyển các bài SCHEDULED đã tới giờ đăng sang PUBLISHED.
// Gọi định kỳ bởi worker. Trả về số bài đã chuyển.
func (s *AssetService) PublishDue(ctx context.Context) (int64, error) {
	now := time.Now().UnixMilli()
	filter := bson.M{
		"status":       models.StatusScheduled,
		"scheduledFor": bson.M{"$ne": nil, "$lte": now},
	}
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": models.StatusPublished,
		},
	}
	return s.BaseServiceMongoImpl.UpdateMany(ctx, filter, update, nil)
}
