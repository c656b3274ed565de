// Package mediasvc - service MediaFile: upload staged vào GridFS,
// download stream và dọn dẹp file pending quá hạn.
package mediasvc

import (
	"context"
	"fmt"
	"io"
	"time"

	models "franchise_social/internal/api/media/models"
	basesvc "franchise_social/internal/api/base/service"
	"franchise_social/internal/common"
	"franchise_social/internal/global"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaFileService là cấu trúc chứa các phương thức liên quan đến media file
type MediaFileService struct {
	*basesvc.BaseServiceMongoImpl[models.MediaFile]
	bucket *gridfs.Bucket
}

// NewMediaFileService tạo mới MediaFileService
func NewMediaFileService() (*MediaFileService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MediaFiles)
	if !exist {
		return nil, fmt.Errorf("failed to get media_files collection: %v", common.ErrNotFound)
	}
	if global.MediaBucket == nil {
		return nil, fmt.Errorf("media bucket chưa được khởi tạo")
	}

	return &MediaFileService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MediaFile](collection),
		bucket:               global.MediaBucket,
	}, nil
}

// Upload ghi bytes vào GridFS và tạo document metadata ở trạng thái pending.
// ObjectName là uuid để tránh trùng tên file người dùng.
func (s *MediaFileService) Upload(ctx context.Context, workspaceID primitive.ObjectID, fileName string, contentType string, reader io.Reader) (*models.MediaFile, error) {
	objectName := uuid.New().String()

	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"fileName":    fileName,
		"contentType": contentType,
		"workspaceId": workspaceID,
	})
	uploadStream, err := s.bucket.OpenUploadStream(objectName, uploadOpts)
	if err != nil {
		return nil, common.NewError(common.ErrCodeDatabase, "Không thể mở upload stream", common.StatusInternalServerError, err.Error())
	}

	size, err := io.Copy(uploadStream, reader)
	if closeErr := uploadStream.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, common.NewError(common.ErrCodeDatabase, "Lỗi ghi dữ liệu media", common.StatusInternalServerError, err.Error())
	}

	gridFSID, ok := uploadStream.FileID.(primitive.ObjectID)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "GridFS file id không hợp lệ", common.StatusInternalServerError, nil)
	}

	mediaFile := models.MediaFile{
		WorkspaceID: workspaceID,
		ObjectName:  objectName,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		GridFSID:    gridFSID,
		Status:      models.MediaStatusPending,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, mediaFile)
	if err != nil {
		// Metadata tạo thất bại thì bytes trong GridFS thành mồ côi, xóa luôn
		if delErr := s.bucket.Delete(gridFSID); delErr != nil {
			logrus.WithFields(logrus.Fields{"gridfs_id": gridFSID.Hex(), "error": delErr.Error()}).Warn("Upload: Không thể xóa GridFS file mồ côi")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"media_file_id": created.ID.Hex(),
		"object_name":   objectName,
		"size":          size,
	}).Info("Upload: Đã nhận media file")
	return &created, nil
}

// Download mở stream đọc bytes của một media file từ GridFS
func (s *MediaFileService) Download(ctx context.Context, id primitive.ObjectID) (*models.MediaFile, *gridfs.DownloadStream, error) {
	mediaFile, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.bucket.OpenDownloadStream(mediaFile.GridFSID)
	if err != nil {
		return nil, nil, common.NewError(common.ErrCodeDatabase, "Không thể đọc dữ liệu media", common.StatusInternalServerError, err.Error())
	}
	return &mediaFile, stream, nil
}

// MarkLinked chuyển media file từ pending sang linked.
// Gọi khi asset đầu tiên tham chiếu tới file.
func (s *MediaFileService) MarkLinked(ctx context.Context, id primitive.ObjectID) error {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": models.MediaStatusLinked,
		},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	return err
}

// DownloadURL trả về URL download public của media file
func (s *MediaFileService) DownloadURL(mediaFile *models.MediaFile) string {
	base := ""
	if global.ServerConfig != nil {
		base = global.ServerConfig.MediaPublicBase
	}
	return base + "/api/v1/media/files/download/" + mediaFile.ID.Hex()
}

// CleanupStalePending xóa các media file pending được tạo trước mốc cắt,
// gồm cả bytes GridFS lẫn document metadata. Trả về số file đã xóa.
func (s *MediaFileService) CleanupStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).UnixMilli()
	filter := bson.M{
		"status":    models.MediaStatusPending,
		"createdAt": bson.M{"$lt": cutoff},
	}
	staleFiles, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}

	var deleted int64
	for _, mediaFile := range staleFiles {
		if err := s.bucket.Delete(mediaFile.GridFSID); err != nil {
			logrus.WithFields(logrus.Fields{"gridfs_id": mediaFile.GridFSID.Hex(), "error": err.Error()}).Warn("CleanupStalePending: Không thể xóa GridFS file")
			continue
		}
		if err := s.BaseServiceMongoImpl.DeleteById(ctx, mediaFile.ID); err != nil {
			logrus.WithFields(logrus.Fields{"media_file_id": mediaFile.ID.Hex(), "error": err.Error()}).Warn("CleanupStalePending: Không thể xóa document media file")
			continue
		}
		deleted++
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{"deleted": deleted}).Info("CleanupStalePending: Đã dọn media file pending quá hạn")
	}
	return deleted, nil
}
