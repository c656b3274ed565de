// Package models - model MediaFile thuộc domain media.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái media file. Upload là staged: file mới ở pending,
// asset đầu tiên tham chiếu sẽ chuyển nó sang linked. File pending
// quá hạn bị worker dọn dẹp xóa.
const (
	MediaStatusPending = "pending"
	MediaStatusLinked  = "linked"
)

// MediaFile metadata của một file media, bytes nằm trong GridFS bucket.
type MediaFile struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	WorkspaceID primitive.ObjectID `json:"workspaceId,omitempty" bson:"workspaceId,omitempty" index:"single:1"`
	ObjectName  string             `json:"objectName" bson:"objectName" index:"unique"`
	FileName    string             `json:"fileName" bson:"fileName"`
	ContentType string             `json:"contentType" bson:"contentType"`
	Size        int64              `json:"size" bson:"size"`
	GridFSID    primitive.ObjectID `json:"gridFsId,omitempty" bson:"gridFsId,omitempty"`
	Status      string             `json:"status" bson:"status" default:"pending" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
