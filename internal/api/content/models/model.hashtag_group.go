// Package models - model HashtagGroup thuộc domain content.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HashtagGroup nhóm hashtag dùng lại được khi soạn caption.
// Content là chuỗi tự do ("#tag1 #tag2 ...") được chèn nguyên văn vào
// caption khi người dùng chọn nhóm. Mỗi workspace quản lý danh sách riêng.
type HashtagGroup struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	WorkspaceID primitive.ObjectID `json:"workspaceId,omitempty" bson:"workspaceId,omitempty" index:"single:1"`
	Name        string             `json:"name" bson:"name"`
	Content     string             `json:"content" bson:"content"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
