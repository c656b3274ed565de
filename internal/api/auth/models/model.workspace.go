// Package models - model Workspace thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại workspace. Workspace national quản lý thư viện template toàn hệ thống,
// workspace local là từng đơn vị nhượng quyền.
const (
	WorkspaceTypeNational = "national"
	WorkspaceTypeLocal    = "local"
)

// Workspace đại diện cho một đơn vị làm việc trong hệ thống.
// Mỗi user trực thuộc đúng một workspace. Dữ liệu nội dung được
// cô lập theo workspace, trừ template national được chia sẻ xuống local.
type Workspace struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Code      string             `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"`
	Type      string             `json:"type" bson:"type" default:"local" index:"single:1"`
	IsActive  bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
