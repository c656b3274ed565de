// Package models - model Asset thuộc domain content.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái vòng đời của một asset.
const (
	StatusDraft     = "DRAFT"
	StatusScheduled = "SCHEDULED"
	StatusPublished = "PUBLISHED"
)

// Các nền tảng được hỗ trợ. Đây là tập đóng, key lạ trong
// platformContent/platformSettings bị từ chối khi ghi.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedin  = "linkedin"
)

// Platforms danh sách nền tảng hợp lệ
var Platforms = []string{PlatformFacebook, PlatformInstagram, PlatformLinkedin}

// Asset đại diện cho một nội dung đăng mạng xã hội.
// Template national (isNationalTemplate=true) thuộc workspace national,
// được local clone về thành bài đăng riêng của workspace mình.
// Revision tăng sau mỗi lần save, dùng cho optimistic concurrency.
type Asset struct {
	ID                 primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	WorkspaceID        primitive.ObjectID  `json:"workspaceId,omitempty" bson:"workspaceId,omitempty" index:"single:1;compound:workspaceId_status"`
	MediaFileID        *primitive.ObjectID `json:"mediaFileId,omitempty" bson:"mediaFileId,omitempty"`
	MediaURL           string              `json:"mediaUrl" bson:"mediaUrl"`
	SourceLink         string              `json:"sourceLink,omitempty" bson:"sourceLink,omitempty"`
	Caption            string              `json:"caption" bson:"caption"`
	PlatformContent    map[string]string   `json:"platformContent" bson:"platformContent"`
	PlatformSettings   map[string]bool     `json:"platformSettings" bson:"platformSettings"`
	Status             string              `json:"status" bson:"status" default:"DRAFT" index:"compound:workspaceId_status"`
	ScheduledFor       *int64              `json:"scheduledFor,omitempty" bson:"scheduledFor,omitempty" index:"single:1"`
	IsNationalTemplate bool                `json:"isNationalTemplate" bson:"isNationalTemplate" index:"single:1"`
	SourceTemplateID   *primitive.ObjectID `json:"sourceTemplateId,omitempty" bson:"sourceTemplateId,omitempty"`
	Revision           int64               `json:"revision" bson:"revision"`
	CreatedAt          int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64               `json:"updatedAt" bson:"updatedAt"`
}

// IsValidPlatform kiểm tra platform có nằm trong tập đóng không
func IsValidPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// IsValidStatus kiểm tra status có hợp lệ không
func IsValidStatus(status string) bool {
	return status == StatusDraft || status == StatusScheduled || status == StatusPublished
}

// ResolveCaption trả về caption hiển thị cho một platform.
// Ưu tiên override trong platformContent, fallback về caption gốc.
// Khi đọc không bao giờ lỗi với platform lạ, chỉ fallback.
func ResolveCaption(asset *Asset, platform string) string {
	if asset == nil {
		return ""
	}
	if override, ok := asset.PlatformContent[platform]; ok && override != "" {
		return override
	}
	return asset.Caption
}

// ApplyCaption gán caption override cho một platform
func ApplyCaption(asset *Asset, platform string, text string) {
	if asset.PlatformContent == nil {
		asset.PlatformContent = make(map[string]string)
	}
	asset.PlatformContent[platform] = text
}

// ApplyPlatformEnabled bật/tắt việc đăng lên một platform
func ApplyPlatformEnabled(asset *Asset, platform string, enabled bool) {
	if asset.PlatformSettings == nil {
		asset.PlatformSettings = make(map[string]bool)
	}
	asset.PlatformSettings[platform] = enabled
}

// ValidateStatusTransition kiểm tra chuyển trạng thái qua save có hợp lệ không.
// PUBLISHED không đạt được qua save: template national được tạo thẳng ở
// PUBLISHED, bài local chỉ lên PUBLISHED qua worker quét bài đến hạn.
// Bài đã PUBLISHED vẫn lưu sửa nội dung được, giữ nguyên PUBLISHED.
func ValidateStatusTransition(from string, to string) bool {
	if !IsValidStatus(to) {
		return false
	}
	switch from {
	case StatusDraft, StatusScheduled:
		return to == StatusDraft || to == StatusScheduled
	case StatusPublished:
		return to == StatusPublished
	default:
		// Asset mới chưa có trạng thái, chấp nhận mọi trạng thái hợp lệ
		return true
	}
}
