package contentdto

// AssetCreateInput đầu vào tạo asset.
// IsNationalTemplate=true chỉ hợp lệ với user thuộc workspace national,
// khi đó asset được tạo thẳng ở trạng thái PUBLISHED.
type AssetCreateInput struct {
	MediaFileID        string            `json:"mediaFileId" transform:"str_objectid_ptr"`
	MediaURL           string            `json:"mediaUrl"`
	SourceLink         string            `json:"sourceLink" validate:"omitempty,url"`
	Caption            string            `json:"caption" validate:"omitempty,no_xss" maxLength:"5000"`
	PlatformContent    map[string]string `json:"platformContent"`
	PlatformSettings   map[string]bool   `json:"platformSettings"`
	IsNationalTemplate bool              `json:"isNationalTemplate"`
	ScheduledFor       *int64            `json:"scheduledFor"`
}

// AssetUpdateInput đầu vào cập nhật asset (CRUD).
type AssetUpdateInput struct {
	SourceLink       string            `json:"sourceLink" validate:"omitempty,url"`
	Caption          string            `json:"caption" validate:"omitempty,no_xss" maxLength:"5000"`
	PlatformContent  map[string]string `json:"platformContent"`
	PlatformSettings map[string]bool   `json:"platformSettings"`
}

// AssetSaveInput bundle lưu asset từ màn soạn thảo.
// ActivePlatform là tab đang mở, caption của tab này được mirror
// vào caption gốc. Revision là revision client đang giữ, dùng để
// phát hiện xung đột khi hai người cùng sửa.
type AssetSaveInput struct {
	ActivePlatform   string            `json:"activePlatform" validate:"omitempty,oneof=facebook instagram linkedin"`
	Caption          string            `json:"caption" validate:"omitempty,no_xss" maxLength:"5000"`
	PlatformContent  map[string]string `json:"platformContent"`
	PlatformSettings map[string]bool   `json:"platformSettings"`
	Status           string            `json:"status" validate:"required,oneof=DRAFT SCHEDULED PUBLISHED"`
	ScheduledFor     *int64            `json:"scheduledFor"`
	Revision         int64             `json:"revision"`
}

// AssetCloneInput đầu vào clone template national về workspace local.
// Workspace đích lấy từ context của user đang đăng nhập.
type AssetCloneInput struct{}

// AssetReplaceMediaInput đầu vào thay ảnh của asset.
type AssetReplaceMediaInput struct {
	MediaFileID string `json:"mediaFileId" validate:"required" transform:"str_objectid_ptr"`
}
