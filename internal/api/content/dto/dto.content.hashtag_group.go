package contentdto

// HashtagGroupCreateInput đầu vào tạo nhóm hashtag.
// Content là chuỗi hashtag tự do, ví dụ "#khuyenmai #cuahang".
type HashtagGroupCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Content string `json:"content" validate:"required,no_xss" maxLength:"1000"`
}

// HashtagGroupUpdateInput đầu vào cập nhật nhóm hashtag (CRUD).
type HashtagGroupUpdateInput struct {
	Name    string `json:"name" validate:"omitempty,no_xss" maxLength:"200"`
	Content string `json:"content" validate:"omitempty,no_xss" maxLength:"1000"`
}
