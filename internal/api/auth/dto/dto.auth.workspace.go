package authdto

// WorkspaceCreateInput đầu vào tạo workspace (CRUD).
type WorkspaceCreateInput struct {
	Name string `json:"name" validate:"required,no_xss"`
	Code string `json:"code" validate:"required,no_xss"`
	Type string `json:"type" validate:"required,oneof=national local"`
}

// WorkspaceUpdateInput đầu vào cập nhật workspace (CRUD).
type WorkspaceUpdateInput struct {
	Name     string `json:"name" validate:"omitempty,no_xss"`
	IsActive *bool  `json:"isActive"`
}
