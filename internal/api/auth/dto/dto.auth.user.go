package authdto

// UserRegisterInput đầu vào đăng ký người dùng.
type UserRegisterInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,strong_password"`
	WorkspaceID string `json:"workspaceId" validate:"required" transform:"str_objectid"`
}

// UserLoginInput đầu vào đăng nhập người dùng.
// Hwid định danh thiết bị, mỗi thiết bị giữ một token riêng.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name      string `json:"name" validate:"omitempty,no_xss"`
	AvatarURL string `json:"avatarUrl"`
}

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,strong_password"`
	WorkspaceID string `json:"workspaceId" validate:"required" transform:"str_objectid"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD).
type UserUpdateInput struct {
	Name      string `json:"name" validate:"omitempty,no_xss"`
	AvatarURL string `json:"avatarUrl"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}
