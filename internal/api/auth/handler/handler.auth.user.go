package authhdl

import (
	"fmt"

	authdto "franchise_social/internal/api/auth/dto"
	models "franchise_social/internal/api/auth/models"
	authsvc "franchise_social/internal/api/auth/service"
	basehdl "franchise_social/internal/api/base/handler"
	basesvc "franchise_social/internal/api/base/service"
	"franchise_social/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// sanitizeUser xóa các field nhạy cảm trước khi trả về client
func sanitizeUser(user *models.User) {
	user.Password = ""
	user.Salt = ""
	user.Tokens = nil
}

// HandleRegister xử lý đăng ký người dùng mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.UserRegisterInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	sanitizeUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLogin xử lý đăng nhập bằng email/password
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Password = ""
	user.Salt = ""
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	var input authdto.UserLogoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	err = h.userService.Logout(c.Context(), objID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile lấy thông tin profile của người dùng
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	user, err := h.userService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	sanitizeUser(&user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleUpdateProfile cập nhật thông tin profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID := c.Locals("user_id")
	if userID == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	var input authdto.UserChangeInfoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{}}
	if input.Name != "" {
		update.Set["name"] = input.Name
	}
	if input.AvatarURL != "" {
		update.Set["avatarUrl"] = input.AvatarURL
	}
	updatedUser, err := h.userService.BaseServiceMongoImpl.UpdateById(c.Context(), objID, update)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	sanitizeUser(&updatedUser)
	h.HandleResponse(c, updatedUser, nil)
	return nil
}

// HandleBlockUser khóa tài khoản theo email (chỉ workspace national)
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.SetBlock(c.Context(), input.Email, true, input.Note)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	sanitizeUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleUnBlockUser mở khóa tài khoản theo email (chỉ workspace national)
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.SetBlock(c.Context(), input.Email, false, "")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	sanitizeUser(user)
	h.HandleResponse(c, user, nil)
	return nil
}
