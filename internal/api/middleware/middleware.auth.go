package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "franchise_social/internal/api/auth/models"
	authsvc "franchise_social/internal/api/auth/service"
	"franchise_social/internal/common"
	"franchise_social/internal/global"
	"franchise_social/internal/utility"
)

// AuthManager quản lý việc xác thực người dùng, dùng chung một instance cho toàn bộ request.
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManager     *AuthManager
	authManagerOnce sync.Once
)

// GetAuthManager trả về instance singleton của AuthManager
func GetAuthManager() (*AuthManager, error) {
	var initErr error
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			initErr = err
			return
		}
		authManager = &AuthManager{
			UserCRUD: userService,
			Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return authManager, nil
}

// findUserByToken tìm user theo JWT token.
// Token có thể nằm ở trường token (token mới nhất) hoặc trong mảng tokens (theo hwid).
func (m *AuthManager) findUserByToken(c fiber.Ctx, token string) (*authmodels.User, error) {
	if cached, ok := m.Cache.Get("auth:" + token); ok {
		if user, ok := cached.(*authmodels.User); ok {
			return user, nil
		}
	}

	user, err := m.UserCRUD.FindOne(c.Context(), bson.M{"token": token}, nil)
	if err != nil {
		user, err = m.UserCRUD.FindOne(c.Context(), bson.M{"tokens.jwtToken": token}, nil)
	}
	if err != nil {
		user, err = m.UserCRUD.FindOne(c.Context(), bson.M{
			"tokens": bson.M{"$elemMatch": bson.M{"jwtToken": token}},
		}, nil)
	}
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	m.Cache.Set("auth:"+token, &user)
	return &user, nil
}

// AuthMiddleware xác thực JWT token và gắn thông tin user vào context.
// Trả về 401 nếu token không hợp lệ hoặc user đã bị khóa.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		manager, err := GetAuthManager()
		if err != nil {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				"Không thể khởi tạo hệ thống xác thực",
				http.StatusInternalServerError,
				err.Error(),
			))
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthToken,
				common.ErrTokenMissing.Error(),
				http.StatusUnauthorized,
				nil,
			))
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// Xác thực chữ ký trước khi truy vấn database
		if _, err := utility.ParseToken(global.ServerConfig.JwtSecret, token); err != nil {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthToken,
				common.ErrTokenInvalid.Error(),
				http.StatusUnauthorized,
				nil,
			))
		}

		user, err := manager.findUserByToken(c, token)
		if err != nil {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthToken,
				common.ErrTokenInvalid.Error(),
				http.StatusUnauthorized,
				nil,
			))
		}

		if user.IsBlock {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				http.StatusUnauthorized,
				nil,
			))
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}
