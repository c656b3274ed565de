// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "franchise_social/internal/api/auth/dto"
	models "franchise_social/internal/api/auth/models"
	basesvc "franchise_social/internal/api/base/service"
	"franchise_social/internal/common"
	"franchise_social/internal/global"
	"franchise_social/internal/utility"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	workspaceService *basesvc.BaseServiceMongoImpl[models.Workspace]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	workspaceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Workspaces)
	if !exist {
		return nil, fmt.Errorf("failed to get workspaces collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		workspaceService:     basesvc.NewBaseServiceMongo[models.Workspace](workspaceCollection),
	}, nil
}

// Register đăng ký người dùng mới vào một workspace.
// Password được hash bằng bcrypt kèm salt riêng cho từng user.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	workspaceID := utility.String2ObjectID(input.WorkspaceID)
	workspace, err := s.workspaceService.FindOneById(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Workspace không tồn tại", common.StatusBadRequest, nil)
		}
		return nil, err
	}
	if !workspace.IsActive {
		return nil, common.NewError(common.ErrCodeValidationInput, "Workspace đã bị vô hiệu hóa", common.StatusBadRequest, nil)
	}

	salt := uuid.New().String()
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password+salt), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Register: Lỗi hash password")
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể xử lý mật khẩu", common.StatusInternalServerError, nil)
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    string(hashed),
		Salt:        salt,
		WorkspaceID: workspaceID,
		Tokens:      []models.Token{},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Email đã được sử dụng", common.StatusConflict, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Đăng ký thành công")
	return &created, nil
}

// Login xác thực email/password và phát hành JWT token cho thiết bị (hwid).
// Mỗi hwid giữ một token riêng trong mảng tokens, field token luôn là token mới nhất.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password+user.Salt)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	var idTokenExist int = -1
	for i, _token := range user.Tokens {
		if _token.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// SetBlock khóa hoặc mở khóa tài khoản theo email.
// Khi khóa, toàn bộ token hiện có bị thu hồi.
func (s *UserService) SetBlock(ctx context.Context, email string, isBlock bool, note string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   isBlock,
			"blockNote": note,
		},
	}
	if isBlock {
		updateData.Set["tokens"] = []models.Token{}
		updateData.Set["token"] = ""
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
