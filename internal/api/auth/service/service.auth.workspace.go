// Package authsvc - service Workspace.
package authsvc

import (
	"context"
	"fmt"

	models "franchise_social/internal/api/auth/models"
	basesvc "franchise_social/internal/api/base/service"
	"franchise_social/internal/common"
	"franchise_social/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkspaceService là cấu trúc chứa các phương thức liên quan đến workspace
type WorkspaceService struct {
	*basesvc.BaseServiceMongoImpl[models.Workspace]
}

// NewWorkspaceService tạo mới WorkspaceService
func NewWorkspaceService() (*WorkspaceService, error) {
	workspaceCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Workspaces)
	if !exist {
		return nil, fmt.Errorf("failed to get workspaces collection: %v", common.ErrNotFound)
	}

	return &WorkspaceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Workspace](workspaceCollection),
	}, nil
}

// SetActive bật hoặc tắt trạng thái hoạt động của workspace.
// Workspace bị tắt sẽ chặn toàn bộ request của user trực thuộc.
func (s *WorkspaceService) SetActive(ctx context.Context, id primitive.ObjectID, isActive bool) (*models.Workspace, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isActive": isActive,
		},
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
