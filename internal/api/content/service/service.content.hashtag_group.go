// Package contentsvc - service HashtagGroup.
package contentsvc

import (
	"context"
	"fmt"

	contentdto "franchise_social/internal/api/content/dto"
	models "franchise_social/internal/api/content/models"
	basesvc "franchise_social/internal/api/base/service"
	"franchise_social/internal/common"
	"franchise_social/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HashtagGroupService là cấu trúc chứa các phương thức liên quan đến nhóm hashtag
type HashtagGroupService struct {
	*basesvc.BaseServiceMongoImpl[models.HashtagGroup]
}

// NewHashtagGroupService tạo mới HashtagGroupService
func NewHashtagGroupService() (*HashtagGroupService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.HashtagGroups)
	if !exist {
		return nil, fmt.Errorf("failed to get hashtag_groups collection: %v", common.ErrNotFound)
	}

	return &HashtagGroupService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.HashtagGroup](collection),
	}, nil
}

// Create tạo nhóm hashtag mới trong workspace
func (s *HashtagGroupService) Create(ctx context.Context, workspaceID primitive.ObjectID, input *contentdto.HashtagGroupCreateInput) (*models.HashtagGroup, error) {
	group := models.HashtagGroup{
		WorkspaceID: workspaceID,
		Name:        input.Name,
		Content:     input.Content,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, group)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByWorkspace trả về các nhóm hashtag của workspace, mới nhất trước
func (s *HashtagGroupService) ListByWorkspace(ctx context.Context, workspaceID primitive.ObjectID) ([]models.HashtagGroup, error) {
	filter := bson.M{"workspaceId": workspaceID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}
