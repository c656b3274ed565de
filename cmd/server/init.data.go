package main

import (
	"context"
	"errors"

	authmodels "franchise_social/internal/api/auth/models"
	authsvc "franchise_social/internal/api/auth/service"
	"franchise_social/internal/common"
	"franchise_social/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData seed workspace national mặc định nếu chưa có.
// Template toàn hệ thống thuộc workspace này, các workspace local
// được tạo qua API quản trị.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	workspaceService, err := authsvc.NewWorkspaceService()
	if err != nil {
		log.Fatalf("Failed to initialize workspace service: %v", err)
	}

	ctx := context.Background()
	existing, err := workspaceService.FindOne(ctx, bson.M{"type": authmodels.WorkspaceTypeNational}, nil)
	if err == nil {
		log.Infof("✅ [INIT] National workspace already exists (ID: %s)", existing.ID.Hex())
		return
	}
	if !errors.Is(err, common.ErrNotFound) {
		log.Fatalf("Failed to check national workspace: %v", err)
	}

	national := authmodels.Workspace{
		Name:     "National",
		Code:     "national",
		Type:     authmodels.WorkspaceTypeNational,
		IsActive: true,
	}
	created, err := workspaceService.InsertOne(ctx, national)
	if err != nil {
		log.Fatalf("Failed to create national workspace: %v", err)
	}

	log.Infof("✅ [INIT] National workspace created (ID: %s)", created.ID.Hex())
}
