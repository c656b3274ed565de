package main

import (
	"context"

	authmodels "franchise_social/internal/api/auth/models"
	"franchise_social/internal/api/events"
	"franchise_social/internal/api/middleware"
	"franchise_social/internal/global"
	"franchise_social/internal/logger"
)

// InitEventHandlers đăng ký các handler phản ứng khi dữ liệu thay đổi qua CRUD.
// Gọi một lần khi khởi động, sau InitGlobal.
func InitEventHandlers() {
	// Ghi audit log cho mọi thao tác ghi dữ liệu
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		auditLog := logger.GetAuditLogger()
		fields := map[string]interface{}{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}
		if wsID := events.GetWorkspaceIDFromDocument(e.Document); !wsID.IsZero() {
			fields["workspace_id"] = wsID.Hex()
		}
		auditLog.WithFields(fields).Info("Data changed")
	})

	// Xóa cache workspace khi workspace bị sửa hoặc xóa,
	// để thay đổi isActive/type có hiệu lực ngay ở middleware
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Workspaces {
			return
		}
		switch doc := e.Document.(type) {
		case authmodels.Workspace:
			middleware.InvalidateWorkspaceCache(doc.ID.Hex())
		case *authmodels.Workspace:
			if doc != nil {
				middleware.InvalidateWorkspaceCache(doc.ID.Hex())
			}
		}
	})
}
