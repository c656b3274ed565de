package main

import (
	"context"

	"franchise_social/config"
	authmodels "franchise_social/internal/api/auth/models"
	contentmodels "franchise_social/internal/api/content/models"
	mediamodels "franchise_social/internal/api/media/models"
	"franchise_social/internal/database"
	"franchise_social/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.Workspaces = "auth_workspaces"
	global.MongoDB_ColNames.Assets = "content_assets"
	global.MongoDB_ColNames.HashtagGroups = "hashtag_groups"
	global.MongoDB_ColNames.MediaFiles = "media_files"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	dbName := global.ServerConfig.MongoDB_DBName
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, dbName, []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Workspaces,
		global.MongoDB_ColNames.Assets,
		global.MongoDB_ColNames.HashtagGroups,
		global.MongoDB_ColNames.MediaFiles,
	}); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err) // Ghi log lỗi nếu đảm bảo database và collection thất bại
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Workspaces), authmodels.Workspace{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Assets), contentmodels.Asset{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.HashtagGroups), contentmodels.HashtagGroup{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.MediaFiles), mediamodels.MediaFile{})

	// GridFS bucket chứa bytes của media files
	global.MediaBucket, err = database.GetGridFSBucket(db, global.ServerConfig.MediaBucketName)
	if err != nil {
		logrus.Fatalf("Failed to initialize GridFS bucket: %v", err)
	}
	logrus.Info("Initialized GridFS media bucket")
}
