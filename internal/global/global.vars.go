package global

import (
	"franchise_social/config"
	"franchise_social/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Workspaces    string // Tên collection cho workspace (national / local)
	Assets        string // Tên collection cho bài đăng và template nội dung
	HashtagGroups string // Tên collection cho nhóm hashtag
	MediaFiles    string // Tên collection cho metadata file media
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection
var MediaBucket *gridfs.Bucket                                             // GridFS bucket chứa dữ liệu nhị phân media

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
