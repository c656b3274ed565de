package database

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetGridFSBucket trả về GridFS bucket chứa dữ liệu nhị phân của media files.
// Bucket được tạo lazy trên database đã cho với tên bucket từ cấu hình.
func GetGridFSBucket(db *mongo.Database, bucketName string) (*gridfs.Bucket, error) {
	if db == nil {
		return nil, fmt.Errorf("database is nil")
	}

	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFS bucket %s: %w", bucketName, err)
	}

	return bucket, nil
}
