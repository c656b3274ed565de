// package basesvc cung cấp các service cơ bản cho việc tương tác với MongoDB
package basesvc

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "franchise_social/internal/api/base/models"
	"franchise_social/internal/api/events"
	"franchise_social/internal/common"
	"franchise_social/internal/utility"
)

// UpdateData định nghĩa kiểu dữ liệu cho partial update
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi insert (upsert tạo mới)
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Các trường cần xóa
	Push        map[string]interface{} `bson:"$push,omitempty"`        // Các trường cần thêm vào array
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`    // Các trường cần thêm vào set
	Inc         map[string]interface{} `bson:"$inc,omitempty"`         // Các trường cần tăng giá trị (revision)
}

// ToUpdateData chuyển đổi interface{} thành UpdateData
func ToUpdateData(data interface{}) (*UpdateData, error) {
	// Nếu data đã là UpdateData, return luôn
	if update, ok := data.(*UpdateData); ok {
		return update, nil
	}

	if update, ok := data.(UpdateData); ok {
		return &update, nil
	}

	// Nếu data là []byte (BSON raw), unmarshal trực tiếp
	if rawData, ok := data.([]byte); ok {
		update := &UpdateData{}
		if err := bson.Unmarshal(bson.Raw(rawData), update); err != nil {
			return nil, err
		}
		return update, nil
	}

	// Chuyển data thành map
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}

	// Nếu data có sẵn các operator MongoDB ($set, $unset, etc)
	// Xây dựng UpdateData từ map trực tiếp
	if _, hasSet := dataMap["$set"]; hasSet {
		update := &UpdateData{}
		if setVal, ok := dataMap["$set"].(map[string]interface{}); ok {
			update.Set = setVal
		}
		if unsetVal, ok := dataMap["$unset"].(map[string]interface{}); ok {
			update.Unset = unsetVal
		}
		if setOnInsertVal, ok := dataMap["$setOnInsert"].(map[string]interface{}); ok {
			update.SetOnInsert = setOnInsertVal
		}
		if pushVal, ok := dataMap["$push"].(map[string]interface{}); ok {
			update.Push = pushVal
		}
		if addToSetVal, ok := dataMap["$addToSet"].(map[string]interface{}); ok {
			update.AddToSet = addToSetVal
		}
		if incVal, ok := dataMap["$inc"].(map[string]interface{}); ok {
			update.Inc = incVal
		}
		return update, nil
	}

	// Nếu data là map thường, wrap trong $set
	return &UpdateData{
		Set: dataMap,
	}, nil
}

// ====================================
// INTERFACE VÀ STRUCT
// ====================================

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	// NHÓM 1: CÁC HÀM CHUẨN MONGODB DRIVER
	// ====================================

	// 1.1 Thao tác Insert
	InsertOne(ctx context.Context, data Model) (Model, error)
	InsertMany(ctx context.Context, data []Model) ([]Model, error)

	// 1.2 Thao tác Find
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)

	// 1.3 Thao tác Update
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (Model, error)
	UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error)

	// 1.4 Thao tác Delete
	DeleteOne(ctx context.Context, filter interface{}) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)

	// 1.5 Thao tác Atomic
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (Model, error)
	FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (Model, error)

	// 1.6 Các thao tác khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)

	// NHÓM 2: CÁC HÀM TIỆN ÍCH MỞ RỘNG
	// ================================

	// 2.1 Các hàm Find mở rộng
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)

	// 2.2 Các hàm Update/Delete mở rộng
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error

	// 2.3 Các hàm Upsert tiện ích
	Upsert(ctx context.Context, filter interface{}, data interface{}) (Model, error)

	// 2.4 Các hàm kiểm tra
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl định nghĩa struct triển khai các phương thức cơ bản cho service
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewBaseServiceMongo tạo mới một BaseServiceImpl
// Parameters:
//   - collection: Collection MongoDB
//
// Returns:
//   - *BaseServiceMongoImpl[T]: Instance mới của BaseServiceMongoImpl
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB (dùng bởi service domain khi cần truy cập trực tiếp)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// ====================================
// NHÓM 1: CÁC HÀM CHUẨN MONGODB DRIVER
// ====================================

// 1.1 Thao tác Insert
// -------------------

// InsertOne tạo mới một bản ghi trong database
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	// Áp dụng default từ struct tag (chỉ set field đang zero)
	applyInsertDefaultsToModel(&data)

	// Chuyển data thành map để thêm timestamps
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Loại bỏ các field empty string để sparse unique index hoạt động đúng
	// Sparse index chỉ bỏ qua null/không tồn tại, không bỏ qua empty string
	for key, value := range dataMap {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(dataMap, key)
		}
	}

	// Thêm timestamps
	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Lấy lại document vừa tạo
	var created T
	err = s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpInsert,
		Document:       created,
	})
	return created, nil
}

// InsertMany tạo nhiều bản ghi trong database
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) ([]T, error) {
	var documents []interface{}
	now := time.Now().UnixMilli()

	for i := range data {
		applyInsertDefaultsToModel(&data[i])
	}
	for _, item := range data {
		dataMap, err := utility.ToMap(item)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		dataMap["createdAt"] = now
		dataMap["updatedAt"] = now
		documents = append(documents, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Lấy lại các documents vừa tạo
	var created []T
	filter := bson.M{"_id": bson.M{"$in": result.InsertedIDs}}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	err = cursor.All(ctx, &created)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	for i := range created {
		events.EmitDataChanged(ctx, events.DataChangeEvent{
			CollectionName: s.collection.Name(),
			Operation:      events.OpInsert,
			Document:       created[i],
		})
	}
	return created, nil
}

// 1.2 Thao tác Find
// ----------------

// FindOne tìm một document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T

	if filter == nil {
		filter = bson.D{}
	}

	if opts == nil {
		opts = options.FindOne()
	}

	findResult := s.collection.FindOne(ctx, filter, opts)
	if err := findResult.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	if err := findResult.Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		// Lỗi decode BSON thường là lỗi format, không phải lỗi MongoDB command
		return zero, common.NewError(
			common.ErrCodeValidationFormat,
			"Lỗi định dạng dữ liệu khi decode từ MongoDB",
			common.StatusBadRequest,
			err,
		)
	}

	return result, nil
}

// Find tìm tất cả bản ghi theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	// Xử lý filter rỗng hoặc nil
	if filter == nil {
		filter = bson.D{}
	} else {
		if filterMap, ok := filter.(map[string]interface{}); ok && len(filterMap) == 0 {
			filter = bson.D{}
		}
	}

	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Đảm bảo luôn trả về mảng, không phải nil
	if results == nil {
		results = []T{}
	}

	return results, nil
}

// 1.3 Thao tác Update
// ------------------

// UpdateOne cập nhật một document
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	var zero T

	if filter == nil {
		filter = bson.D{}
	}

	if opts == nil {
		opts = options.Update().SetUpsert(false)
	}

	// Chuyển update thành UpdateData
	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Thêm updatedAt vào $set
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	// Update và lấy lại document trong một thao tác. Refetch bằng filter
	// gốc sẽ trượt khi update làm thay đổi chính field nằm trong filter
	// (ví dụ $inc một counter mà filter đang so sánh).
	findOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if opts.Upsert != nil {
		findOpts.SetUpsert(*opts.Upsert)
	}

	var updated T
	err = s.collection.FindOneAndUpdate(ctx, filter, updateData, findOpts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpUpdate,
		Document:       updated,
	})
	return updated, nil
}

// UpdateMany cập nhật nhiều document
func (s *BaseServiceMongoImpl[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	if opts == nil {
		opts = options.Update().SetUpsert(false)
	}

	// Chuyển update thành UpdateData
	updateData, err := ToUpdateData(update)
	if err != nil {
		return 0, common.ErrInvalidFormat
	}

	// Thêm updatedAt vào $set
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	result, err := s.collection.UpdateMany(ctx, filter, updateData, opts)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return result.ModifiedCount, nil
}

// 1.4 Thao tác Delete
// ------------------

// DeleteOne xóa một document
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	if filter == nil {
		filter = bson.D{}
	}

	// Lấy document cần xóa để phát event sau khi xóa
	var existing T
	err := s.collection.FindOne(ctx, filter).Decode(&existing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return common.ErrNotFound
		}
		return common.ConvertMongoError(err)
	}

	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}

	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpDelete,
		Document:       existing,
	})
	return nil
}

// DeleteMany xóa nhiều document
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return result.DeletedCount, nil
}

// 1.5 Thao tác Atomic
// ------------------

// FindOneAndUpdate tìm và cập nhật một document
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (T, error) {
	var zero T

	if filter == nil {
		filter = bson.D{}
	}

	if opts == nil {
		opts = options.FindOneAndUpdate()
	}

	// Chuyển update thành UpdateData
	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Thêm updatedAt vào updateData
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	var result T
	err = s.collection.FindOneAndUpdate(ctx, filter, updateData, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpUpdate,
		Document:       result,
	})
	return result, nil
}

// FindOneAndDelete tìm và xóa một document
func (s *BaseServiceMongoImpl[T]) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (T, error) {
	var zero T

	if filter == nil {
		filter = bson.D{}
	}

	if opts == nil {
		opts = options.FindOneAndDelete()
	}

	var result T
	err := s.collection.FindOneAndDelete(ctx, filter, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpDelete,
		Document:       result,
	})
	return result, nil
}

// 1.6 Các thao tác khác
// --------------------

// CountDocuments đếm số lượng document
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return count, nil
}

// Distinct lấy danh sách các giá trị duy nhất
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.D{}
	}

	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return values, nil
}

// ====================================
// NHÓM 2: CÁC HÀM TIỆN ÍCH MỞ RỘNG
// ====================================

// 2.1 Các hàm Find mở rộng
// -----------------------

// FindOneById tìm một document theo ObjectId
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	var zero T
	filter := bson.M{"_id": id}
	err := s.collection.FindOne(ctx, filter).Decode(&zero)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return zero, nil
}

// FindManyByIds tìm nhiều document theo danh sách ID
func (s *BaseServiceMongoImpl[T]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return results, nil
}

// FindWithPagination tìm tất cả bản ghi với phân trang
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.D{}
	}

	if opts == nil {
		opts = options.Find()
	}

	// Ghi đè skip và limit cho phân trang
	// Đảm bảo page >= 1 và limit > 0 để tránh skip âm
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	opts.SetSkip(skip)
	opts.SetLimit(limit)

	// Lấy tổng số bản ghi
	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Lấy dữ liệu theo trang
	var items []T
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Tính tổng số trang bằng công thức làm tròn lên: (total + limit - 1) / limit
	var totalPage int64
	if total == 0 {
		totalPage = 0
	} else {
		totalPage = (total + limit - 1) / limit
	}

	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// 2.2 Các hàm Update/Delete mở rộng
// --------------------------------

// UpdateById cập nhật một document theo ObjectId
// Parameters:
//   - ctx: Context cho việc hủy bỏ hoặc timeout
//   - id: ObjectId của document cần cập nhật
//   - data: Dữ liệu cần cập nhật (có thể là T hoặc UpdateData)
//
// Returns:
//   - T: Document đã được cập nhật
//   - error: Lỗi nếu có
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (T, error) {
	var zero T
	filter := bson.M{"_id": id}

	// Chuyển data thành UpdateData
	updateData, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Thêm updatedAt vào $set
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	opts := options.Update().SetUpsert(false)

	result, err := s.collection.UpdateOne(ctx, filter, updateData, opts)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	if result.MatchedCount == 0 {
		return zero, common.ErrNotFound
	}

	// Lấy lại document đã update
	var updated T
	err = s.collection.FindOne(ctx, filter).Decode(&updated)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpUpdate,
		Document:       updated,
	})
	return updated, nil
}

// DeleteById xóa một document theo ObjectId
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	// Lấy document cần xóa để phát event sau khi xóa
	var existing T
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return common.ErrNotFound
		}
		return common.ConvertMongoError(err)
	}

	filter := bson.M{"_id": id}
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}

	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}

	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      events.OpDelete,
		Document:       existing,
	})
	return nil
}

// 2.3 Các hàm Upsert tiện ích
// --------------------------

// Upsert thực hiện thao tác update nếu tồn tại, insert nếu chưa tồn tại
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data interface{}) (T, error) {
	var zero T

	logrus.WithFields(logrus.Fields{
		"collection": s.collection.Name(),
		"filter":     filter,
	}).Debug("Upsert: Bắt đầu upsert")

	// Kiểm tra document hiện tại để biết là update hay insert
	var existing T
	err := s.collection.FindOne(ctx, filter).Decode(&existing)
	isExisting := err == nil
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return zero, common.ConvertMongoError(err)
	}

	// Chuyển data thành UpdateData
	updateData, err := ToUpdateData(data)
	if err != nil {
		logrus.WithError(err).Error("Upsert: Lỗi chuyển đổi data thành UpdateData")
		return zero, common.ErrInvalidFormat
	}

	// Thêm timestamps
	now := time.Now().UnixMilli()
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = now
	if !isExisting {
		if updateData.SetOnInsert == nil {
			updateData.SetOnInsert = make(map[string]interface{})
		}
		updateData.SetOnInsert["createdAt"] = now
	}

	// Khi tạo mới: áp dụng default từ struct tag (chỉ set khi insert, qua $setOnInsert)
	if !isExisting {
		defaults := getInsertDefaultsFromModelType(reflect.TypeOf(zero))
		if len(defaults) > 0 {
			if updateData.SetOnInsert == nil {
				updateData.SetOnInsert = make(map[string]interface{})
			}
			for k, v := range defaults {
				if _, inSet := updateData.Set[k]; !inSet {
					updateData.SetOnInsert[k] = v
				}
			}
		}
	}

	// Loại bỏ các field empty string trong $set để sparse unique index hoạt động đúng
	for key, value := range updateData.Set {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(updateData.Set, key)
			if updateData.Unset == nil {
				updateData.Unset = make(map[string]interface{})
			}
			updateData.Unset[key] = ""
		}
	}

	// Sort theo _id để đảm bảo chỉ update một document nhất quán
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	var upserted T
	err = s.collection.FindOneAndUpdate(ctx, filter, updateData, opts).Decode(&upserted)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"filter": filter,
			"error":  err.Error(),
		}).Error("Upsert: Lỗi khi thực hiện FindOneAndUpdate")
		return zero, common.ConvertMongoError(err)
	}

	op := events.OpUpdate
	if !isExisting {
		op = events.OpUpsert
	}
	events.EmitDataChanged(ctx, events.DataChangeEvent{
		CollectionName: s.collection.Name(),
		Operation:      op,
		Document:       upserted,
	})
	return upserted, nil
}

// 2.4 Các hàm kiểm tra
// -------------------

// DocumentExists kiểm tra document có tồn tại theo filter hay không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, common.ConvertMongoError(err)
	}

	return count > 0, nil
}

// ====================================
// CÁC HÀM HỖ TRỢ NỘI BỘ
// ====================================

// applyInsertDefaultsToModel áp dụng giá trị default từ struct tag lên model (chỉ set field đang zero).
// Dùng cho InsertOne/InsertMany để document tạo mới có đủ field có tag default.
// ptr phải là con trỏ tới struct (ví dụ &data).
func applyInsertDefaultsToModel(ptr interface{}) {
	if ptr == nil {
		return
	}
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr {
		return
	}
	struc := v.Elem()
	if struc.Kind() != reflect.Struct {
		return
	}
	rt := struc.Type()
	defaults := getInsertDefaultsFromModelType(rt)
	if len(defaults) == 0 {
		return
	}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		bsonTag := f.Tag.Get("bson")
		if bsonTag == "" || bsonTag == "-" {
			continue
		}
		bsonKey := strings.TrimSpace(strings.Split(bsonTag, ",")[0])
		if bsonKey == "" {
			continue
		}
		defaultVal, ok := defaults[bsonKey]
		if !ok {
			continue
		}
		fieldVal := struc.Field(i)
		if !fieldVal.CanSet() || !fieldVal.IsZero() {
			continue
		}
		rv := reflect.ValueOf(defaultVal)
		if rv.Type().AssignableTo(fieldVal.Type()) {
			fieldVal.Set(rv)
		} else if rv.Type().ConvertibleTo(fieldVal.Type()) {
			fieldVal.Set(rv.Convert(fieldVal.Type()))
		}
	}
}

// getInsertDefaultsFromModelType đọc struct tag default trên model và trả về map[bsonKey]giá trị mặc định.
// Hỗ trợ: bool (true/false), int, int64, string.
func getInsertDefaultsFromModelType(rt reflect.Type) map[string]interface{} {
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}
	out := make(map[string]interface{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		defaultStr := f.Tag.Get("default")
		if defaultStr == "" {
			continue
		}
		bsonTag := f.Tag.Get("bson")
		if bsonTag == "" || bsonTag == "-" {
			continue
		}
		bsonKey := strings.TrimSpace(strings.Split(bsonTag, ",")[0])
		if bsonKey == "" {
			continue
		}
		val := parseDefaultValue(defaultStr, f.Type)
		if val != nil {
			out[bsonKey] = val
		}
	}
	return out
}

// parseDefaultValue chuyển chuỗi default tag sang giá trị đúng kiểu (bool, int, int64, string).
func parseDefaultValue(s string, t reflect.Type) interface{} {
	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return int32(0)
		}
		return int32(n)
	case reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return int64(0)
		}
		return n
	case reflect.String:
		return s
	default:
		return nil
	}
}
