package basehdl

// Package basehdl chứa các handler xử lý request HTTP trong ứng dụng.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "franchise_social/internal/api/base/service"
	"franchise_social/internal/common"
	"franchise_social/internal/global"
	"franchise_social/internal/utility"
)

// FilterOptions cấu hình cho việc validate filter
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"salt",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ====================================
// WORKSPACE HELPER FUNCTIONS
// ====================================

// hasWorkspaceIDField kiểm tra model có field WorkspaceID không (dùng reflection)
// Field này dùng cho phân quyền dữ liệu - xác định dữ liệu thuộc về workspace nào
func (h *BaseHandler[T, CreateInput, UpdateInput]) hasWorkspaceIDField() bool {
	var zero T
	val := reflect.ValueOf(zero)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return false
	}

	field := val.FieldByName("WorkspaceID")
	return field.IsValid()
}

// GetActiveWorkspaceID lấy workspace ID hiện hành từ context (đã được middleware set)
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetActiveWorkspaceID(c fiber.Ctx) *primitive.ObjectID {
	wsIDStr, ok := c.Locals("workspace_id").(string)
	if !ok || wsIDStr == "" {
		return nil
	}
	wsID, err := primitive.ObjectIDFromHex(wsIDStr)
	if err != nil {
		return nil
	}
	return &wsID
}

// SetWorkspaceID tự động gán workspaceId vào model (dùng reflection)
// CHỈ gán nếu model có field WorkspaceID và model chưa có giá trị (zero)
// Ưu tiên giá trị từ request body
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetWorkspaceID(model interface{}, wsID primitive.ObjectID) {
	if !h.hasWorkspaceIDField() {
		return
	}
	if wsID.IsZero() {
		return
	}

	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	field := val.FieldByName("WorkspaceID")
	if !field.IsValid() || !field.CanSet() {
		return
	}

	// Nếu đã có giá trị hợp lệ từ request body thì không override
	if field.Kind() == reflect.Ptr {
		if !field.IsNil() {
			currentPtr := field.Interface().(*primitive.ObjectID)
			if currentPtr != nil && !currentPtr.IsZero() {
				return
			}
		}
		field.Set(reflect.ValueOf(&wsID))
	} else {
		current := field.Interface().(primitive.ObjectID)
		if !current.IsZero() {
			return
		}
		field.Set(reflect.ValueOf(wsID))
	}
}

// GetWorkspaceIDFromModel lấy workspaceId từ model (dùng reflection)
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetWorkspaceIDFromModel(model interface{}) *primitive.ObjectID {
	if !h.hasWorkspaceIDField() {
		return nil
	}

	val := reflect.ValueOf(model)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	field := val.FieldByName("WorkspaceID")
	if !field.IsValid() {
		return nil
	}

	// Xử lý cả primitive.ObjectID và *primitive.ObjectID
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil
		}
		wsID := field.Interface().(*primitive.ObjectID)
		if wsID != nil && !wsID.IsZero() {
			return wsID
		}
	} else {
		wsID := field.Interface().(primitive.ObjectID)
		if !wsID.IsZero() {
			return &wsID
		}
	}

	return nil
}

// ValidateUserHasAccessToWorkspace kiểm tra user có quyền với workspace không.
// User quốc gia (national) được thao tác trên mọi workspace, user local chỉ được
// thao tác trên workspace của chính mình.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateUserHasAccessToWorkspace(c fiber.Ctx, wsID primitive.ObjectID) error {
	activeWsIDStr, ok := c.Locals("workspace_id").(string)
	if !ok || activeWsIDStr == "" {
		return common.NewError(common.ErrCodeAuthWorkspace, "Không có workspace context", common.StatusUnauthorized, nil)
	}
	activeWsID, err := primitive.ObjectIDFromHex(activeWsIDStr)
	if err != nil {
		return common.NewError(common.ErrCodeAuthWorkspace, "Workspace ID không hợp lệ", common.StatusUnauthorized, err)
	}

	if activeWsID == wsID {
		return nil
	}

	// User national được phép thao tác trên workspace khác
	if wsType, ok := c.Locals("workspace_type").(string); ok && wsType == "national" {
		return nil
	}

	return common.NewError(
		common.ErrCodeAuthWorkspace,
		"Không có quyền với workspace này",
		common.StatusForbidden,
		nil,
	)
}

// applyWorkspaceFilter tự động thêm filter workspaceId
// CHỈ áp dụng nếu model có field WorkspaceID (phân quyền dữ liệu)
func (h *BaseHandler[T, CreateInput, UpdateInput]) applyWorkspaceFilter(c fiber.Ctx, baseFilter map[string]interface{}) map[string]interface{} {
	if !h.hasWorkspaceIDField() {
		return baseFilter
	}

	// User national truy cập toàn hệ thống, không giới hạn workspace
	if wsType, ok := c.Locals("workspace_type").(string); ok && wsType == "national" {
		return baseFilter
	}

	activeWsID := h.GetActiveWorkspaceID(c)
	if activeWsID == nil {
		return baseFilter
	}

	if baseFilter == nil {
		baseFilter = make(map[string]interface{})
	}
	baseFilter["workspaceId"] = *activeWsID
	return baseFilter
}

// ValidateWorkspaceAccess kiểm tra user có quyền truy cập document này không
// CHỈ validate nếu model có field WorkspaceID (phân quyền dữ liệu)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateWorkspaceAccess(c fiber.Ctx, documentID string) error {
	if !h.hasWorkspaceIDField() {
		return nil
	}

	id, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return common.NewError(common.ErrCodeValidationInput, "ID không hợp lệ", common.StatusBadRequest, err)
	}

	doc, err := h.BaseService.FindOneById(c.Context(), id)
	if err != nil {
		return err
	}

	docWsID := h.GetWorkspaceIDFromModel(doc)
	if docWsID == nil {
		return nil
	}

	return h.ValidateUserHasAccessToWorkspace(c, *docWsID)
}

// ====================================
// PARSE & VALIDATE REQUEST
// ====================================

// ValidateInput thực hiện validate chi tiết dữ liệu đầu vào
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	// Validate với validator từ global
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Kiểm tra các trường đặc biệt
	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Chỉ xử lý nếu input là struct
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Kiểm tra các trường string
		if field.Kind() == reflect.String {
			// Kiểm tra độ dài tối đa (nếu có tag maxLength)
			if maxTag := fieldType.Tag.Get("maxLength"); maxTag != "" {
				maxLen, err := strconv.Atoi(maxTag)
				if err == nil && len(field.String()) > maxLen {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s vượt quá độ dài cho phép (%d ký tự)", fieldType.Name, maxLen),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}

		// Kiểm tra các trường số
		if field.Kind() == reflect.Int || field.Kind() == reflect.Int64 {
			if minTag := fieldType.Tag.Get("min"); minTag != "" {
				min, err := strconv.ParseInt(minTag, 10, 64)
				if err == nil && field.Int() < min {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải lớn hơn hoặc bằng %d", fieldType.Name, min),
						common.StatusBadRequest,
						nil,
					)
				}
			}

			if maxTag := fieldType.Tag.Get("max"); maxTag != "" {
				max, err := strconv.ParseInt(maxTag, 10, 64)
				if err == nil && field.Int() > max {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải nhỏ hơn hoặc bằng %d", fieldType.Name, max),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
//
// Parameters:
// - c: Fiber context
// - input: Con trỏ tới struct sẽ chứa dữ liệu được parse
//
// Returns:
// - error: Lỗi nếu có trong quá trình parse hoặc validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ParseRequestQuery parse và validate dữ liệu từ query string.
// Query string phải được encode dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestQuery(c fiber.Ctx, input interface{}) error {
	query := c.Query("query", "")

	reader := bytes.NewReader([]byte(query))
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ParseRequestParams parse và validate các tham số từ URI.
// Sử dụng Fiber's URI binding để parse các tham số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestParams(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().URI(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ====================================
// FILTER & OPTIONS
// ====================================

// ProcessFilter xử lý và validate filter từ request
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalize filter: chuyển đổi các string ObjectId thành ObjectID
	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter
// Hỗ trợ các trường có tên kết thúc bằng "Id" hoặc "ID"
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := (strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2) || field == "_id"

		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	// Hỗ trợ MongoDB Extended JSON format: {"$oid": "..."}
	if mapValue, ok := value.(map[string]interface{}); ok {
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok {
				if primitive.IsValidObjectID(oidStr) {
					objID, err := primitive.ObjectIDFromHex(oidStr)
					if err == nil {
						return objID
					}
				}
			}
			return value
		}
	}

	// Nếu là string và field là ID field, thử chuyển đổi thành ObjectID
	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			objID, err := primitive.ObjectIDFromHex(strValue)
			if err == nil {
				return objID
			}
		}
		return strValue
	}

	// Nếu là mảng, xử lý từng phần tử
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	// Nếu là map (cho các operator như $in, $nin, $eq, etc.), xử lý đệ quy
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter kiểm tra tính hợp lệ của filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields
	allowedOperators := h.filterOptions.AllowedOperators
	maxFields := h.filterOptions.MaxFields
	if maxFields == 0 {
		maxFields = 10
	}

	// Kiểm tra số lượng field
	if len(filter) > maxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường. Vui lòng giảm số lượng trường trong filter.", maxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	// Kiểm tra từng field và operator
	for field, value := range filter {
		if utility.Contains(deniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật. Vui lòng sử dụng các trường khác.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !utility.Contains(allowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, allowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// processMongoOptions xử lý options từ query string và chuyển đổi sang MongoDB options
func (h *BaseHandler[T, CreateInput, UpdateInput]) processMongoOptions(c fiber.Ctx, isFindOne bool) (interface{}, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	if err := h.validateMongoOptions(rawOptions); err != nil {
		return nil, err
	}

	// Parse sort với thứ tự được giữ nguyên từ JSON string gốc
	// (map Go không đảm bảo thứ tự key, nhưng sort đa trường thì thứ tự quan trọng)
	parseSortWithOrder := func(optionsJSON string) bson.D {
		sortBson := bson.D{}

		var tempOptions map[string]json.RawMessage
		if err := json.Unmarshal([]byte(optionsJSON), &tempOptions); err != nil {
			return sortBson
		}
		sortRaw, ok := tempOptions["sort"]
		if !ok {
			return sortBson
		}

		decoder := json.NewDecoder(bytes.NewReader(sortRaw))
		decoder.UseNumber()

		token, err := decoder.Token()
		if err != nil || token != json.Delim('{') {
			return sortBson
		}

		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				break
			}
			field, ok := keyToken.(string)
			if !ok {
				continue
			}

			valueToken, err := decoder.Token()
			if err != nil {
				break
			}

			var sortValue int
			if num, ok := valueToken.(json.Number); ok {
				intVal, err := num.Int64()
				if err != nil {
					continue
				}
				sortValue = int(intVal)
			} else {
				continue
			}

			// Chỉ chấp nhận 1 hoặc -1
			if sortValue != 1 && sortValue != -1 {
				continue
			}

			sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
		}

		return sortBson
	}

	// Chuyển đổi sang MongoDB options
	if isFindOne {
		opts := mongoopts.FindOne()
		if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
			opts.SetProjection(projection)
		}
		if _, ok := rawOptions["sort"].(map[string]interface{}); ok {
			if sortBson := parseSortWithOrder(optionsStr); len(sortBson) > 0 {
				opts.SetSort(sortBson)
			}
		}
		return opts, nil
	}

	opts := mongoopts.Find()
	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if _, ok := rawOptions["sort"].(map[string]interface{}); ok {
		if sortBson := parseSortWithOrder(optionsStr); len(sortBson) > 0 {
			opts.SetSort(sortBson)
		}
	}
	if limit, ok := rawOptions["limit"].(float64); ok {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok {
		opts.SetSkip(int64(skip))
	}
	return opts, nil
}

// validateMongoOptions kiểm tra tính hợp lệ của các options
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateMongoOptions(options map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields

	// Danh sách các options được phép
	allowedOptions := map[string]bool{
		"projection": true,
		"sort":       true,
		"limit":      true,
		"skip":       true,
	}

	for key := range options {
		if !allowedOptions[key] {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Option '%s' không được hỗ trợ. Các options được phép: projection, sort, limit, skip", key),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	// Validate projection
	if projection, ok := options["projection"].(map[string]interface{}); ok {
		for field := range projection {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong projection vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	// Validate sort
	if sort, ok := options["sort"].(map[string]interface{}); ok {
		for field, value := range sort {
			if utility.Contains(deniedFields, field) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Trường '%s' không được phép sử dụng trong sort vì lý do bảo mật", field),
					common.StatusBadRequest,
					nil,
				)
			}
			if v, ok := value.(float64); !ok || (v != 1 && v != -1) {
				return common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Giá trị sort cho trường '%s' phải là 1 (tăng dần) hoặc -1 (giảm dần), giá trị hiện tại: %v", field, value),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	// Validate limit
	if limit, ok := options["limit"].(float64); ok {
		if limit <= 0 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị limit phải lớn hơn 0",
				common.StatusBadRequest,
				nil,
			)
		}
		if limit > 1000 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị limit không được vượt quá 1000 để đảm bảo hiệu năng hệ thống",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	// Validate skip
	if skip, ok := options["skip"].(float64); ok {
		if skip < 0 {
			return common.NewError(
				common.ErrCodeValidationFormat,
				"Giá trị skip không được âm",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	return nil
}

// ParsePagination xử lý việc parse thông tin phân trang từ request.
// Hỗ trợ các tham số:
// - page: Số trang (mặc định: 1)
// - limit: Số lượng item trên một trang (mặc định: 10)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// GetIDFromContext lấy ID từ URI params của request.
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// ====================================
// TRANSFORM DTO → MODEL
// ====================================

// TransformCreateInputToModel transform CreateInput (DTO) sang Model (T)
// Sử dụng struct tag `transform` để tự động convert các field (ví dụ: string → ObjectID)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformCreateInputToModel(input *CreateInput) (*T, error) {
	model := new(T)
	if err := utility.TransformStruct(input, model); err != nil {
		return nil, err
	}
	return model, nil
}

// TransformUpdateInputToModel transform UpdateInput (DTO) sang Model (T)
// Sử dụng struct tag `transform` để tự động convert các field (ví dụ: string → ObjectID)
func (h *BaseHandler[T, CreateInput, UpdateInput]) TransformUpdateInputToModel(input *UpdateInput) (*T, error) {
	model := new(T)
	if err := utility.TransformStruct(input, model); err != nil {
		return nil, err
	}
	return model, nil
}
