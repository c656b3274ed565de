package basehdl

// Các handler CRUD dùng chung cho mọi collection.
// Dữ liệu từ request body được parse thành DTO, validate bằng struct tag
// rồi transform sang Model trước khi xuống service.

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "franchise_social/internal/api/base/service"
	"franchise_social/internal/common"
	"franchise_social/internal/utility"
)

// InsertOne thêm mới một document vào database.
// Dữ liệu được parse từ request body (DTO CreateInput) và transform sang Model trước khi thêm vào DB.
// Sử dụng struct tag `transform` trong DTO để tự động convert các field (ví dụ: string → ObjectID).
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		// Parse request body thành DTO (CreateInput)
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		// Validate input với struct tag (validate, oneof, etc.)
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Transform DTO sang Model sử dụng struct tag `transform`
		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		// Xử lý workspaceId: cho phép chỉ định từ request hoặc dùng context
		wsIDFromRequest := h.GetWorkspaceIDFromModel(model)
		if wsIDFromRequest != nil && !wsIDFromRequest.IsZero() {
			// Có workspaceId trong request → validate quyền
			if err := h.ValidateUserHasAccessToWorkspace(c, *wsIDFromRequest); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		} else {
			// Không có trong request → dùng context
			activeWsID := h.GetActiveWorkspaceID(c)
			if activeWsID != nil && !activeWsID.IsZero() {
				h.SetWorkspaceID(model, *activeWsID)
			}
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// InsertMany thêm nhiều document vào database.
// Dữ liệu được parse từ request body dưới dạng mảng và validate trước khi thêm vào DB.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var inputs []CreateInput
		if err := h.ParseRequestBody(c, &inputs); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên phải là một mảng JSON và các phần tử phải khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		var models []T
		for i := range inputs {
			if err := h.ValidateInput(&inputs[i]); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			model, err := h.TransformCreateInputToModel(&inputs[i])
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Lỗi transform dữ liệu item %d: %v", i+1, err),
					common.StatusBadRequest,
					err,
				))
				return nil
			}

			// Xử lý workspaceId cho từng item: từ request (validate quyền) hoặc từ context
			wsIDFromRequest := h.GetWorkspaceIDFromModel(model)
			if wsIDFromRequest != nil && !wsIDFromRequest.IsZero() {
				if err := h.ValidateUserHasAccessToWorkspace(c, *wsIDFromRequest); err != nil {
					h.HandleResponse(c, nil, err)
					return nil
				}
			} else {
				activeWsID := h.GetActiveWorkspaceID(c)
				if activeWsID != nil && !activeWsID.IsZero() {
					h.SetWorkspaceID(model, *activeWsID)
				}
			}
			models = append(models, *model)
		}

		data, err := h.BaseService.InsertMany(c.Context(), models)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOne tìm một document theo điều kiện filter.
// Filter và options được truyền qua query string dưới dạng JSON.
// Ví dụ options: {"projection": {"field": 1}, "sort": {"field": 1}}
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Tự động thêm filter workspaceId nếu model có field WorkspaceID (phân quyền dữ liệu)
		filter = h.applyWorkspaceFilter(c, filter)

		options, err := h.processMongoOptions(c, true)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOne(c.Context(), filter, options.(*mongoopts.FindOneOptions))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById tìm một document theo ID.
// ID được truyền qua URI params.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Validate workspaceId trước khi query nếu model có field WorkspaceID (phân quyền dữ liệu)
		if err := h.ValidateWorkspaceAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindManyByIds tìm nhiều document theo danh sách ID.
// Danh sách ID được truyền qua query string dưới dạng mảng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindManyByIds(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var ids []string
		idsStr := c.Query("ids", "[]")
		if err := json.Unmarshal([]byte(idsStr), &ids); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Danh sách ID phải là một mảng JSON. Giá trị nhận được: %s. Chi tiết lỗi: %v", idsStr, err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Validate từng ID
		objectIds := make([]primitive.ObjectID, len(ids))
		for i, id := range ids {
			if !primitive.IsValidObjectID(id) {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("ID '%s' tại vị trí %d không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id, i),
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			objectIds[i] = utility.String2ObjectID(id)
		}

		data, err := h.BaseService.FindManyByIds(c.Context(), objectIds)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination tìm nhiều document với phân trang.
// Hỗ trợ filter, options và phân trang với page và limit.
//
// Query params:
// - filter: Điều kiện tìm kiếm (JSON)
// - options: Tùy chọn tìm kiếm (JSON). Ví dụ: {"projection": {"field": 1}, "sort": {"field": 1}}
// - page: Số trang (mặc định: 1)
// - limit: Số lượng item trên một trang (mặc định: 10)
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Tự động thêm filter workspaceId nếu model có field WorkspaceID (phân quyền dữ liệu)
		filter = h.applyWorkspaceFilter(c, filter)

		options, err := h.processMongoOptions(c, false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Parse page và limit từ query string
		page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}

		limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 10
		}

		// Không set limit và skip vào options ở đây
		// Service sẽ tự tính toán và set vào options để đảm bảo tính nhất quán
		findOptions := options.(*mongoopts.FindOptions)

		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, findOptions)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find tìm nhiều document theo điều kiện filter.
// Filter và options được truyền qua query string dưới dạng JSON.
// Ví dụ options: {"projection": {"field": 1}, "sort": {"field": 1}, "limit": 10, "skip": 0}
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Tự động thêm filter workspaceId nếu model có field WorkspaceID (phân quyền dữ liệu)
		filter = h.applyWorkspaceFilter(c, filter)

		options, err := h.processMongoOptions(c, false)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, options.(*mongoopts.FindOptions))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Đảm bảo data không bao giờ là nil, luôn trả về mảng rỗng nếu không có kết quả
		if data == nil {
			data = []T{}
		}

		h.HandleResponse(c, data, nil)
		return nil
	})
}

// UpdateOne cập nhật một document theo điều kiện filter.
// Filter được truyền qua query string, dữ liệu cập nhật trong request body.
// Chỉ update các trường có trong input, giữ nguyên các trường khác.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Tự động thêm filter workspaceId nếu model có field WorkspaceID (phân quyền dữ liệu)
		filter = h.applyWorkspaceFilter(c, filter)

		// Parse request body thành DTO (UpdateInput)
		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		// Validate input với struct tag (validate, oneof, etc.)
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Transform DTO sang Model sử dụng struct tag `transform`
		model, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		update, err := buildPartialUpdate(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.UpdateOne(c.Context(), filter, update, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateMany cập nhật nhiều document theo điều kiện filter.
// Filter được truyền qua query string, dữ liệu cập nhật trong request body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Dữ liệu cập nhật không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err), common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Lỗi transform dữ liệu: %v", err), common.StatusBadRequest, err))
			return nil
		}

		update, err := buildPartialUpdate(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.UpdateMany(c.Context(), filter, update, nil)
		h.HandleResponse(c, count, err)
		return nil
	})
}

// UpdateById cập nhật một document theo ID.
// ID được truyền qua URI params, dữ liệu cập nhật trong request body.
// Chỉ update các trường có trong input, giữ nguyên các trường khác.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Validate quyền với document hiện tại trước khi update
		if err := h.ValidateWorkspaceAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu cập nhật không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		update, err := buildPartialUpdate(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), utility.String2ObjectID(id), update)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteOne xóa một document theo điều kiện filter.
// Filter được truyền qua query string dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		err = h.BaseService.DeleteOne(c.Context(), filter)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// DeleteMany xóa nhiều document theo điều kiện filter.
// Filter được truyền qua query string dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteMany(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Tự động thêm filter workspaceId nếu model có field WorkspaceID (phân quyền dữ liệu)
		filter = h.applyWorkspaceFilter(c, filter)

		count, err := h.BaseService.DeleteMany(c.Context(), filter)
		h.HandleResponse(c, count, err)
		return nil
	})
}

// DeleteById xóa một document theo ID.
// ID được truyền qua URI params.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		// Validate quyền với document hiện tại trước khi xóa
		if err := h.ValidateWorkspaceAccess(c, id); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.BaseService.DeleteById(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// FindOneAndUpdate tìm và cập nhật một document.
// Filter được truyền qua query string, dữ liệu cập nhật trong request body.
// Trả về document sau khi cập nhật.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Dữ liệu cập nhật không đúng định dạng JSON. Chi tiết: %v", err), common.StatusBadRequest, nil))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformUpdateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Lỗi transform dữ liệu: %v", err), common.StatusBadRequest, err))
			return nil
		}

		update, err := buildPartialUpdate(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneAndUpdate(c.Context(), filter, update, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneAndDelete tìm và xóa một document.
// Filter được truyền qua query string.
// Trả về document đã xóa.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneAndDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		data, err := h.BaseService.FindOneAndDelete(c.Context(), filter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// CountDocuments đếm số lượng document theo điều kiện filter.
// Filter được truyền qua query string dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, count, err)
		return nil
	})
}

// Distinct lấy danh sách giá trị duy nhất của một trường.
// Tên trường được truyền qua URI params, filter qua query string.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Distinct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		field := c.Params("field")
		if field == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Tên trường không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		data, err := h.BaseService.Distinct(c.Context(), field, filter)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Upsert thêm mới hoặc cập nhật một document.
// Filter được truyền qua query string, dữ liệu trong request body (DTO CreateInput).
// Nếu không tìm thấy document thỏa mãn filter sẽ tạo mới, ngược lại sẽ cập nhật.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Upsert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		wsIDFromRequest := h.GetWorkspaceIDFromModel(model)
		if wsIDFromRequest != nil && !wsIDFromRequest.IsZero() {
			if err := h.ValidateUserHasAccessToWorkspace(c, *wsIDFromRequest); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		} else {
			activeWsID := h.GetActiveWorkspaceID(c)
			if activeWsID != nil && !activeWsID.IsZero() {
				h.SetWorkspaceID(model, *activeWsID)
			}
		}

		update, err := buildPartialUpdate(model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Upsert(c.Context(), filter, update)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DocumentExists kiểm tra document có tồn tại không.
// Filter được truyền qua query string dưới dạng JSON.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.ProcessFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		filter = h.applyWorkspaceFilter(c, filter)

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		h.HandleResponse(c, exists, err)
		return nil
	})
}

// buildPartialUpdate chuyển model sang UpdateData với $set operator.
// Chỉ đưa field non-zero vào $set để không ghi đè các trường client không gửi.
func buildPartialUpdate(model interface{}) (*basesvc.UpdateData, error) {
	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
	modelMap, err := utility.ToMap(model)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Lỗi convert model sang map: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}
	for k, v := range modelMap {
		if rv := reflect.ValueOf(v); rv.IsValid() && !rv.IsZero() {
			updateData.Set[k] = v
		}
	}
	return updateData, nil
}
