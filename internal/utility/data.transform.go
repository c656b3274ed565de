package utility

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformTagConfig chứa cấu hình được parse từ tag transform
// Format: "[type][,format=<value>][,optional|required]"
// Naming convention: <input_type>_<output_type>
// Ví dụ:
//   - transform:"str_objectid" - Convert string → primitive.ObjectID
//   - transform:"str_objectid_ptr" - Convert string → *primitive.ObjectID
//   - transform:"str_time" - Convert string → int64 timestamp (UnixMilli)
//   - transform:"str_time,format=2006-01-02" - Convert với format cụ thể
type TransformTagConfig struct {
	Type     string // Transform type
	Format   string // Format cho time converter
	Optional bool   // Nếu không có giá trị, bỏ qua
	Required bool   // Bắt buộc phải có giá trị
}

// ParseTransformTag parse tag transform thành config
func ParseTransformTag(tag string) *TransformTagConfig {
	config := &TransformTagConfig{
		Format: "2006-01-02T15:04:05",
	}

	if tag == "" {
		return config
	}

	parts := strings.Split(tag, ",")
	config.Type = strings.TrimSpace(parts[0])

	for i := 1; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		switch {
		case part == "optional":
			config.Optional = true
		case part == "required":
			config.Required = true
		case strings.HasPrefix(part, "format="):
			config.Format = strings.TrimPrefix(part, "format=")
		}
	}

	return config
}

// TransformFieldValue transform giá trị từ DTO field sang Model field theo config
func TransformFieldValue(value interface{}, config *TransformTagConfig) (interface{}, error) {
	str, ok := value.(string)
	if !ok || str == "" {
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng không có giá trị")
		}
		// Optional hoặc không có giá trị → bỏ qua
		return nil, nil
	}

	switch config.Type {
	case "str_objectid":
		objID, err := primitive.ObjectIDFromHex(str)
		if err != nil {
			return nil, fmt.Errorf("giá trị %q không phải ObjectID hợp lệ: %w", str, err)
		}
		return objID, nil

	case "str_objectid_ptr":
		objID, err := primitive.ObjectIDFromHex(str)
		if err != nil {
			return nil, fmt.Errorf("giá trị %q không phải ObjectID hợp lệ: %w", str, err)
		}
		return &objID, nil

	case "str_time":
		t, err := time.Parse(config.Format, str)
		if err != nil {
			return nil, fmt.Errorf("giá trị %q không đúng định dạng thời gian %s: %w", str, config.Format, err)
		}
		return UnixMilli(t), nil

	case "":
		return value, nil

	default:
		return nil, fmt.Errorf("transform type không được hỗ trợ: %s", config.Type)
	}
}

// TransformStruct copy các field trùng tên từ DTO sang model,
// áp dụng transform theo tag `transform` trên DTO field.
// model phải là con trỏ đến struct.
func TransformStruct(input interface{}, model interface{}) error {
	inputVal := reflect.ValueOf(input)
	if inputVal.Kind() == reflect.Ptr {
		inputVal = inputVal.Elem()
	}
	modelVal := reflect.ValueOf(model)
	if modelVal.Kind() != reflect.Ptr || modelVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("model phải là con trỏ đến struct")
	}
	modelVal = modelVal.Elem()

	inputType := inputVal.Type()
	for i := 0; i < inputType.NumField(); i++ {
		field := inputType.Field(i)
		target := modelVal.FieldByName(field.Name)
		if !target.IsValid() || !target.CanSet() {
			continue
		}

		tag := field.Tag.Get("transform")
		if tag == "" {
			src := inputVal.Field(i)
			// Copy trực tiếp nếu kiểu tương thích
			if src.Type().AssignableTo(target.Type()) {
				target.Set(src)
				continue
			}
			// DTO dùng con trỏ cho field optional, nil nghĩa là không cập nhật
			if src.Kind() == reflect.Ptr && !src.IsNil() && src.Elem().Type().AssignableTo(target.Type()) {
				target.Set(src.Elem())
			}
			continue
		}

		config := ParseTransformTag(tag)
		converted, err := TransformFieldValue(inputVal.Field(i).Interface(), config)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		if converted == nil {
			continue
		}

		convertedVal := reflect.ValueOf(converted)
		if convertedVal.Type().AssignableTo(target.Type()) {
			target.Set(convertedVal)
		}
	}

	return nil
}
