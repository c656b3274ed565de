// Package utility - Test TransformStruct: copy field trùng tên từ DTO
// sang model, kể cả field con trỏ optional.
package utility

import (
	"testing"
)

type transformInput struct {
	Name     string
	IsActive *bool
	Ignored  string
}

type transformModel struct {
	Name     string
	IsActive bool
	Other    int
}

func TestTransformStruct_CopiesMatchingFields(t *testing.T) {
	input := transformInput{Name: "Workspace A"}
	var model transformModel
	if err := TransformStruct(&input, &model); err != nil {
		t.Fatalf("TransformStruct lỗi: %v", err)
	}
	if model.Name != "Workspace A" {
		t.Errorf("Name không được copy, nhận: %q", model.Name)
	}
	if model.Other != 0 {
		t.Errorf("field không trùng tên phải giữ nguyên zero value, nhận: %d", model.Other)
	}
}

func TestTransformStruct_PointerFieldNilSkipped(t *testing.T) {
	input := transformInput{Name: "X"}
	model := transformModel{IsActive: true}
	if err := TransformStruct(&input, &model); err != nil {
		t.Fatalf("TransformStruct lỗi: %v", err)
	}
	if !model.IsActive {
		t.Error("IsActive nil trong DTO phải giữ nguyên giá trị model")
	}
}

func TestTransformStruct_PointerFieldDereferenced(t *testing.T) {
	inactive := false
	input := transformInput{Name: "X", IsActive: &inactive}
	model := transformModel{IsActive: true}
	if err := TransformStruct(&input, &model); err != nil {
		t.Fatalf("TransformStruct lỗi: %v", err)
	}
	if model.IsActive {
		t.Error("IsActive=false trong DTO phải ghi đè giá trị model")
	}
}

func TestTransformStruct_RejectsNonPointerModel(t *testing.T) {
	input := transformInput{Name: "X"}
	var model transformModel
	if err := TransformStruct(&input, model); err == nil {
		t.Error("model không phải con trỏ phải trả về lỗi")
	}
}
