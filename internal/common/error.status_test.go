// Package common - Test ConvertMongoError: các lỗi driver phải được
// map về sentinel đúng để caller phân biệt được 404/409/500.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NoDocumentsIsNotFound(t *testing.T) {
	converted := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(converted, ErrNotFound) {
		t.Errorf("mongo.ErrNoDocuments phải map về ErrNotFound, nhận: %v", converted)
	}
}

func TestConvertMongoError_WrappedNoDocuments(t *testing.T) {
	wrapped := errors.Join(errors.New("decode"), mongo.ErrNoDocuments)
	converted := ConvertMongoError(wrapped)
	if !errors.Is(converted, ErrNotFound) {
		t.Errorf("lỗi bọc ErrNoDocuments phải map về ErrNotFound, nhận: %v", converted)
	}
}

func TestConvertMongoError_KeepsNotFoundSentinel(t *testing.T) {
	converted := ConvertMongoError(ErrNotFound)
	if !errors.Is(converted, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận: %v", converted)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if converted := ConvertMongoError(nil); converted != nil {
		t.Errorf("nil phải trả về nil, nhận: %v", converted)
	}
}

func TestConvertMongoError_UnknownErrorIsInternal(t *testing.T) {
	converted := ConvertMongoError(errors.New("lỗi lạ"))
	var appErr *Error
	if !errors.As(converted, &appErr) {
		t.Fatalf("lỗi không xác định phải trả về *Error, nhận: %T", converted)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("lỗi không xác định phải có status 500, nhận: %d", appErr.StatusCode)
	}
	if errors.Is(converted, ErrNotFound) {
		t.Error("lỗi không xác định không được nhầm thành ErrNotFound")
	}
}
