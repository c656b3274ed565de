// Package contentsvc - Test các hàm thuần của save và clone: kiểm tra
// bundle trước khi ghi, mirror caption và tính độc lập của bản clone.
package contentsvc

import (
	"errors"
	"testing"

	contentdto "franchise_social/internal/api/content/dto"
	models "franchise_social/internal/api/content/models"
	"franchise_social/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateSaveTransition_ScheduledRequiresTime(t *testing.T) {
	input := &contentdto.AssetSaveInput{Status: models.StatusScheduled, ScheduledFor: nil}
	err := validateSaveTransition(models.StatusDraft, input)
	if err == nil {
		t.Fatal("SCHEDULED không có thời gian đăng phải trả về lỗi")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi phải là *common.Error, nhận: %T", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("lỗi validation phải có status 400, nhận: %d", appErr.StatusCode)
	}
}

func TestValidateSaveTransition_ScheduledWithTime(t *testing.T) {
	at := int64(1715763600000)
	input := &contentdto.AssetSaveInput{Status: models.StatusScheduled, ScheduledFor: &at}
	if err := validateSaveTransition(models.StatusDraft, input); err != nil {
		t.Errorf("SCHEDULED có thời gian đăng phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestValidateSaveTransition_PublishedNotReachableViaSave(t *testing.T) {
	input := &contentdto.AssetSaveInput{Status: models.StatusPublished}
	for _, from := range []string{models.StatusDraft, models.StatusScheduled} {
		if err := validateSaveTransition(from, input); err == nil {
			t.Errorf("save từ %s sang PUBLISHED phải bị từ chối", from)
		}
	}
	// Bài đã PUBLISHED vẫn lưu sửa nội dung được
	if err := validateSaveTransition(models.StatusPublished, input); err != nil {
		t.Errorf("PUBLISHED giữ nguyên PUBLISHED phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestApplySaveBundle_MirrorsActivePlatformCaption(t *testing.T) {
	input := &contentdto.AssetSaveInput{
		ActivePlatform: models.PlatformFacebook,
		Caption:        "Caption gốc",
		PlatformContent: map[string]string{
			models.PlatformFacebook:  "Caption Facebook",
			models.PlatformInstagram: "Caption Instagram",
		},
		Status: models.StatusDraft,
	}
	working := applySaveBundle(input)
	if working.Caption != "Caption Facebook" {
		t.Errorf("caption phải mirror từ tab đang mở, nhận: %q", working.Caption)
	}
	if working.PlatformContent[models.PlatformInstagram] != "Caption Instagram" {
		t.Errorf("platformContent không được ghi đúng: %v", working.PlatformContent)
	}
}

func TestApplySaveBundle_EmptyOverrideKeepsBaseCaption(t *testing.T) {
	input := &contentdto.AssetSaveInput{
		ActivePlatform:  models.PlatformLinkedin,
		Caption:         "Caption gốc",
		PlatformContent: map[string]string{models.PlatformLinkedin: ""},
		Status:          models.StatusDraft,
	}
	working := applySaveBundle(input)
	if working.Caption != "Caption gốc" {
		t.Errorf("override rỗng phải giữ caption gốc, nhận: %q", working.Caption)
	}
}

func TestApplySaveBundle_InitializesMaps(t *testing.T) {
	input := &contentdto.AssetSaveInput{Caption: "X", Status: models.StatusDraft}
	working := applySaveBundle(input)
	if working.PlatformContent == nil || working.PlatformSettings == nil {
		t.Error("applySaveBundle phải trả về map rỗng, không phải nil")
	}
	if working.Caption != "X" {
		t.Errorf("không có tab đang mở thì giữ caption input, nhận: %q", working.Caption)
	}
}

func TestNewCloneFrom_CopiesFieldsAndResets(t *testing.T) {
	mediaID := primitive.NewObjectID()
	at := int64(1715763600000)
	source := &models.Asset{
		ID:                 primitive.NewObjectID(),
		WorkspaceID:        primitive.NewObjectID(),
		MediaFileID:        &mediaID,
		MediaURL:           "http://localhost:8080/media/x",
		SourceLink:         "https://www.canva.com/design/abc",
		Caption:            "Caption template",
		PlatformContent:    map[string]string{models.PlatformFacebook: "FB"},
		PlatformSettings:   map[string]bool{models.PlatformFacebook: true},
		Status:             models.StatusPublished,
		ScheduledFor:       &at,
		IsNationalTemplate: true,
		Revision:           7,
	}
	target := primitive.NewObjectID()
	clone := newCloneFrom(source, target)

	if clone.WorkspaceID != target {
		t.Error("clone phải thuộc workspace đích")
	}
	if clone.SourceLink != source.SourceLink {
		t.Errorf("sourceLink phải được copy nguyên văn, nhận: %q", clone.SourceLink)
	}
	if clone.Status != models.StatusDraft {
		t.Errorf("clone phải bắt đầu ở DRAFT, nhận: %q", clone.Status)
	}
	if clone.IsNationalTemplate {
		t.Error("clone không được là template national")
	}
	if clone.Revision != 0 {
		t.Errorf("clone phải có revision 0, nhận: %d", clone.Revision)
	}
	if clone.SourceTemplateID == nil || *clone.SourceTemplateID != source.ID {
		t.Error("clone phải giữ tham chiếu về template gốc")
	}
	if clone.ScheduledFor == nil || *clone.ScheduledFor != at {
		t.Error("scheduledFor phải được copy như gợi ý")
	}
}

func TestNewCloneFrom_MapsAreIndependent(t *testing.T) {
	source := &models.Asset{
		ID:              primitive.NewObjectID(),
		PlatformContent: map[string]string{models.PlatformFacebook: "A"},
	}
	clone := newCloneFrom(source, primitive.NewObjectID())
	clone.PlatformContent[models.PlatformFacebook] = "Đã sửa"
	if source.PlatformContent[models.PlatformFacebook] != "A" {
		t.Error("sửa map của clone không được ảnh hưởng template gốc")
	}
}

func TestCopyStringMap_Independent(t *testing.T) {
	src := map[string]string{"facebook": "A", "instagram": "B"}
	dst := copyStringMap(src)
	if len(dst) != 2 || dst["facebook"] != "A" {
		t.Fatalf("copyStringMap không copy đúng nội dung: %v", dst)
	}
	dst["facebook"] = "Đã sửa"
	if src["facebook"] != "A" {
		t.Error("sửa bản copy không được ảnh hưởng map gốc")
	}
}

func TestCopyStringMap_NilReturnsEmpty(t *testing.T) {
	dst := copyStringMap(nil)
	if dst == nil {
		t.Fatal("copyStringMap(nil) phải trả về map rỗng, không phải nil")
	}
	if len(dst) != 0 {
		t.Errorf("copyStringMap(nil) phải rỗng, nhận: %v", dst)
	}
}

func TestCopyBoolMap_Independent(t *testing.T) {
	src := map[string]bool{"facebook": true, "linkedin": false}
	dst := copyBoolMap(src)
	if !dst["facebook"] || dst["linkedin"] {
		t.Fatalf("copyBoolMap không copy đúng nội dung: %v", dst)
	}
	dst["facebook"] = false
	if !src["facebook"] {
		t.Error("sửa bản copy không được ảnh hưởng map gốc")
	}
}
