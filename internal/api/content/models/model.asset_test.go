// Package models - Test các hàm thuần của model Asset: resolve caption,
// vòng đời trạng thái và tập nền tảng đóng.
package models

import (
	"testing"
)

func TestResolveCaption_FallbackChain(t *testing.T) {
	asset := &Asset{
		Caption: "Caption chung",
		PlatformContent: map[string]string{
			PlatformFacebook:  "Caption riêng cho Facebook",
			PlatformInstagram: "",
		},
	}

	if got := ResolveCaption(asset, PlatformFacebook); got != "Caption riêng cho Facebook" {
		t.Errorf("ResolveCaption facebook phải ưu tiên override, nhận: %q", got)
	}
	// Override rỗng phải fallback về caption gốc
	if got := ResolveCaption(asset, PlatformInstagram); got != "Caption chung" {
		t.Errorf("ResolveCaption instagram với override rỗng phải fallback, nhận: %q", got)
	}
	// Không có override thì dùng caption gốc
	if got := ResolveCaption(asset, PlatformLinkedin); got != "Caption chung" {
		t.Errorf("ResolveCaption linkedin không có override phải fallback, nhận: %q", got)
	}
	// Platform lạ khi đọc không lỗi, chỉ fallback
	if got := ResolveCaption(asset, "tiktok"); got != "Caption chung" {
		t.Errorf("ResolveCaption platform lạ phải fallback, nhận: %q", got)
	}
}

func TestResolveCaption_NilSafe(t *testing.T) {
	if got := ResolveCaption(nil, PlatformFacebook); got != "" {
		t.Errorf("ResolveCaption với asset nil phải trả về chuỗi rỗng, nhận: %q", got)
	}
	asset := &Asset{Caption: "Chỉ có caption"}
	if got := ResolveCaption(asset, PlatformFacebook); got != "Chỉ có caption" {
		t.Errorf("ResolveCaption với platformContent nil phải fallback, nhận: %q", got)
	}
}

func TestApplyCaption_InitializesMap(t *testing.T) {
	asset := &Asset{}
	ApplyCaption(asset, PlatformFacebook, "Nội dung mới")
	if asset.PlatformContent == nil {
		t.Fatal("ApplyCaption phải khởi tạo platformContent khi nil")
	}
	if asset.PlatformContent[PlatformFacebook] != "Nội dung mới" {
		t.Errorf("ApplyCaption không ghi đúng nội dung: %q", asset.PlatformContent[PlatformFacebook])
	}
}

func TestApplyPlatformEnabled_InitializesMap(t *testing.T) {
	asset := &Asset{}
	ApplyPlatformEnabled(asset, PlatformLinkedin, true)
	if !asset.PlatformSettings[PlatformLinkedin] {
		t.Error("ApplyPlatformEnabled phải bật linkedin")
	}
	ApplyPlatformEnabled(asset, PlatformLinkedin, false)
	if asset.PlatformSettings[PlatformLinkedin] {
		t.Error("ApplyPlatformEnabled phải tắt được linkedin")
	}
}

func TestIsValidPlatform_ClosedSet(t *testing.T) {
	for _, p := range Platforms {
		if !IsValidPlatform(p) {
			t.Errorf("IsValidPlatform(%q) phải là true", p)
		}
	}
	for _, p := range []string{"tiktok", "twitter", "Facebook", ""} {
		if IsValidPlatform(p) {
			t.Errorf("IsValidPlatform(%q) phải là false", p)
		}
	}
}

func TestValidateStatusTransition(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{StatusDraft, StatusDraft, true},
		{StatusDraft, StatusScheduled, true},
		{StatusScheduled, StatusDraft, true},
		{StatusScheduled, StatusScheduled, true},
		// PUBLISHED không đạt được qua save, chỉ qua tạo template hoặc worker
		{StatusDraft, StatusPublished, false},
		{StatusScheduled, StatusPublished, false},
		// Bài đã PUBLISHED vẫn lưu sửa nội dung được
		{StatusPublished, StatusPublished, true},
		{StatusPublished, StatusDraft, false},
		{StatusPublished, StatusScheduled, false},
		// Trạng thái đích không hợp lệ luôn bị từ chối
		{StatusDraft, "ARCHIVED", false},
		{StatusDraft, "", false},
		// Asset mới chưa có trạng thái
		{"", StatusDraft, true},
		{"", StatusPublished, true},
	}
	for _, tc := range cases {
		if got := ValidateStatusTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("ValidateStatusTransition(%q, %q) = %v, muốn %v", tc.from, tc.to, got, tc.want)
		}
	}
}
