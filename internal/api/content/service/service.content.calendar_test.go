// Package contentsvc - Test dựng lưới lịch tháng.
package contentsvc

import (
	"testing"
	"time"

	models "franchise_social/internal/api/content/models"
)

func TestBuildMonthGrid_May2024(t *testing.T) {
	// Tháng 5/2024 bắt đầu thứ Tư: 3 ô trống đệm + 31 ô ngày
	cells := BuildMonthGrid(2024, time.May)
	if len(cells) != 34 {
		t.Fatalf("tháng 5/2024 phải có 34 ô (3 trống + 31 ngày), nhận: %d", len(cells))
	}
	for i := 0; i < 3; i++ {
		if !cells[i].Empty {
			t.Errorf("ô %d phải là ô trống đệm", i)
		}
	}
	if cells[3].Empty || cells[3].Day != 1 {
		t.Errorf("ô thứ 4 phải là ngày 1, nhận: %+v", cells[3])
	}
	last := cells[len(cells)-1]
	if last.Empty || last.Day != 31 {
		t.Errorf("ô cuối phải là ngày 31, nhận: %+v", last)
	}
}

func TestBuildMonthGrid_LeapFebruary(t *testing.T) {
	// Tháng 2/2024 là năm nhuận, bắt đầu thứ Năm: 4 trống + 29 ngày
	cells := BuildMonthGrid(2024, time.February)
	if len(cells) != 33 {
		t.Fatalf("tháng 2/2024 phải có 33 ô (4 trống + 29 ngày), nhận: %d", len(cells))
	}
	if cells[len(cells)-1].Day != 29 {
		t.Errorf("năm nhuận ô cuối phải là ngày 29, nhận: %d", cells[len(cells)-1].Day)
	}

	// Tháng 2/2023 không nhuận, bắt đầu thứ Tư: 3 trống + 28 ngày
	cells = BuildMonthGrid(2023, time.February)
	if len(cells) != 31 {
		t.Fatalf("tháng 2/2023 phải có 31 ô (3 trống + 28 ngày), nhận: %d", len(cells))
	}
	if cells[len(cells)-1].Day != 28 {
		t.Errorf("năm không nhuận ô cuối phải là ngày 28, nhận: %d", cells[len(cells)-1].Day)
	}
}

func TestBuildMonthGrid_SundayStartNoLeading(t *testing.T) {
	// Tháng 9/2024 bắt đầu đúng Chủ nhật, không có ô trống đệm
	cells := BuildMonthGrid(2024, time.September)
	if len(cells) != 30 {
		t.Fatalf("tháng 9/2024 phải có 30 ô, nhận: %d", len(cells))
	}
	if cells[0].Empty || cells[0].Day != 1 {
		t.Errorf("tháng bắt đầu Chủ nhật ô đầu phải là ngày 1, nhận: %+v", cells[0])
	}
}

func TestBuildMonthGrid_DaysAreSequential(t *testing.T) {
	cells := BuildMonthGrid(2026, time.August)
	day := 0
	for _, cell := range cells {
		if cell.Empty {
			continue
		}
		day++
		if cell.Day != day {
			t.Fatalf("ngày không liên tục: ô có Day=%d, muốn %d", cell.Day, day)
		}
	}
	if day != 31 {
		t.Errorf("tháng 8/2026 phải có 31 ngày, nhận: %d", day)
	}
}

func TestBucketAssetsIntoCells_AssetLandsOnItsDay(t *testing.T) {
	// 2024-05-15T09:00:00Z, tháng 5/2024 có 3 ô trống đệm nên ngày 15 ở ô 17
	at := time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC).UnixMilli()
	assets := []models.Asset{{Caption: "Bài ngày 15", ScheduledFor: &at}}

	cells := bucketAssetsIntoCells(BuildMonthGrid(2024, time.May), assets)

	idx := 3 + 15 - 1
	if cells[idx].Day != 15 {
		t.Fatalf("ô %d phải là ngày 15, nhận: %d", idx, cells[idx].Day)
	}
	if len(cells[idx].Assets) != 1 || cells[idx].Assets[0].Caption != "Bài ngày 15" {
		t.Errorf("asset phải nằm trong ô ngày 15, nhận: %+v", cells[idx].Assets)
	}
	for i, cell := range cells {
		if i != idx && len(cell.Assets) != 0 {
			t.Errorf("ô %d không được chứa asset, nhận: %+v", i, cell.Assets)
		}
	}
}

func TestBucketAssetsIntoCells_SortedWithinDay(t *testing.T) {
	morning := time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC).UnixMilli()
	evening := time.Date(2024, time.May, 15, 19, 0, 0, 0, time.UTC).UnixMilli()
	assets := []models.Asset{
		{Caption: "Tối", ScheduledFor: &evening},
		{Caption: "Sáng", ScheduledFor: &morning},
	}

	cells := bucketAssetsIntoCells(BuildMonthGrid(2024, time.May), assets)

	day15 := cells[3+15-1].Assets
	if len(day15) != 2 {
		t.Fatalf("ngày 15 phải có 2 bài, nhận: %d", len(day15))
	}
	if day15[0].Caption != "Sáng" || day15[1].Caption != "Tối" {
		t.Errorf("trong ngày phải sắp xếp tăng dần theo thời gian đăng, nhận: %q, %q", day15[0].Caption, day15[1].Caption)
	}
}

func TestBucketAssetsIntoCells_SkipsNilScheduledFor(t *testing.T) {
	assets := []models.Asset{{Caption: "Không có lịch"}}
	cells := bucketAssetsIntoCells(BuildMonthGrid(2024, time.May), assets)
	for i, cell := range cells {
		if len(cell.Assets) != 0 {
			t.Errorf("ô %d không được chứa asset khi scheduledFor nil", i)
		}
	}
}
