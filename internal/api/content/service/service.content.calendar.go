// Package contentsvc - lịch tháng: dựng lưới và gom bài đăng theo ngày.
package contentsvc

import (
	"context"
	"sort"
	"time"

	models "franchise_social/internal/api/content/models"
	"franchise_social/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalendarCell một ô trong lưới lịch tháng.
// Day = 0 là ô trống đệm đầu tháng (cho tuần bắt đầu từ Chủ nhật).
type CalendarCell struct {
	Day    int            `json:"day"`
	Empty  bool           `json:"empty"`
	Assets []models.Asset `json:"assets,omitempty"`
}

// CalendarMonth kết quả lịch của một tháng
type CalendarMonth struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// BuildMonthGrid dựng lưới lịch cho một tháng: số ô trống đệm bằng
// thứ trong tuần của ngày 1 (Chủ nhật = 0), sau đó mỗi ngày một ô.
// Ví dụ tháng 5/2024 bắt đầu thứ Tư: 3 ô trống + 31 ô ngày.
func BuildMonthGrid(year int, month time.Month) []CalendarCell {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(firstDay.Weekday())
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	cells := make([]CalendarCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, CalendarCell{Empty: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, CalendarCell{Day: day})
	}
	return cells
}

// ListCalendarMonth trả về lưới lịch của workspace với bài đăng đã lên
// lịch hoặc đã đăng gom theo ngày, trong ngày sắp xếp tăng dần theo
// thời gian đăng. Bài DRAFT không xuất hiện trên lịch.
func (s *AssetService) ListCalendarMonth(ctx context.Context, workspaceID primitive.ObjectID, year int, month int) (*CalendarMonth, error) {
	if month < 1 || month > 12 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Tháng không hợp lệ", common.StatusBadRequest, nil)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	filter := bson.M{
		"workspaceId": workspaceID,
		"status":      bson.M{"$ne": models.StatusDraft},
		"scheduledFor": bson.M{
			"$gte": monthStart.UnixMilli(),
			"$lt":  monthEnd.UnixMilli(),
		},
	}
	assets, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	cells := bucketAssetsIntoCells(BuildMonthGrid(year, time.Month(month)), assets)
	return &CalendarMonth{Year: year, Month: month, Cells: cells}, nil
}

// bucketAssetsIntoCells gom asset vào ô ngày tương ứng của lưới:
// ngày trong tháng lấy theo UTC từ scheduledFor, vị trí ô là số ô
// trống đệm cộng ngày trừ một. Trong một ngày sắp xếp tăng dần theo
// thời gian đăng. Asset không có scheduledFor bị bỏ qua.
func bucketAssetsIntoCells(cells []CalendarCell, assets []models.Asset) []CalendarCell {
	leading := 0
	for _, cell := range cells {
		if cell.Empty {
			leading++
		}
	}

	for _, asset := range assets {
		if asset.ScheduledFor == nil {
			continue
		}
		day := time.UnixMilli(*asset.ScheduledFor).UTC().Day()
		idx := leading + day - 1
		if idx < 0 || idx >= len(cells) {
			continue
		}
		cells[idx].Assets = append(cells[idx].Assets, asset)
	}

	for i := range cells {
		dayAssets := cells[i].Assets
		sort.Slice(dayAssets, func(a, b int) bool {
			return *dayAssets[a].ScheduledFor < *dayAssets[b].ScheduledFor
		})
	}

	return cells
}
