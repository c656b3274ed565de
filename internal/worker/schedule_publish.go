// Package worker - các background worker chạy định kỳ.
package worker

import (
	"context"
	"time"

	contentsvc "franchise_social/internal/api/content/service"
	"franchise_social/internal/logger"
)

// SchedulePublishWorker worker quét bài SCHEDULED tới giờ đăng và chuyển sang PUBLISHED.
// Chạy định kỳ theo interval, một lần quét chuyển tất cả bài đã đến hạn.
type SchedulePublishWorker struct {
	assetService *contentsvc.AssetService
	interval     time.Duration // Khoảng thời gian giữa các lần quét (vd: 1 phút)
}

// NewSchedulePublishWorker tạo mới SchedulePublishWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần quét (mặc định: 1 phút)
func NewSchedulePublishWorker(interval time.Duration) (*SchedulePublishWorker, error) {
	assetService, err := contentsvc.NewAssetService()
	if err != nil {
		return nil, err
	}
	if interval < 10*time.Second {
		interval = 1 * time.Minute
	}
	return &SchedulePublishWorker{
		assetService: assetService,
		interval:     interval,
	}, nil
}

// Start bắt đầu background worker quét bài đến hạn đăng
func (w *SchedulePublishWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📅 [SCHEDULE_PUBLISH] Starting Schedule Publish Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📅 [SCHEDULE_PUBLISH] Schedule Publish Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📅 [SCHEDULE_PUBLISH] Panic khi publish bài đến hạn, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				publishedCount, err := w.assetService.PublishDue(ctx)
				if err != nil {
					log.WithError(err).Error("📅 [SCHEDULE_PUBLISH] Failed to publish due assets")
					return
				}

				if publishedCount > 0 {
					log.WithFields(map[string]interface{}{
						"publishedCount": publishedCount,
					}).Info("📅 [SCHEDULE_PUBLISH] Published due assets")
				}
				// Nếu publishedCount = 0, không log (giảm log noise)
			}()
		}
	}
}
