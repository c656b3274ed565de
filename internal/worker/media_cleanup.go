package worker

import (
	"context"
	"time"

	mediasvc "franchise_social/internal/api/media/service"
	"franchise_social/internal/logger"
)

// MediaCleanupWorker worker dọn dẹp media file pending quá hạn.
// Upload là staged: file mới ở pending, nếu không asset nào tham chiếu
// trong khoảng TTL thì file cùng bytes GridFS bị xóa.
type MediaCleanupWorker struct {
	mediaService *mediasvc.MediaFileService
	interval     time.Duration // Khoảng thời gian giữa các lần chạy (vd: 1 giờ)
	ttl          time.Duration // Thời gian file pending được giữ trước khi xóa (vd: 24 giờ)
}

// NewMediaCleanupWorker tạo mới MediaCleanupWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 1 giờ)
//   - ttl: Thời gian giữ file pending (mặc định: 24 giờ)
func NewMediaCleanupWorker(interval time.Duration, ttl time.Duration) (*MediaCleanupWorker, error) {
	mediaService, err := mediasvc.NewMediaFileService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 1 * time.Hour
	}
	if ttl < time.Hour {
		ttl = 24 * time.Hour
	}
	return &MediaCleanupWorker{
		mediaService: mediaService,
		interval:     interval,
		ttl:          ttl,
	}, nil
}

// Start bắt đầu background worker dọn dẹp media pending
func (w *MediaCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
		"ttl":      w.ttl.String(),
	}).Info("🧹 [MEDIA_CLEANUP] Starting Media Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [MEDIA_CLEANUP] Media Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [MEDIA_CLEANUP] Panic khi dọn media pending, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				deletedCount, err := w.mediaService.CleanupStalePending(ctx, w.ttl)
				if err != nil {
					log.WithError(err).Error("🧹 [MEDIA_CLEANUP] Failed to cleanup stale pending media")
					return
				}

				if deletedCount > 0 {
					log.WithFields(map[string]interface{}{
						"deletedCount": deletedCount,
					}).Info("🧹 [MEDIA_CLEANUP] Cleaned up stale pending media")
				}
			}()
		}
	}
}
