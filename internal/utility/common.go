package utility

import (
	"fmt"
	"time"

	"franchise_social/internal/logger"
)

// GoProtect là một hàm bao bọc (wrapper) giúp bảo vệ một hàm khác khỏi bị panic.
// Nếu xảy ra panic trong hàm f(), GoProtect sẽ bắt lại và in ra lỗi thay vì làm chương trình dừng hẳn.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("Đã bắt lỗi panic: %v\n", err)
		}
	}()

	f()
}

// UnixMilli dùng để lấy mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli dùng để lấy thời gian hiện tại tính bằng mili giây
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// LogWarning ghi log cảnh báo với các cặp key/value bổ sung
func LogWarning(msg string, args ...interface{}) {
	fields := make(map[string]interface{})
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if key, ok := args[i].(string); ok {
				fields[key] = args[i+1]
			}
		}
	}
	logger.GetAppLogger().WithFields(fields).Warn(msg)
}
