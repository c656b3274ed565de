package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để không block request handling.
// Log entries được buffer vào channel và ghi ra các writers trong một goroutine riêng.
type AsyncHook struct {
	writers    []io.Writer // Danh sách các writers (file, stdout, etc.)
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters tạo một async hook mới với nhiều writers
// bufferSize: kích thước buffer cho log entries (mặc định 1000)
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không block.
// Nếu channel đầy, entry bị bỏ qua để không chặn request handling.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng, ghi trực tiếp vào writers (fallback)
		data, err := formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy, bỏ qua entry. Không log warning ở đây vì sẽ tạo vòng lặp.
	}

	return nil
}

// formatEntry format entry thành bytes bằng formatter của logger
func formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// processEntries xử lý log entries trong một goroutine riêng.
// Có recover để goroutine logger không làm crash server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Không thể dùng logger ở đây vì sẽ tạo vòng lặp
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] Logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			// FilterHook đã đánh dấu entry bị filter bằng field "_filtered"
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			// Loại bỏ field đánh dấu trước khi format
			writeEntry := entry
			if _, ok := entry.Data["_filtered"]; ok {
				writeEntry = entry.Dup()
				delete(writeEntry.Data, "_filtered")
			}

			data, err := formatEntry(writeEntry)
			if err != nil {
				return
			}

			// Ghi vào tất cả writers. Một writer lỗi không chặn các writer còn lại.
			for _, writer := range h.writers {
				if _, err = writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// Close đóng hook và đợi tất cả entries được xử lý xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
