package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"franchise_social/internal/global"
	"franchise_social/internal/logger"
	"franchise_social/internal/utility"
	"franchise_social/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// startWorkers khởi động các background worker: publish bài đến hạn
// và dọn media pending quá hạn. Worker lỗi khởi tạo không làm server dừng.
func startWorkers(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	publishWorker, err := worker.NewSchedulePublishWorker(time.Duration(cfg.SchedulePublishInterval) * time.Second)
	if err != nil {
		log.WithError(err).Error("Failed to create schedule publish worker, continuing without it")
	} else {
		go utility.GoProtect(func() {
			publishWorker.Start(ctx)
		})
	}

	cleanupWorker, err := worker.NewMediaCleanupWorker(
		time.Duration(cfg.MediaCleanupInterval)*time.Second,
		time.Duration(cfg.MediaPendingTTL)*time.Second,
	)
	if err != nil {
		log.WithError(err).Error("Failed to create media cleanup worker, continuing without it")
	} else {
		go utility.GoProtect(func() {
			cleanupWorker.Start(ctx)
		})
	}
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	// Khởi động server với cấu hình listen
	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn tương đối từ thư mục gốc dự án
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định (workspace national)
	InitDefaultData()

	// Đăng ký event handler (audit log, cache invalidation)
	InitEventHandlers()

	// Khởi động background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
