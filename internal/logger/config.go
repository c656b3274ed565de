package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string

	// Log Format: json, text
	Format string

	// Log Output: file, stdout, both
	Output string

	// Log Rotation
	MaxSize    int  // MB
	MaxBackups int  // Số file cũ giữ lại
	MaxAge     int  // Số ngày giữ lại
	Compress   bool // Nén file cũ

	// Log Paths
	LogPath         string
	AppFile         string
	AuditFile       string
	PerformanceFile string
	ErrorFile       string

	// Filters (comma-separated, "*" hoặc rỗng = tất cả)
	FilterModules  string // Lọc theo module (auth, content, media, worker)
	FilterLogTypes string // Lọc theo log level
}

// DefaultConfig trả về cấu hình mặc định, có override từ environment variables
func DefaultConfig() *LogConfig {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	config := &LogConfig{
		Level:           "info",
		Format:          "text",
		Output:          "both",
		MaxSize:         100,
		MaxBackups:      7,
		MaxAge:          7,
		Compress:        true,
		LogPath:         "./logs",
		AppFile:         "app.log",
		AuditFile:       "audit.log",
		PerformanceFile: "performance.log",
		ErrorFile:       "error.log",
	}

	// Điều chỉnh theo môi trường
	if env == "development" {
		config.Level = "debug"
		config.Format = "text"
	} else {
		config.Level = "info"
		config.Format = "json"
	}

	// Override từ environment variables
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = strings.ToLower(output)
	}
	if maxSizeStr := os.Getenv("LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}
	if maxBackupsStr := os.Getenv("LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}
	if maxAgeStr := os.Getenv("LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}
	if compressStr := os.Getenv("LOG_COMPRESS"); compressStr != "" {
		if compress, err := strconv.ParseBool(compressStr); err == nil {
			config.Compress = compress
		}
	}
	if logPath := os.Getenv("LOG_PATH"); logPath != "" {
		config.LogPath = logPath
	}
	if filterModules := os.Getenv("LOG_FILTER_MODULES"); filterModules != "" {
		config.FilterModules = filterModules
	}
	if filterLogTypes := os.Getenv("LOG_FILTER_TYPES"); filterLogTypes != "" {
		config.FilterLogTypes = filterLogTypes
	}

	return config
}
