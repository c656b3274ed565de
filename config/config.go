package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin cơ sở dữ liệu và các tham số vận hành
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo (seed workspace national + admin)
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	// Media storage
	MediaBucketName string `env:"MEDIA_BUCKET_NAME" envDefault:"media_bucket"`          // Tên GridFS bucket chứa file media
	MediaPublicBase string `env:"MEDIA_PUBLIC_BASE" envDefault:"http://localhost:8080"` // Base URL public cho link download media
	MediaMaxSizeMB  int    `env:"MEDIA_MAX_SIZE_MB" envDefault:"25"`                    // Kích thước file upload tối đa (MB)
	MediaPendingTTL int    `env:"MEDIA_PENDING_TTL" envDefault:"86400"`                 // TTL (giây) cho media pending chưa gắn vào bài
	// Workers
	SchedulePublishInterval int `env:"SCHEDULE_PUBLISH_INTERVAL" envDefault:"60"` // Chu kỳ (giây) quét bài SCHEDULED đến hạn
	MediaCleanupInterval    int `env:"MEDIA_CLEANUP_INTERVAL" envDefault:"3600"`  // Chu kỳ (giây) dọn media pending quá hạn
	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
