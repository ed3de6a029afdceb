package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"8080"`                          // Port server lắng nghe
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"ecommerce_sentiment"`
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // 0 = disable rate limit
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // seconds
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	// Auth
	JwtSecret              string        `env:"JWT_SECRET,required"`
	JwtTTL                 time.Duration `env:"JWT_TTL" envDefault:"24h"`
	AuthAllowedEmailDomain string        `env:"AUTH_ALLOWED_EMAIL_DOMAIN" envDefault:"@joineverestgroup.com"`

	// Token denylist, in-process cache when REDIS_ADDR is empty
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Summarizer
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAITemperature float32       `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
	OpenAIMaxTokens   int           `env:"OPENAI_MAX_TOKENS" envDefault:"200"`
	OpenAITimeout     time.Duration `env:"OPENAI_TIMEOUT" envDefault:"30s"`

	// Reports
	ReportRequireAuth    bool     `env:"REPORT_REQUIRE_AUTH" envDefault:"false"`
	ReportPlatforms      []string `env:"REPORT_PLATFORMS" envSeparator:"," envDefault:"gorgias,trustpilot,opencx"`
	ReportDetailMinShare float64  `env:"REPORT_DETAIL_MIN_SHARE" envDefault:"1.0"` // percent
	ReportDetailFallback string   `env:"REPORT_DETAIL_FALLBACK" envDefault:"pre_saved"` // pre_saved | none
	ReportMonthlyCutoff  string   `env:"REPORT_MONTHLY_CUTOFF" envDefault:"2025-04"`    // YYYY-MM, first month without data

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// logger chưa được init ở đây
		fmt.Printf("Cannot read working directory: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) rồi parse từ biến môi trường.
// Thiếu file env không phải lỗi, khi chạy container biến môi trường được truyền trực tiếp.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := time.Parse("2006-01", cfg.ReportMonthlyCutoff); err != nil {
		return nil, fmt.Errorf("REPORT_MONTHLY_CUTOFF must be YYYY-MM: %w", err)
	}
	switch cfg.ReportDetailFallback {
	case "pre_saved", "none":
	default:
		return nil, fmt.Errorf("REPORT_DETAIL_FALLBACK must be pre_saved or none, got %q", cfg.ReportDetailFallback)
	}

	return &cfg, nil
}

// MonthlyCutoff trả về tháng đầu tiên không còn dữ liệu (UTC).
func (c *Configuration) MonthlyCutoff() time.Time {
	t, err := time.Parse("2006-01", c.ReportMonthlyCutoff)
	if err != nil {
		return time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	}
	return t.UTC()
}
