package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL"`

	// json, text
	Format string `env:"LOG_FORMAT"`

	// file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"` // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"` // days
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"`

	// Log Paths
	LogPath         string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile         string `env:"LOG_APP_FILE" envDefault:"app.log"`
	AuditFile       string `env:"LOG_AUDIT_FILE" envDefault:"audit.log"`
	PerformanceFile string `env:"LOG_PERF_FILE" envDefault:"performance.log"`
	ErrorFile       string `env:"LOG_ERROR_FILE" envDefault:"error.log"`

	// Comma separated module names; empty or "*" keeps everything
	FilterModules string `env:"LOG_FILTER_MODULES"`
}

// DefaultConfig trả về cấu hình mặc định, đã áp dụng biến môi trường
func DefaultConfig() *LogConfig {
	config := &LogConfig{}
	if err := env.Parse(config); err != nil {
		config = &LogConfig{
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
	}

	// Level/format mặc định theo môi trường
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}
	if config.Level == "" {
		if goEnv == "development" {
			config.Level = "debug"
		} else {
			config.Level = "info"
		}
	}
	if config.Format == "" {
		if goEnv == "development" {
			config.Format = "text"
		} else {
			config.Format = "json"
		}
	}

	config.Level = strings.ToLower(config.Level)
	config.Format = strings.ToLower(config.Format)
	config.Output = strings.ToLower(config.Output)
	return config
}
