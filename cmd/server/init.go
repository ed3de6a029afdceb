package main

import (
	"sentiment_dashboard/config"
	"sentiment_dashboard/core/global"
	"sentiment_dashboard/internal/database"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Reviews = "sentimental_analysis"
	global.MongoDB_ColNames.MonthlyRollups = "sentimental_analysis_monthly"
	global.MongoDB_ColNames.LifetimeInsights = "shopify_insights_lifetime"
	global.MongoDB_ColNames.EmotionDetails = "sentimental_emotion_analysis_detail"
	global.MongoDB_ColNames.PreSavedDetails = "sentimental_analysis_pre_save_data"

	global.MongoDB_ColNames.Users = "auth_users"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, email_domain)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	global.MongoDB_ServerConfig = cfg
	global.SetAllowedEmailDomain(cfg.AuthAllowedEmailDomain)
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")
}
