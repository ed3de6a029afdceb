package main

import (
	"fmt"
	"strings"
	"time"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/global"
	"sentiment_dashboard/core/logger"
	authhdl "sentiment_dashboard/internal/api/auth/handler"
	authrouter "sentiment_dashboard/internal/api/auth/router"
	authsvc "sentiment_dashboard/internal/api/auth/service"
	basehdl "sentiment_dashboard/internal/api/base/handler"
	"sentiment_dashboard/internal/api/middleware"
	reporthdl "sentiment_dashboard/internal/api/report/handler"
	reportrouter "sentiment_dashboard/internal/api/report/router"
	reportsvc "sentiment_dashboard/internal/api/report/service"
	"sentiment_dashboard/internal/api/router"
	"sentiment_dashboard/internal/metrics"
	"sentiment_dashboard/internal/summarizer"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() (*fiber.App, error) {
	cfg := global.MongoDB_ServerConfig

	app := fiber.New(fiber.Config{
		// =========================================
		// 1. CẤU HÌNH CƠ BẢN
		// =========================================
		AppName:       "Sentiment Dashboard API",
		ServerHeader:  "Sentiment Dashboard API",
		StrictRouting: true,
		CaseSensitive: true,
		UnescapePath:  true,

		// =========================================
		// 2. CẤU HÌNH PERFORMANCE / TIMEOUT
		// =========================================
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // pros_cons chờ summarizer
		IdleTimeout:  120 * time.Second,

		// =========================================
		// 3. CẤU HÌNH ERROR HANDLING
		// =========================================
		ErrorHandler: basehdl.ErrorHandler,
	})

	// =========================================
	// MIDDLEWARE STACK
	// =========================================

	// 1. Request ID Middleware - Tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header:    "X-Request-ID",
		Generator: uuid.NewString,
	}))

	// 2. CORS Middleware - đặt sớm để xử lý preflight
	var allowOrigins []string
	if cfg.CORS_Origins == "*" {
		allowOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(cfg.CORS_Origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowOrigins = append(allowOrigins, origin)
			}
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security Headers Middleware
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if cfg.EnableTLS {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		return c.Next()
	})

	// 4. Rate Limiting Middleware
	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return basehdl.WriteError(c, common.NewError(common.ErrCodeBusinessOperation, common.MsgTooManyRequests, common.StatusTooManyRequests, nil))
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/health" || c.Path() == "/metrics" || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 5. Recover Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", e).Error("Panic recovered")
		},
	}))

	// 6. Metrics + request log
	metrics.Init()
	app.Use(metrics.Middleware())
	app.Use(middleware.RequestLogger())

	// =========================================
	// SERVICES + ROUTES
	// =========================================
	sum := summarizer.New(summarizer.SettingsFromConfig(cfg))
	if !sum.Enabled() {
		log.Warn("OPENAI_API_KEY is empty, /report/pros_cons will return 502")
	}
	reportService, err := reportsvc.NewReportService(sum)
	if err != nil {
		return nil, fmt.Errorf("init report service: %w", err)
	}

	userService, err := authsvc.NewUserService(newDenylist(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
	if err != nil {
		return nil, fmt.Errorf("init user service: %w", err)
	}
	auth := middleware.AuthMiddleware(userService)

	var reportAuth fiber.Handler
	if cfg.ReportRequireAuth {
		reportAuth = auth
	}

	if err := router.SetupRoutes(app,
		reportrouter.Register(reporthdl.NewReportHandler(reportService), reportAuth),
		authrouter.Register(authhdl.NewAuthHandler(userService), auth),
	); err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}
	return app, nil
}

// newDenylist dùng Redis khi có REDIS_ADDR, ngược lại giữ trong process.
func newDenylist(addr, password string, db int) authsvc.Denylist {
	log := logger.WithModule("auth")
	if addr == "" {
		log.Info("REDIS_ADDR is empty, token denylist is in-process")
		return authsvc.NewCacheDenylist()
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	log.WithField("addr", addr).Info("Token denylist uses Redis")
	return authsvc.NewRedisDenylist(client)
}
