package router

import (
	basehdl "sentiment_dashboard/internal/api/base/handler"
	"sentiment_dashboard/internal/metrics"

	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Middleware truyền trực tiếp vào route (router.Get(path, mw, handler)) không được
// gọi trong bản Fiber v3 đang dùng. Luôn đăng ký middleware qua .Use() của một group:
//
//	RegisterRouteWithMiddleware(router, "/api/verify", "GET", "", []fiber.Handler{auth}, handler)
//	g := RegisterGroupWithMiddleware(router, "/report", []fiber.Handler{auth})
//
// ============================================================================

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // /api (auth)
}

// NewRoutePrefix tạo RoutePrefix với giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: "/api"}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app    *fiber.App
	Prefix RoutePrefix
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app, Prefix: NewRoutePrefix()}
}

// RegisterGroupWithMiddleware tạo group với prefix và Use mỗi middleware đúng một lần.
// Route thêm vào group trả về sẽ chạy toàn bộ chuỗi middleware.
func RegisterGroupWithMiddleware(router fiber.Router, prefix string, middlewares []fiber.Handler) fiber.Router {
	group := router.Group(prefix)
	for _, mw := range middlewares {
		if mw != nil {
			group.Use(mw)
		}
	}
	return group
}

// RegisterRouteWithMiddleware đăng ký một route với middleware riêng.
// Prefix phải riêng cho route để middleware không lan sang route khác.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := RegisterGroupWithMiddleware(router, prefix, middlewares)

	switch method {
	case fiber.MethodGet:
		routeGroup.Get(path, handler)
	case fiber.MethodPost:
		routeGroup.Post(path, handler)
	case fiber.MethodPut:
		routeGroup.Put(path, handler)
	case fiber.MethodDelete:
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(root fiber.Router, r *Router) error

// SetupRoutes đăng ký /health, /metrics rồi route của từng domain.
// Caller truyền Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)

	system := basehdl.NewSystemHandler()
	app.Get("/health", system.HandleHealth)
	app.Get("/metrics", metrics.Handler())

	for _, reg := range regs {
		if err := reg(app, r); err != nil {
			return err
		}
	}
	return nil
}
