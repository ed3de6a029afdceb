package router

import (
	authhdl "sentiment_dashboard/internal/api/auth/handler"
	apirouter "sentiment_dashboard/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register trả về hàm đăng ký route auth dưới /api.
// signup/signin công khai, verify/signout cần bearer token.
func Register(h *authhdl.AuthHandler, auth fiber.Handler) apirouter.RegisterFunc {
	return func(root fiber.Router, r *apirouter.Router) error {
		base := r.Prefix.Base
		root.Post(base+"/signup", h.HandleSignup)
		root.Post(base+"/signin", h.HandleSignin)

		mws := []fiber.Handler{auth}
		apirouter.RegisterRouteWithMiddleware(root, base+"/verify", fiber.MethodGet, "", mws, h.HandleVerify)
		apirouter.RegisterRouteWithMiddleware(root, base+"/signout", fiber.MethodPost, "", mws, h.HandleSignout)
		return nil
	}
}
