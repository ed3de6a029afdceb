// Package authhdl - HTTP handler cho signup, signin, verify và signout.
package authhdl

import (
	"strings"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/logger"
	authdto "sentiment_dashboard/internal/api/auth/dto"
	authsvc "sentiment_dashboard/internal/api/auth/service"
	basehdl "sentiment_dashboard/internal/api/base/handler"
	"sentiment_dashboard/internal/api/middleware"
	"sentiment_dashboard/internal/metrics"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler xử lý các route /api/signup, /api/signin, /api/verify, /api/signout.
type AuthHandler struct {
	svc *authsvc.UserService
}

func NewAuthHandler(svc *authsvc.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func record(c fiber.Ctx, action string, err error, details map[string]interface{}) {
	metrics.AuthEvents.WithLabelValues(action, metrics.Outcome(err)).Inc()
	if details == nil {
		details = map[string]interface{}{}
	}
	details["success"] = err == nil
	if err != nil {
		details["error"] = err.Error()
	}
	logger.LogAuth(action, c, details)
}

// HandleSignup tạo tài khoản từ JSON {email, password}.
func (h *AuthHandler) HandleSignup(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.SignupInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			record(c, "signup", err, nil)
			return basehdl.WriteError(c, err)
		}
		result, err := h.svc.Signup(c.Context(), &input)
		record(c, "signup", err, map[string]interface{}{"email": strings.ToLower(input.Email)})
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusCreated, result)
	})
}

// HandleSignin nhận form username/password và trả về bearer token.
func (h *AuthHandler) HandleSignin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := authdto.SigninInput{
			Username: strings.TrimSpace(c.FormValue("username")),
			Password: c.FormValue("password"),
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			record(c, "signin", err, nil)
			return basehdl.WriteError(c, err)
		}
		result, err := h.svc.Signin(c.Context(), &input)
		record(c, "signin", err, map[string]interface{}{"email": strings.ToLower(input.Username)})
		return basehdl.WriteResult(c, result, err)
	})
}

// HandleVerify trả về danh tính của token hiện tại.
func (h *AuthHandler) HandleVerify(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, err := middleware.BearerToken(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		result, err := h.svc.Verify(c.Context(), token)
		return basehdl.WriteResult(c, result, err)
	})
}

// HandleSignout thu hồi token hiện tại.
func (h *AuthHandler) HandleSignout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token, err := middleware.BearerToken(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}
		result, err := h.svc.Signout(c.Context(), token)
		record(c, "signout", err, nil)
		return basehdl.WriteResult(c, result, err)
	})
}
