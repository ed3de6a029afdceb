package middleware

import (
	"context"
	"strings"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/logger"
	basehdl "sentiment_dashboard/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// TokenVerifier kiểm tra bearer token và trả về danh tính trong token.
type TokenVerifier interface {
	VerifyBearer(ctx context.Context, token string) (userID, email string, err error)
}

// BearerToken lấy token từ header Authorization: Bearer <token>.
func BearerToken(c fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", common.ErrTokenMissing
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", common.ErrTokenInvalid
	}
	return strings.TrimSpace(token), nil
}

// AuthMiddleware yêu cầu bearer token hợp lệ; user id và email được lưu vào Locals.
func AuthMiddleware(v TokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, err := BearerToken(c)
		if err != nil {
			return basehdl.WriteError(c, err)
		}

		userID, email, err := v.VerifyBearer(c.Context(), token)
		if err != nil {
			logger.WithRequest(c).WithField("module", "auth").WithError(err).Debug("Bearer token rejected")
			return basehdl.WriteError(c, err)
		}

		c.Locals(logger.UserIDKey, userID)
		c.Locals(logger.UserEmailKey, email)
		return c.Next()
	}
}
