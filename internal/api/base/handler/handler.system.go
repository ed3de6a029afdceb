package basehdl

import (
	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/global"
	"sentiment_dashboard/core/logger"
	"sentiment_dashboard/internal/database"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// SystemHandler xử lý các route system (health).
type SystemHandler struct {
	client func() *mongo.Client
}

// NewSystemHandler tạo SystemHandler dùng global.MongoDB_Session.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{client: func() *mongo.Client { return global.MongoDB_Session }}
}

// HandleHealth - GET /health: {status:"ok"} khi ping MongoDB thành công.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	client := h.client()
	if client == nil {
		return WriteError(c, common.ErrConnection)
	}
	if err := database.Ping(client); err != nil {
		logger.WithModule("system").WithError(err).Warn("Health check failed")
		return WriteError(c, common.WithDetails(common.ErrConnection, err.Error()))
	}
	return JSONResponse(c, common.StatusOK, fiber.Map{"status": "ok"})
}
