// Package basehdl chứa các helper dùng chung cho handler: response envelope,
// parse/validate input và health check.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// WriteResult ghi data (200) hoặc error envelope. Body thành công là chính
// record có kiểu, không bọc thêm.
func WriteResult(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return WriteError(c, err)
	}
	return JSONResponse(c, common.StatusOK, data)
}

// ErrorBody là error envelope. Detail lặp lại Message cho client đọc field "detail".
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  string      `json:"detail"`
	Details interface{} `json:"details,omitempty"`
	Status  string      `json:"status"`
}

// ErrorBodyOf chuyển err thành envelope và status code.
func ErrorBodyOf(err error) (int, ErrorBody) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return customErr.StatusCode, ErrorBody{
			Code:    customErr.Code.Code,
			Message: customErr.Message,
			Detail:  customErr.Message,
			Details: customErr.Details,
			Status:  "error",
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := common.ErrCodeValidationInput.Code
		if fiberErr.Code >= common.StatusInternalServerError {
			code = common.ErrCodeInternalServer.Code
		}
		return fiberErr.Code, ErrorBody{Code: code, Message: fiberErr.Message, Detail: fiberErr.Message, Status: "error"}
	}

	return common.StatusInternalServerError, ErrorBody{
		Code:    common.ErrCodeInternalServer.Code,
		Message: err.Error(),
		Detail:  err.Error(),
		Status:  "error",
	}
}

// WriteError ghi error envelope; 5xx được log vào error logger.
func WriteError(c fiber.Ctx, err error) error {
	status, body := ErrorBodyOf(err)
	if status >= common.StatusInternalServerError {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"path":       c.Path(),
			"method":     c.Method(),
			"code":       body.Code,
			"request_id": logger.RequestID(c),
		}).WithError(err).Error("Request failed")
	}
	return JSONResponse(c, status, body)
}

// ErrorHandler là fiber.Config.ErrorHandler: mọi lỗi lọt khỏi handler đều thành envelope.
func ErrorHandler(c fiber.Ctx, err error) error {
	return WriteError(c, err)
}

// SafeHandler bọc handler với recover để server luôn trả về response, kể cả khi panic.
func SafeHandler(c fiber.Ctx, handler func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithField("stack", string(debug.Stack())).
				Errorf("Panic in handler %s: %v", c.Path(), r)
			err = WriteError(c, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}
