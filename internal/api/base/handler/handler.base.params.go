package basehdl

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/global"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// FieldError là một lỗi validate trong details của envelope.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidateInput chạy global.Validate trên input; lỗi trả về là ErrInvalidInput kèm danh sách field.
func ValidateInput(input interface{}) error {
	if global.Validate == nil {
		global.InitValidator()
	}
	err := global.Validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return common.WithDetails(common.ErrInvalidInput, err.Error())
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return common.WithDetails(common.ErrInvalidInput, fields)
}

// ParseRequestBody parse JSON body vào input rồi validate.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.WithDetails(common.ErrInvalidFormat, err.Error())
	}
	return ValidateInput(input)
}

// OptString trả về nil khi query param không có hoặc rỗng.
func OptString(c fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

// OptInt trả về nil khi query param không có; giá trị không phải số nguyên là lỗi 400.
func OptInt(c fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, common.WithDetails(common.ErrInvalidInput, []FieldError{{Field: key, Rule: "int"}})
	}
	return &n, nil
}

// IntOr giống OptInt nhưng trả về def khi param vắng mặt.
func IntOr(c fiber.Ctx, key string, def int) (int, error) {
	n, err := OptInt(c, key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return def, nil
	}
	return *n, nil
}
