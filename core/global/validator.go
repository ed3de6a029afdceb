package global

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	allowedEmailDomain   string
	allowedEmailDomainMu sync.RWMutex
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Field errors name the json/query/form key instead of the Go field.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("email_domain", validateEmailDomain)
}

// SetAllowedEmailDomain đặt domain cho validator "email_domain", ví dụ "@joineverestgroup.com".
func SetAllowedEmailDomain(domain string) {
	allowedEmailDomainMu.Lock()
	defer allowedEmailDomainMu.Unlock()
	allowedEmailDomain = strings.ToLower(strings.TrimSpace(domain))
}

// validateEmailDomain passes when no domain is configured.
func validateEmailDomain(fl validator.FieldLevel) bool {
	allowedEmailDomainMu.RLock()
	domain := allowedEmailDomain
	allowedEmailDomainMu.RUnlock()
	if domain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fl.Field().String()), domain)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}

	value := strings.ToLower(fl.Field().String())
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}
