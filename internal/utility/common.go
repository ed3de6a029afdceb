package utility

import (
	"regexp"
	"strings"
	"time"

	"sentiment_dashboard/core/common"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UnixMilli trả về mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixMilli()
}

// ValidateEmail kiểm tra định dạng email
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidFormat
	}
	return nil
}

// ValidatePassword kiểm tra độ dài tối thiểu của mật khẩu
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return common.ErrWeakPassword
	}
	return nil
}

// HasEmailDomain reports whether email ends with domain, case-insensitively.
// An empty domain allows everything.
func HasEmailDomain(email, domain string) bool {
	if domain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(domain))
}
