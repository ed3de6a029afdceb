package utility

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HumanizeLabel đổi token snake_case thành nhãn hiển thị:
// "missing_sheet_in_partial_delivery" -> "Missing Sheet In Partial Delivery".
// Mọi ký tự không phải chữ cái đều ngắt từ, nên "abc1def" -> "Abc1Def".
func HumanizeLabel(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.Und) // Caser có state, không dùng chung giữa goroutine

	var b strings.Builder
	b.Grow(len(s))
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}

// ToCategoryToken là chiều ngược lại của HumanizeLabel (lowercase, space -> "_").
func ToCategoryToken(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
