package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// FilterHook drops entries whose "module" field is outside the allowed set.
// Warnings and above always pass.
type FilterHook struct {
	allowedModules map[string]bool
}

// NewFilterHook tạo một filter hook mới với cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{allowedModules: parseFilter(cfg.FilterModules)}
}

func parseFilter(raw string) map[string]bool {
	allowed := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		if part == "*" {
			return map[string]bool{}
		}
		allowed[part] = true
	}
	return allowed
}

// Allow reports whether an entry passes the filter.
func (h *FilterHook) Allow(entry *logrus.Entry) bool {
	if len(h.allowedModules) == 0 || entry.Level <= logrus.WarnLevel {
		return true
	}
	module, ok := entry.Data["module"].(string)
	if !ok {
		return true
	}
	return h.allowedModules[strings.ToLower(module)]
}
