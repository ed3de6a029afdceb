// Package reportsvc chứa các report sentiment: filter -> aggregate -> reshape trên
// collection review đã gán nhãn và các rollup đi kèm.
package reportsvc

import (
	"context"
	"fmt"
	"time"

	"sentiment_dashboard/core/common"
	"sentiment_dashboard/core/global"
	"sentiment_dashboard/core/logger"
	"sentiment_dashboard/internal/database"
	"sentiment_dashboard/internal/metrics"
	"sentiment_dashboard/internal/summarizer"

	"github.com/sirupsen/logrus"
)

// EmptyBasePolicy quyết định report làm gì khi base predicate không match document nào.
type EmptyBasePolicy int

const (
	// NotFoundOnEmptyBase trả lỗi 404.
	NotFoundOnEmptyBase EmptyBasePolicy = iota
	// ZeroFillOnEmptyBase trả shape với toàn số 0.
	ZeroFillOnEmptyBase
)

// DetailFallbackPolicy cho /report/detail_categories.
type DetailFallbackPolicy string

const (
	DetailFallbackNone     DetailFallbackPolicy = "none"
	DetailFallbackPreSaved DetailFallbackPolicy = "pre_saved"
)

// Summarizer là phần của summarizer.Client mà report cần.
type Summarizer interface {
	Summarize(ctx context.Context, pros, cons []string) (*summarizer.ProsCons, error)
}

// Collections gom các collection report đọc.
type Collections struct {
	Reviews          database.Collection
	MonthlyRollups   database.Collection
	LifetimeInsights database.Collection
	EmotionDetails   database.Collection
	PreSavedDetails  database.Collection
}

// Options là cấu hình report, đọc từ REPORT_* env.
type Options struct {
	Platforms      []string
	DetailMinShare float64 // percent
	DetailFallback DetailFallbackPolicy
	MonthlyCutoff  time.Time // first month without data
	Now            func() time.Time
}

// ReportService build các report, không giữ state theo request.
type ReportService struct {
	cols       Collections
	opts       Options
	summarizer Summarizer
}

// NewReportService lấy collections từ registry và options từ cấu hình toàn cục.
func NewReportService(sum Summarizer) (*ReportService, error) {
	names := []string{
		global.MongoDB_ColNames.Reviews,
		global.MongoDB_ColNames.MonthlyRollups,
		global.MongoDB_ColNames.LifetimeInsights,
		global.MongoDB_ColNames.EmotionDetails,
		global.MongoDB_ColNames.PreSavedDetails,
	}
	found := make([]database.Collection, 0, len(names))
	for _, name := range names {
		col, err := global.RegistryCollections.MustGet(name)
		if err != nil {
			return nil, fmt.Errorf("không tìm thấy collection %s: %w", name, err)
		}
		found = append(found, col)
	}

	cfg := global.MongoDB_ServerConfig
	opts := Options{
		Platforms:      cfg.ReportPlatforms,
		DetailMinShare: cfg.ReportDetailMinShare,
		DetailFallback: DetailFallbackPolicy(cfg.ReportDetailFallback),
		MonthlyCutoff:  cfg.MonthlyCutoff(),
	}
	return NewReportServiceWithCollections(Collections{
		Reviews:          found[0],
		MonthlyRollups:   found[1],
		LifetimeInsights: found[2],
		EmotionDetails:   found[3],
		PreSavedDetails:  found[4],
	}, opts, sum), nil
}

// NewReportServiceWithCollections dùng cho test và wiring thủ công.
func NewReportServiceWithCollections(cols Collections, opts Options, sum Summarizer) *ReportService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Platforms) == 0 {
		opts.Platforms = []string{"gorgias", "trustpilot", "opencx"}
	}
	if opts.DetailFallback == "" {
		opts.DetailFallback = DetailFallbackPreSaved
	}
	if opts.MonthlyCutoff.IsZero() {
		opts.MonthlyCutoff = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	}
	return &ReportService{cols: cols, opts: opts, summarizer: sum}
}

func (s *ReportService) now() time.Time {
	return s.opts.Now().UTC()
}

// track ghi metric và performance log cho một report. Use as
// `defer s.track("trends", time.Now(), &err)`.
func (s *ReportService) track(report string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	metrics.ObserveReport(report, start, err)

	entry := logger.GetPerformanceLogger().WithFields(logrus.Fields{
		"module":      "report",
		"report":      report,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Warn("Report failed")
		return
	}
	entry.Debug("Report built")
}

// storeErr chuyển lỗi driver thành *common.Error (500, giữ message của driver).
func storeErr(err error) error {
	return common.ConvertMongoError(err)
}
