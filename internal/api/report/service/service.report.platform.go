package reportsvc

import (
	"context"
	"time"

	reportdto "sentiment_dashboard/internal/api/report/dto"
	"sentiment_dashboard/internal/api/report/models"
	"sentiment_dashboard/internal/utility"
)

// PlatformComparison - /report/platform_comparison (days mặc định 60): sentiment % theo
// từng platform cấu hình. Platform không có review nhận entry toàn số 0.
func (s *ReportService) PlatformComparison(ctx context.Context, q reportdto.FilterQuery) (out *reportdto.PlatformComparisonReport, err error) {
	defer s.track("platform_comparison", time.Now(), &err)

	now := s.now()
	out = &reportdto.PlatformComparisonReport{Platforms: make([]reportdto.PlatformComparisonItem, 0, len(s.opts.Platforms))}

	for _, platform := range s.opts.Platforms {
		p := platform
		f := DaysFilter(reportdto.FilterQuery{Platform: &p, Company: q.Company, Days: q.Days}, 60, now)
		match := f.WithSentiments(models.Sentiments...)
		item := reportdto.PlatformComparisonItem{Platform: platform}

		total, err := count(ctx, s.cols.Reviews, match)
		if err != nil {
			return nil, err
		}
		if total == 0 {
			if err := emptyBase(ZeroFillOnEmptyBase, nil); err != nil {
				return nil, err
			}
			out.Platforms = append(out.Platforms, item)
			continue
		}

		rows, err := countBy(ctx, s.cols.Reviews, match, "overall_sentiment", false, 0)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			switch r.ID {
			case models.SentimentPositive:
				item.Positive = utility.Percent(r.Count, total)
			case models.SentimentNegative:
				item.Negative = utility.Percent(r.Count, total)
			case models.SentimentNeutral:
				item.Neutral = utility.Percent(r.Count, total)
			}
		}
		out.Platforms = append(out.Platforms, item)
	}
	return out, nil
}
