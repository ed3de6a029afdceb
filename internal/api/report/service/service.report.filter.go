package reportsvc

import (
	"strings"
	"time"

	reportdto "sentiment_dashboard/internal/api/report/dto"

	"go.mongodb.org/mongo-driver/bson"
)

// dateLayouts là các dạng ISO-8601 được chấp nhận. time.Parse vẫn nhận phần lẻ của giây
// dù layout không ghi.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateBestEffort parse một ngày ISO-8601; giá trị không có offset được hiểu là UTC.
// ok = false khi không parse được, caller bỏ cận đó thay vì trả lỗi.
func ParseDateBestEffort(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ReviewFilter là base predicate của một report, dựng mới cho mỗi request.
type ReviewFilter struct {
	Platform *string
	Company  *string
	From     *time.Time // inclusive
	To       *time.Time // inclusive
}

// maxWindowDays giới hạn days để phép trừ ngày không tràn số; cửa sổ lớn hơn vẫn phủ hết dữ liệu.
const maxWindowDays = 1_000_000

// BuildReviewFilter dựng filter từ query. Days được ưu tiên hơn StartDate/EndDate.
func BuildReviewFilter(q reportdto.FilterQuery, now time.Time) ReviewFilter {
	f := ReviewFilter{
		Platform: nonEmpty(q.Platform),
		Company:  nonEmpty(q.Company),
	}

	if q.Days != nil {
		days := *q.Days
		if days > maxWindowDays {
			days = maxWindowDays
		}
		to := now.UTC()
		from := to.AddDate(0, 0, -days)
		f.From, f.To = &from, &to
		return f
	}

	if q.StartDate != nil {
		if t, ok := ParseDateBestEffort(*q.StartDate); ok {
			f.From = &t
		}
	}
	if q.EndDate != nil {
		if t, ok := ParseDateBestEffort(*q.EndDate); ok {
			f.To = &t
		}
	}
	return f
}

// DaysFilter là BuildReviewFilter với days mặc định khi query không có days.
func DaysFilter(q reportdto.FilterQuery, defaultDays int, now time.Time) ReviewFilter {
	if q.Days == nil {
		d := defaultDays
		q.Days = &d
	}
	return BuildReviewFilter(q, now)
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// window trả về {$gte,$lte} hoặc nil khi không có cận nào.
func (f ReviewFilter) window() bson.M {
	if f.From == nil && f.To == nil {
		return nil
	}
	w := bson.M{}
	if f.From != nil {
		w["$gte"] = *f.From
	}
	if f.To != nil {
		w["$lte"] = *f.To
	}
	return w
}

// BSON render filter trên field time_period.
func (f ReviewFilter) BSON() bson.M {
	return f.bsonOn("time_period")
}

// bsonOn render filter với time window trên field tuỳ ý (created_at cho emotion detail).
func (f ReviewFilter) bsonOn(timeField string) bson.M {
	m := bson.M{}
	if f.Platform != nil {
		m["platform"] = *f.Platform
	}
	if f.Company != nil {
		m["company"] = *f.Company
	}
	if w := f.window(); w != nil {
		m[timeField] = w
	}
	return m
}

// WithSentiment thu hẹp filter về một sentiment.
func (f ReviewFilter) WithSentiment(sentiment string) bson.M {
	return with(f.BSON(), bson.M{"overall_sentiment": sentiment})
}

// WithSentiments thu hẹp filter về một tập sentiment.
func (f ReviewFilter) WithSentiments(sentiments ...string) bson.M {
	return with(f.BSON(), bson.M{"overall_sentiment": bson.M{"$in": sentiments}})
}

// with trả về bản sao base đã gộp extra (extra ghi đè).
func with(base bson.M, extra bson.M) bson.M {
	out := make(bson.M, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
