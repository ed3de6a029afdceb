package utility

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimePeriodLayout là định dạng time_period trong danh sách review.
const TimePeriodLayout = "2006-01-02 15:04:05"

// Percent trả về count/total*100 làm tròn 2 chữ số. total <= 0 gives 0.
func Percent(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(float64(count) / float64(total) * 100)
}

// Round2 làm tròn 2 chữ số thập phân.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NormalizeDocument chuyển document Mongo sang dạng JSON-friendly:
// ObjectID thành chuỗi hex, datetime thành RFC 3339 (UTC). Duyệt cả document lồng
// nhau và mảng.
func NormalizeDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v, time.RFC3339)
	}
	return out
}

// NormalizeReview giống NormalizeDocument nhưng time_period dùng TimePeriodLayout.
func NormalizeReview(doc bson.M) map[string]interface{} {
	out := NormalizeDocument(doc)
	if tp, ok := doc["time_period"]; ok {
		out["time_period"] = normalizeValue(tp, TimePeriodLayout)
	}
	return out
}

func normalizeValue(v interface{}, layout string) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC().Format(layout)
	case time.Time:
		return val.UTC().Format(layout)
	case bson.M:
		return NormalizeDocument(val)
	case bson.D:
		return NormalizeDocument(val.Map())
	case bson.A:
		arr := make([]interface{}, len(val))
		for i, item := range val {
			arr[i] = normalizeValue(item, layout)
		}
		return arr
	case []interface{}:
		arr := make([]interface{}, len(val))
		for i, item := range val {
			arr[i] = normalizeValue(item, layout)
		}
		return arr
	default:
		return v
	}
}
