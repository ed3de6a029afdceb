package reportsvc

import (
	"context"
	"sort"
	"time"

	"sentiment_dashboard/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// groupCount là output của {$group: {_id: "$field", count: {$sum: 1}}}.
// _id null (thiếu field) được decode thành "".
type groupCount struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

// monthFormat là format bucket theo tháng (YYYY-MM).
const monthFormat = "%Y-%m"

func yearMonthOf(field string) bson.M {
	return bson.M{"$dateToString": bson.M{"format": monthFormat, "date": "$" + field}}
}

// countBy group theo field và đếm. sortDesc/limit là tùy chọn (limit <= 0 là không giới hạn).
func countBy(ctx context.Context, col database.Collection, match bson.M, field string, sortDesc bool, limit int) ([]groupCount, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
	}
	if sortDesc {
		pipeline = append(pipeline, bson.M{"$sort": bson.M{"count": -1}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}
	return aggregate[groupCount](ctx, col, pipeline)
}

// topSummaries trả về tối đa limit overall_summary (không rỗng) phổ biến nhất cho một sentiment.
func topSummaries(ctx context.Context, col database.Collection, base bson.M, sentiment string, limit int) ([]groupCount, error) {
	match := with(base, bson.M{
		"overall_sentiment": sentiment,
		"overall_summary":   bson.M{"$ne": ""},
	})
	rows, err := countBy(ctx, col, match, "overall_summary", true, limit)
	if err != nil {
		return nil, err
	}
	return sortedDesc(rows, limit), nil
}

// sortedDesc sắp xếp ổn định theo count giảm dần và cắt limit; bằng nhau thì giữ thứ tự của store.
func sortedDesc(rows []groupCount, limit int) []groupCount {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func aggregate[T any](ctx context.Context, col database.Collection, pipeline []bson.M) ([]T, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, storeErr(err)
	}
	out, err := database.DecodeAll[T](ctx, cursor)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func count(ctx context.Context, col database.Collection, filter bson.M) (int64, error) {
	n, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// lastUpdated trả về time_period mới nhất trong filter, hoặc now khi không có.
func lastUpdated(ctx context.Context, col database.Collection, filter bson.M, now time.Time) (time.Time, error) {
	var doc struct {
		TimePeriod *time.Time `bson:"time_period"`
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "time_period", Value: -1}}).
		SetProjection(bson.M{"time_period": 1})
	err := col.FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments || (err == nil && doc.TimePeriod == nil) {
		return now, nil
	}
	if err != nil {
		return time.Time{}, storeErr(err)
	}
	return doc.TimePeriod.UTC(), nil
}
