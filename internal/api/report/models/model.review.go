// Package models chứa document của domain Report. Document do pipeline upstream ghi;
// service này chỉ đọc và khai báo index cho các query.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentiment values written by the classifier.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Sentiments là ba nhãn hợp lệ theo thứ tự hiển thị.
var Sentiments = []string{SentimentPositive, SentimentNegative, SentimentNeutral}

// Review là một review đã gán nhãn (sentimental_analysis).
type Review struct {
	ID                         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Platform                   string             `json:"platform" bson:"platform" index:"compound:review_platform_company_time"`
	Company                    string             `json:"company" bson:"company" index:"compound:review_platform_company_time;single"`
	TimePeriod                 *time.Time         `json:"time_period" bson:"time_period" index:"compound:review_platform_company_time,order:-1"`
	OverallSentiment           string             `json:"overall_sentiment" bson:"overall_sentiment" index:"single"`
	OverallSentimentDetail     string             `json:"overall_sentiment_detail" bson:"overall_sentiment_detail"`
	OverallSentimentalCategory string             `json:"overall_sentimental_category" bson:"overall_sentimental_category" index:"single"`
	OverallSummary             string             `json:"overall_summary" bson:"overall_summary"`
	Category                   string             `json:"category" bson:"category" index:"single"`
}
