package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthlyRollup là phân tích đã tính sẵn cho một (company, tháng) trong
// sentimental_analysis_monthly. Chỉ các key có kiểu, payload trả về nguyên trạng.
type MonthlyRollup struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Company   string             `json:"company" bson:"company" index:"compound:rollup_company_start"`
	StartDate time.Time          `json:"start_date" bson:"start_date" index:"compound:rollup_company_start,order:-1"`
	EndDate   time.Time          `json:"end_date" bson:"end_date"`
}

// EmotionDetail là một dòng trong sentimental_emotion_analysis_detail
// (cùng schema với sentimental_analysis_pre_save_data).
type EmotionDetail struct {
	ID                           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OverallSentimentDetail       string             `json:"overall_sentiment_detail" bson:"overall_sentiment_detail"`
	Categories                   []string           `json:"categories" bson:"categories"`
	OverallSentimentalCategories []string           `json:"overall_sentimental_categories" bson:"overall_sentimental_categories"`
	Summary                      string             `json:"summary" bson:"summary"`
	Platform                     string             `json:"platform" bson:"platform"`
	Company                      string             `json:"company" bson:"company" index:"compound:emotion_company_created"`
	CreatedAt                    time.Time          `json:"created_at" bson:"created_at" index:"compound:emotion_company_created,order:-1"`
}
