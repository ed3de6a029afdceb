package reportdto

import "time"

// OverallReport - /report/overall_by_platform
type OverallReport struct {
	OverallSentiment map[string]float64 `json:"overall_sentiment"` // % theo sentiment
	TotalReviews     int64              `json:"total_reviews"`
	LastUpdated      time.Time          `json:"last_updated"`
	SentimentCounts  map[string]int64   `json:"sentiment_counts"` // số lượng thô
}

// TrendPoint một tháng trong /report/trends.
type TrendPoint struct {
	Month    string `json:"month"` // YYYY-MM
	Positive int64  `json:"positive"`
	Negative int64  `json:"negative"`
	Neutral  int64  `json:"neutral"`
}

type TrendReport struct {
	Trends []TrendPoint `json:"trends"`
}

// CategoryCount một category trong top của /report/monthly_feedback.
type CategoryCount struct {
	Category  string `json:"category"`
	Sentiment string `json:"sentiment"`
	Count     int64  `json:"count"`
}

type MonthlyFeedbackItem struct {
	Month       string          `json:"month"`
	TopPositive []CategoryCount `json:"top_positive"`
	TopNegative []CategoryCount `json:"top_negative"`
}

type MonthlyFeedbackReport struct {
	Data []MonthlyFeedbackItem `json:"data"`
}

type NegativeTrendPoint struct {
	Month    string `json:"month"`
	Negative int64  `json:"negative"`
}

type NegativeTrendReport struct {
	Trends []NegativeTrendPoint `json:"trends"`
}

type ProsConsItem struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type ProsConsReport struct {
	Pros []ProsConsItem `json:"pros"`
	Cons []ProsConsItem `json:"cons"`
}

type CategoryTableRow struct {
	Category string `json:"category"` // đã humanize
	Count    int64  `json:"count"`
}

type CategoryTableReport struct {
	Table []CategoryTableRow `json:"table"`
}

// DetailedReport - /report/detailed
type DetailedReport struct {
	OverallSentiment           map[string]float64 `json:"overall_sentiment"`
	OverallSentimentDetail     map[string]float64 `json:"overall_sentiment_detail"`
	OverallSentimentalCategory map[string]int64   `json:"overall_sentimental_category"`
	TotalReviews               int64              `json:"total_reviews"`
	LastUpdated                time.Time          `json:"last_updated"`
}

type TopProsConsReport struct {
	TopPros map[string]int64 `json:"top_pros"`
	TopCons map[string]int64 `json:"top_cons"`
}

type PlatformComparisonItem struct {
	Platform string  `json:"platform"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

type PlatformComparisonReport struct {
	Platforms []PlatformComparisonItem `json:"platforms"`
}

type DetailShare struct {
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type OverallDetailReport struct {
	OverallSentimentDetail map[string]DetailShare `json:"overall_sentiment_detail"`
	TotalReviews           int64                  `json:"total_reviews"`
	LastUpdated            time.Time              `json:"last_updated"`
}

type CategorySentimentItem struct {
	Category        string           `json:"category"`
	PositiveCount   int64            `json:"positive_count"`
	NegativeCount   int64            `json:"negative_count"`
	PositiveSubcats map[string]int64 `json:"positive_subcats"`
	NegativeSubcats map[string]int64 `json:"negative_subcats"`
}

type CategorySentimentReport struct {
	CategorySentiment []CategorySentimentItem `json:"category_sentiment"`
}

type DetailCategoryItem struct {
	OverallSentimentDetail       string   `json:"overall_sentiment_detail"`
	Categories                   []string `json:"categories"`
	OverallSentimentalCategories []string `json:"overall_sentimental_categories"`
	Summary                      string   `json:"summary"`
}

type DetailCategoryReport struct {
	Details []DetailCategoryItem `json:"details"`
}

// CategoryAnalysisReport - /report/category_analysis. AvailableCategories chỉ có giá trị
// khi category không khớp review nào.
type CategoryAnalysisReport struct {
	Category              string             `json:"category"`
	SentimentCounts       map[string]float64 `json:"sentiment_counts"`
	DetailCounts          map[string]int64   `json:"detail_counts"`
	Pros                  []string           `json:"pros"`
	Cons                  []string           `json:"cons"`
	SentimentalCategories []string           `json:"sentimental_categories"`
	AvailableCategories   []string           `json:"available_categories,omitempty"`
}

type ReviewListReport struct {
	Reviews []map[string]interface{} `json:"reviews"`
}

// MonthRef một tháng có rollup.
type MonthRef struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"` // YYYY-MM
}

type AvailableMonthsReport struct {
	Company         string     `json:"company"`
	AvailableMonths []MonthRef `json:"available_months"`
}

// ShopifyInsightsReport echo các field của lifetime insights, giữ nguyên kiểu dữ liệu trong store.
type ShopifyInsightsReport struct {
	Company             interface{} `json:"company"`
	TotalGrossSales     interface{} `json:"total_gross_sales"`
	TotalCustomers      interface{} `json:"total_customers"`
	TotalOrders         interface{} `json:"total_orders"`
	BestSellingProducts interface{} `json:"best_selling_products"`
}
