// Package reportdto chứa DTO (query + response) cho domain Report.
package reportdto

// FilterQuery là bộ tham số lọc chung của các report.
// nil nghĩa là không truyền; chuỗi rỗng không bao giờ được dùng thay cho "không có".
type FilterQuery struct {
	Platform  *string `query:"platform"`
	Company   *string `query:"company"`
	StartDate *string `query:"start_date"`
	EndDate   *string `query:"end_date"`
	Days      *int    `query:"days" validate:"omitempty,min=0"`
}

// CategoryTableQuery cho GET /report/category_table.
type CategoryTableQuery struct {
	FilterQuery
	Sentiment *string `query:"sentiment"`
	Limit     int     `query:"limit" validate:"min=1,max=500"`
}

// DetailedQuery cho GET /report/detailed.
type DetailedQuery struct {
	FilterQuery
	Limit int `query:"limit" validate:"min=1,max=500"`
}

// ReviewListQuery cho GET /reviews.
type ReviewListQuery struct {
	Sentiment *string `query:"sentiment"`
	Platform  *string `query:"platform"`
	Company   *string `query:"company"`
	Skip      int     `query:"skip" validate:"min=0"`
	Limit     int     `query:"limit" validate:"min=1,max=500"`
}

// IssueDetailsQuery cho GET /report/issue_details. Category có thể là nhãn đã humanize.
type IssueDetailsQuery struct {
	Category  string  `query:"category" validate:"required,no_xss"`
	Sentiment *string `query:"sentiment"`
	Company   *string `query:"company"`
	Limit     int     `query:"limit" validate:"min=1,max=500"`
}

// CategoryAnalysisQuery cho GET /report/category_analysis.
type CategoryAnalysisQuery struct {
	Category string  `query:"category" validate:"required,no_xss"`
	Company  *string `query:"company"`
}

// MonthlyAnalysisQuery cho GET /report/monthly_analysis.
type MonthlyAnalysisQuery struct {
	Company string `query:"company" validate:"required"`
	Year    int    `query:"year" validate:"required,min=1,max=9999"`
	Month   int    `query:"month" validate:"required,min=1,max=12"`
}

// AvailableMonthsQuery cho GET /report/available_months.
type AvailableMonthsQuery struct {
	Company string `query:"company" validate:"required"`
	Limit   int    `query:"limit" validate:"min=1,max=500"`
}
