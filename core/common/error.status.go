package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest      = 400
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
)

// Response Messages
const (
	MsgNotFound        = "Resource not found"
	MsgTooManyRequests = "Too many requests, please try again later"

	MsgTokenMissing = "Missing authentication token"
	MsgTokenInvalid = "Invalid token"
	MsgTokenExpired = "Token has expired"

	MsgNoReviewData       = "No review data found"
	MsgNoDetailData       = "No review data found for sentiment detail"
	MsgInsightsNotFound   = "Data not found"
	MsgValidationError    = "Invalid input data"
	MsgSummarizerFailure  = "Summarization service failed"
	MsgSummarizerDisabled = "Summarization service is not configured"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // ví dụ: AUTH_001
	Category    string
	SubCategory string
	Description string
}

var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal system error",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Bearer token missing, malformed, expired or revoked",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Email or password is wrong",
	}

	ErrCodeAuthAccount = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Account",
		Description: "Account already exists",
	}

	ErrCodeAuthDomain = ErrorCode{
		Code:        "AUTH_004",
		Category:    "Authentication",
		SubCategory: "Domain",
		Description: "Email outside the allowed domain",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Invalid format",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Query error",
	}

	// Report Errors (REP_xxx)
	ErrCodeReportNoData = ErrorCode{
		Code:        "REP_001",
		Category:    "Report",
		SubCategory: "Empty",
		Description: "No documents match the report base filter",
	}

	ErrCodeReportPeriodMissing = ErrorCode{
		Code:        "REP_002",
		Category:    "Report",
		SubCategory: "Period",
		Description: "No rollup stored for the requested month",
	}

	ErrCodeReportPeriodCutoff = ErrorCode{
		Code:        "REP_003",
		Category:    "Report",
		SubCategory: "Period",
		Description: "Requested month is beyond the data availability cutoff",
	}

	// Upstream Errors (UPS_xxx)
	ErrCodeUpstreamSummarizer = ErrorCode{
		Code:        "UPS_001",
		Category:    "Upstream",
		SubCategory: "Summarizer",
		Description: "Summarization service error",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Operation rejected",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on code and message so that predefined errors work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code && e.Message == t.Message
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// WithDetails returns a copy of a predefined error carrying details.
func WithDetails(err error, details any) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	return NewError(e.Code, e.Message, e.StatusCode, details)
}

var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Incorrect email or password", StatusBadRequest, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusBadRequest, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusBadRequest, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusBadRequest, nil)
	ErrTokenRevoked       = NewError(ErrCodeAuthToken, "Token has been revoked", StatusBadRequest, nil)
	ErrEmailDomain        = NewError(ErrCodeAuthDomain, "Email domain is not allowed", StatusBadRequest, nil)
	ErrAccountExists      = NewError(ErrCodeAuthAccount, "Email already registered", StatusBadRequest, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "Password must be at least 8 characters", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Invalid data format", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Database connection error", StatusServiceUnavailable, nil)

	// Report Errors
	ErrNoReviewData     = NewError(ErrCodeReportNoData, MsgNoReviewData, StatusNotFound, nil)
	ErrNoDetailData     = NewError(ErrCodeReportNoData, MsgNoDetailData, StatusNotFound, nil)
	ErrInsightsNotFound = NewError(ErrCodeReportNoData, MsgInsightsNotFound, StatusNotFound, nil)
	ErrRollupNotFound   = NewError(ErrCodeReportPeriodMissing, "No monthly analysis stored for the requested month", StatusNotFound, nil)
	ErrPeriodBeyondData = NewError(ErrCodeReportPeriodCutoff, "Requested month is beyond the available data", StatusBadRequest, nil)

	// Upstream Errors
	ErrSummarizerFailure  = NewError(ErrCodeUpstreamSummarizer, MsgSummarizerFailure, StatusBadGateway, nil)
	ErrSummarizerDisabled = NewError(ErrCodeUpstreamSummarizer, MsgSummarizerDisabled, StatusBadGateway, nil)
)

// MongoDB Error Messages
const (
	MsgMongoNetwork   = "MongoDB network error"
	MsgMongoTimeout   = "MongoDB operation timed out"
	MsgMongoDuplicate = "Duplicate key in MongoDB"
)

// ConvertMongoError maps a driver error to a *Error. The driver message is kept in Details
// so the caller sees the underlying cause.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrCodeDatabaseQuery, MsgMongoDuplicate, StatusConflict, err.Error())
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, MsgMongoTimeout, StatusInternalServerError, err.Error())
	}
	if mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, MsgMongoNetwork, StatusInternalServerError, err.Error())
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return NewError(ErrCodeDatabaseQuery, cmdErr.Message, StatusInternalServerError, err.Error())
	}

	return NewError(ErrCodeDatabase, err.Error(), StatusInternalServerError, nil)
}
