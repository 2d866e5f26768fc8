package errors

import "net/http"

type AppError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码匹配，便于 errors.Is(err, ErrStatsDerivationFailed)
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

const (
	CodeStatsDerivationFailed = 1001
	CodeInvalidRange          = 1002
)

// Predefined errors
var (
	ErrNotFound = &AppError{
		Code:       404,
		Message:    "Resource not found",
		StatusCode: http.StatusNotFound,
	}
	ErrBadRequest = &AppError{
		Code:       400,
		Message:    "Bad request",
		StatusCode: http.StatusBadRequest,
	}
	ErrInternalServer = &AppError{
		Code:       500,
		Message:    "Internal server error",
		StatusCode: http.StatusInternalServerError,
	}
	ErrStatsDerivationFailed = &AppError{
		Code:       CodeStatsDerivationFailed,
		Message:    "处理监控数据失败",
		StatusCode: http.StatusInternalServerError,
	}
	ErrInvalidRange = &AppError{
		Code:       CodeInvalidRange,
		Message:    "时间范围格式错误",
		StatusCode: http.StatusBadRequest,
	}
)

func New(code int, message string, statusCode int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:       500,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewStatsDerivationFailed 包装统计计算过程中的意外错误，保留原始信息
func NewStatsDerivationFailed(cause error) *AppError {
	return New(ErrStatsDerivationFailed.Code, ErrStatsDerivationFailed.Message, ErrStatsDerivationFailed.StatusCode, cause)
}

// NewInvalidRange 描述无法解析的时间范围 token
func NewInvalidRange(cause error) *AppError {
	return New(ErrInvalidRange.Code, ErrInvalidRange.Message, ErrInvalidRange.StatusCode, cause)
}
