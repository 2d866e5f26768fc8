package model

// Status 监控状态
type Status int

const (
	StatusPaused    Status = 0
	StatusPreparing Status = 1
	StatusOnline    Status = 2
	StatusOffline   Status = 9
)

// MonitorType 监控类型代码，未知代码按 HTTP 显示
type MonitorType int

const (
	MonitorTypeHTTP    MonitorType = 0
	MonitorTypeHTTPS   MonitorType = 1
	MonitorTypeKeyword MonitorType = 2
	MonitorTypePing    MonitorType = 3
	MonitorTypePort    MonitorType = 4
)

// 日志类型
const (
	LogTypeDown    = 1 // 宕机
	LogTypeUp      = 2
	LogTypeStarted = 98
	LogTypePaused  = 99
)

// ResponseTime 单次响应时间采样
type ResponseTime struct {
	Value    float64 `json:"value"`    // 毫秒
	Datetime int64   `json:"datetime"` // UNIX 秒
}

// LogReason 日志原因，code 可能是数字或字符串
type LogReason struct {
	Code   FlexFloat `json:"code"`
	Detail string    `json:"detail"`
}

// Log 监控日志条目
type Log struct {
	Type     int        `json:"type"`
	Datetime int64      `json:"datetime"`
	Duration float64    `json:"duration"` // 秒
	Reason   *LogReason `json:"reason,omitempty"`
}

// Monitor 由外部数据层拉取的完整监控记录，只读
type Monitor struct {
	ID             int64       `json:"id"`
	FriendlyName   string      `json:"friendly_name"`
	URL            string      `json:"url"`
	Type           MonitorType `json:"type"`
	Status         Status      `json:"status"`
	CreateDatetime int64       `json:"create_datetime"`

	ResponseTimes       []ResponseTime `json:"response_times,omitempty"`
	AverageResponseTime FlexFloat      `json:"average_response_time"` // 无采样时的兜底值
	Logs                []Log          `json:"logs,omitempty"`
	CustomUptimeRanges  string         `json:"custom_uptime_ranges,omitempty"` // "-" 分隔的每日可用率，最新的在前
}
