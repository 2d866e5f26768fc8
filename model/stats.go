package model

// HoursInDay 小时响应时间分布的固定槽位数
const HoursInDay = 24

// Stats 由单条监控记录派生的统计数据，每次调用重新计算
type Stats struct {
	// 最近 24 小时平均响应时间（毫秒），无数据为 nil
	AvgResponseTime *int `json:"avgResponseTime"`

	// 下标 0 为最近一小时，23 为 24 小时前
	HourlyResponseTimes [HoursInDay]*int `json:"dailyResponseTimes"`

	// 最近 30 天宕机日志，按时间倒序
	DowntimeLogs  []Log   `json:"downtimeLogs"`
	TotalDowntime float64 `json:"totalDowntime"` // 秒

	// 每日可用率，旧的在前；无法解析的天为 nil
	DailyUptimes []*float64 `json:"dailyUptimes"`
	Uptime       float64    `json:"uptime"`
}

// ProcessedMonitor 原始记录加上派生统计
type ProcessedMonitor struct {
	Monitor
	Stats *Stats `json:"stats"`
}
