package display

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"uptime-board/model"
	"uptime-board/ranges"
)

// DefaultMaxDowntimeLogs 卡片中展示的宕机日志条数
const DefaultMaxDowntimeLogs = 15

// DowntimeSummary 宕机统计文案
func DowntimeSummary(pm *model.ProcessedMonitor, validDays int) string {
	if validDays <= 0 {
		return "暂无数据"
	}

	var logs []model.Log
	var total float64
	if pm.Stats != nil {
		logs = pm.Stats.DowntimeLogs
		total = pm.Stats.TotalDowntime
	}

	if len(logs) > 0 {
		return fmt.Sprintf("最近%d天 %d 次故障，总计%s", validDays, len(logs), FormatDuration(total))
	}
	if pm.Status == model.StatusOffline {
		return "当前离线"
	}
	return fmt.Sprintf("最近%d天运行正常", validDays)
}

// TopDowntimeLogs 最多返回 limit 条最近的宕机日志
func TopDowntimeLogs(pm *model.ProcessedMonitor, limit int) []model.Log {
	if pm.Stats == nil || limit <= 0 {
		return []model.Log{}
	}
	logs := pm.Stats.DowntimeLogs
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs
}

// DateRange 最近 30 个自然日的零点，旧的在前
type DateRange struct {
	StartDate time.Time
	Dates     []time.Time
}

// NewDateRange 以 t 所在时区计算
func NewDateRange(t time.Time) DateRange {
	today := now.With(t).BeginningOfDay()
	dates := make([]time.Time, ranges.Days)
	for i := range dates {
		dates[i] = now.With(today.AddDate(0, 0, -(ranges.Days - 1 - i))).BeginningOfDay()
	}
	return DateRange{StartDate: dates[0], Dates: dates}
}

// ValidDays 从创建日起有数据的天数；创建时间晚于当前时间时按当前时间算
func ValidDays(pm *model.ProcessedMonitor, dr DateRange, t time.Time) int {
	if pm.Stats == nil || pm.Stats.DailyUptimes == nil {
		return 0
	}

	created := time.Unix(pm.CreateDatetime, 0)
	if created.After(t) {
		created = t
	}
	skip := int(created.Sub(dr.StartDate) / (24 * time.Hour))
	if created.Before(dr.StartDate) {
		skip = 0
	}

	daily := pm.Stats.DailyUptimes
	if skip >= len(daily) {
		return 0
	}
	n := 0
	for _, v := range daily[skip:] {
		if v != nil {
			n++
		}
	}
	return n
}

// SortMonitors 离线的排到最后，其余保持原顺序。不修改输入
func SortMonitors(monitors []model.ProcessedMonitor) []model.ProcessedMonitor {
	out := make([]model.ProcessedMonitor, len(monitors))
	copy(out, monitors)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status != model.StatusOffline && out[j].Status == model.StatusOffline
	})
	return out
}

// NormalizeURL 缺少协议时补全 http://
func NormalizeURL(u string) string {
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "http://" + u
}
