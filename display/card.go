package display

import (
	"time"

	"uptime-board/model"
)

// Options 卡片渲染选项
type Options struct {
	MaxDowntimeLogs int
	Location        *time.Location
}

// LogEntry 格式化后的宕机日志
type LogEntry struct {
	Time     string `json:"time"`
	Duration string `json:"duration"`
	Reason   string `json:"reason"`
}

// Card 单个监控的渲染数据
type Card struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	Type            string       `json:"type"`
	Status          model.Status `json:"status"`
	Style           StatusStyle  `json:"style"`
	AvgResponseTime string       `json:"avgResponseTime"`
	Uptime          string       `json:"uptime"`
	ValidDays       int          `json:"validDays"`
	DowntimeSummary string       `json:"downtimeSummary"`
	DowntimeLogs    []LogEntry   `json:"downtimeLogs"`
	Stats           *model.Stats `json:"stats"`
}

// NewCard 组合查找表、格式化和统计结果
func NewCard(pm *model.ProcessedMonitor, t time.Time, opts Options) Card {
	if opts.MaxDowntimeLogs <= 0 {
		opts.MaxDowntimeLogs = DefaultMaxDowntimeLogs
	}
	if opts.Location == nil {
		opts.Location = t.Location()
	}
	t = t.In(opts.Location)

	validDays := ValidDays(pm, NewDateRange(t), t)

	card := Card{
		ID:              pm.ID,
		Name:            pm.FriendlyName,
		URL:             NormalizeURL(pm.URL),
		Type:            TypeLabel(pm.Type),
		Status:          pm.Status,
		Style:           StatusStyleFor(pm.Status),
		ValidDays:       validDays,
		DowntimeSummary: DowntimeSummary(pm, validDays),
		Stats:           pm.Stats,
	}

	var avg float64
	if pm.Stats != nil {
		if pm.Stats.AvgResponseTime != nil {
			avg = float64(*pm.Stats.AvgResponseTime)
		}
		card.Uptime = FormatUptime(pm.Stats.Uptime)
	} else {
		card.Uptime = FormatUptime(0)
	}
	card.AvgResponseTime = FormatResponseTime(avg)

	logs := TopDowntimeLogs(pm, opts.MaxDowntimeLogs)
	card.DowntimeLogs = make([]LogEntry, len(logs))
	for i, l := range logs {
		card.DowntimeLogs[i] = LogEntry{
			Time:     FormatDateTime(l.Datetime, opts.Location),
			Duration: FormatDuration(l.Duration),
			Reason:   LogErrorMessage(l),
		}
	}
	return card
}
