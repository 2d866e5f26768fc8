package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uptime-board/model"
)

var cst = time.FixedZone("CST", 8*3600)

func f(v float64) *float64 { return &v }

// --------------- lookup tables ---------------

func TestStatusStyleFor(t *testing.T) {
	tests := []struct {
		status model.Status
		text   string
		color  string
	}{
		{model.StatusOnline, "在线", "green"},
		{model.StatusPaused, "暂停", "yellow"},
		{model.StatusPreparing, "准备中", "yellow"},
		{model.StatusOffline, "离线", "red"},
		{model.Status(42), "未知", "gray"},
	}
	for _, tt := range tests {
		s := StatusStyleFor(tt.status)
		assert.Equal(t, tt.text, s.Text)
		assert.Equal(t, tt.color, s.Color)
	}

	online := StatusStyleFor(model.StatusOnline)
	assert.Equal(t, "bg-green-50 dark:bg-green-900/30 text-green-600 dark:text-green-400", online.Badge)
	assert.Equal(t, "bg-green-500 dark:bg-green-400", online.Dot)
	assert.Equal(t, "text-green-500", online.TextClass)
	assert.Equal(t, "hover:text-green-600 dark:hover:text-green-300", online.HoverText)
	assert.Equal(t, "hover:bg-green-50 dark:hover:bg-green-900/30", online.HoverBg)
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "HTTPS", TypeLabel(1))
	assert.Equal(t, "Keyword", TypeLabel(2))
	assert.Equal(t, "PING", TypeLabel(3))
	assert.Equal(t, "Port", TypeLabel(4))
	assert.Equal(t, "HTTP", TypeLabel(0))
	assert.Equal(t, "HTTP", TypeLabel(77))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "连接超时", ErrorMessage(333333))
	assert.Equal(t, "无响应", ErrorMessage(444444))
	assert.Equal(t, "DNS解析失败", ErrorMessage(100001))
	assert.Equal(t, "离线状态", ErrorMessage(98))
	assert.Equal(t, "失联状态", ErrorMessage(99))
	assert.Equal(t, "连接异常", ErrorMessage(1))
}

func TestLogErrorMessage(t *testing.T) {
	assert.Equal(t, "连接异常", LogErrorMessage(model.Log{}))
	assert.Equal(t, "无响应", LogErrorMessage(model.Log{Reason: &model.LogReason{Code: 444444}}))
	assert.Equal(t, "连接异常", LogErrorMessage(model.Log{Reason: &model.LogReason{Code: 98.5}}))
}

func TestExportTablesIsCopy(t *testing.T) {
	tables := ExportTables()
	tables.Errors[98] = "changed"
	tables.Statuses[model.StatusOnline] = StatusStyle{}

	assert.Equal(t, "离线状态", ErrorMessage(98))
	assert.Equal(t, "在线", StatusStyleFor(model.StatusOnline).Text)
	assert.Equal(t, 300, tables.RefreshInterval)
}

// --------------- formatters ---------------

func TestFormatResponseTime(t *testing.T) {
	assert.Equal(t, "0 ms", FormatResponseTime(0))
	assert.Equal(t, "124 ms", FormatResponseTime(123.5))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0.00%", FormatUptime(0))
	assert.Equal(t, "97.67%", FormatUptime(97.6666))
	assert.Equal(t, "100.00%", FormatUptime(100))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0秒"},
		{-5, "0秒"},
		{45, "45秒"},
		{60, "1分钟"},
		{125, "2分钟"},
		{3600, "1小时"},
		{3725, "1小时2分钟"},
		{100 * 3600, "约100小时"},
		{99*3600 + 59*60, "99小时59分钟"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "%v", tt.in)
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 0, 0, cst).Unix()
	assert.Equal(t, "03-09 07:05", FormatDateTime(ts, cst))
	assert.Equal(t, "03-08 23:05", FormatDateTime(ts, time.UTC))
}

// --------------- summary helpers ---------------

func TestDowntimeSummary(t *testing.T) {
	withLogs := &model.ProcessedMonitor{
		Stats: &model.Stats{
			DowntimeLogs:  []model.Log{{Type: model.LogTypeDown}, {Type: model.LogTypeDown}},
			TotalDowntime: 3725,
		},
	}
	offline := &model.ProcessedMonitor{
		Monitor: model.Monitor{Status: model.StatusOffline},
		Stats:   &model.Stats{DowntimeLogs: []model.Log{}},
	}
	healthy := &model.ProcessedMonitor{
		Monitor: model.Monitor{Status: model.StatusOnline},
		Stats:   &model.Stats{DowntimeLogs: []model.Log{}},
	}

	assert.Equal(t, "暂无数据", DowntimeSummary(withLogs, 0))
	assert.Equal(t, "最近30天 2 次故障，总计1小时2分钟", DowntimeSummary(withLogs, 30))
	assert.Equal(t, "当前离线", DowntimeSummary(offline, 12))
	assert.Equal(t, "最近12天运行正常", DowntimeSummary(healthy, 12))
}

func TestTopDowntimeLogs(t *testing.T) {
	logs := make([]model.Log, 20)
	for i := range logs {
		logs[i] = model.Log{Type: model.LogTypeDown, Datetime: int64(100 - i)}
	}
	pm := &model.ProcessedMonitor{Stats: &model.Stats{DowntimeLogs: logs}}

	top := TopDowntimeLogs(pm, DefaultMaxDowntimeLogs)
	require.Len(t, top, 15)
	assert.Equal(t, int64(100), top[0].Datetime)
	assert.Len(t, TopDowntimeLogs(pm, 50), 20)
	assert.Empty(t, TopDowntimeLogs(&model.ProcessedMonitor{}, 15))
}

func TestNewDateRange(t *testing.T) {
	now := time.Date(2024, 3, 1, 18, 30, 0, 0, cst)
	dr := NewDateRange(now)

	require.Len(t, dr.Dates, 30)
	assert.Equal(t, dr.Dates[0], dr.StartDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, cst), dr.Dates[29])
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, cst), dr.Dates[0]) // 闰年二月
	for i := 1; i < len(dr.Dates); i++ {
		assert.Equal(t, 24*time.Hour, dr.Dates[i].Sub(dr.Dates[i-1]))
	}
}

func TestValidDays(t *testing.T) {
	now := time.Date(2024, 3, 30, 12, 0, 0, 0, cst)
	dr := NewDateRange(now) // 3/1 .. 3/30
	daily := make([]*float64, 30)
	for i := range daily {
		if i != 3 && i != 25 {
			daily[i] = f(100)
		}
	}
	daily[26] = f(0) // 0 仍算有数据

	oldMonitor := &model.ProcessedMonitor{
		Monitor: model.Monitor{CreateDatetime: time.Date(2023, 1, 1, 0, 0, 0, 0, cst).Unix()},
		Stats:   &model.Stats{DailyUptimes: daily},
	}
	assert.Equal(t, 28, ValidDays(oldMonitor, dr, now))

	recent := &model.ProcessedMonitor{
		Monitor: model.Monitor{CreateDatetime: time.Date(2024, 3, 21, 8, 0, 0, 0, cst).Unix()},
		Stats:   &model.Stats{DailyUptimes: daily},
	}
	// 从下标 20 开始，其中下标 25 为 nil
	assert.Equal(t, 9, ValidDays(recent, dr, now))

	future := &model.ProcessedMonitor{
		Monitor: model.Monitor{CreateDatetime: now.Add(48 * time.Hour).Unix()},
		Stats:   &model.Stats{DailyUptimes: daily},
	}
	assert.Equal(t, 1, ValidDays(future, dr, now))

	assert.Zero(t, ValidDays(&model.ProcessedMonitor{}, dr, now))
}

func TestSortMonitors(t *testing.T) {
	in := []model.ProcessedMonitor{
		{Monitor: model.Monitor{ID: 1, Status: model.StatusOffline}},
		{Monitor: model.Monitor{ID: 2, Status: model.StatusOnline}},
		{Monitor: model.Monitor{ID: 3, Status: model.StatusOffline}},
		{Monitor: model.Monitor{ID: 4, Status: model.StatusPaused}},
	}
	out := SortMonitors(in)

	ids := make([]int64, len(out))
	for i, pm := range out {
		ids[i] = pm.ID
	}
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)
	assert.Equal(t, int64(1), in[0].ID, "input untouched")
	assert.Empty(t, SortMonitors(nil))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "", NormalizeURL(""))
	assert.Equal(t, "http://example.com", NormalizeURL("example.com"))
	assert.Equal(t, "https://example.com", NormalizeURL("https://example.com"))
	assert.Equal(t, "http://example.com", NormalizeURL("http://example.com"))
}

// --------------- NewCard ---------------

func TestNewCard(t *testing.T) {
	now := time.Date(2024, 3, 30, 12, 0, 0, 0, cst)
	avg := 153
	logs := make([]model.Log, 18)
	for i := range logs {
		logs[i] = model.Log{
			Type:     model.LogTypeDown,
			Datetime: now.Add(-time.Duration(i+1) * time.Hour).Unix(),
			Duration: 60,
			Reason:   &model.LogReason{Code: 333333},
		}
	}
	pm := &model.ProcessedMonitor{
		Monitor: model.Monitor{
			ID:             5,
			FriendlyName:   "api",
			URL:            "api.example.com",
			Type:           model.MonitorTypePing,
			Status:         model.StatusOnline,
			CreateDatetime: time.Date(2023, 1, 1, 0, 0, 0, 0, cst).Unix(),
		},
		Stats: &model.Stats{
			AvgResponseTime: &avg,
			DowntimeLogs:    logs,
			TotalDowntime:   18 * 60,
			DailyUptimes:    []*float64{f(99), f(100)},
			Uptime:          99.5,
		},
	}

	card := NewCard(pm, now, Options{Location: cst})

	assert.Equal(t, "PING", card.Type)
	assert.Equal(t, "http://api.example.com", card.URL)
	assert.Equal(t, "在线", card.Style.Text)
	assert.Equal(t, "153 ms", card.AvgResponseTime)
	assert.Equal(t, "99.50%", card.Uptime)
	assert.Equal(t, 2, card.ValidDays)
	assert.Equal(t, "最近2天 18 次故障，总计18分钟", card.DowntimeSummary)
	require.Len(t, card.DowntimeLogs, DefaultMaxDowntimeLogs)
	assert.Equal(t, "03-30 11:00", card.DowntimeLogs[0].Time)
	assert.Equal(t, "1分钟", card.DowntimeLogs[0].Duration)
	assert.Equal(t, "连接超时", card.DowntimeLogs[0].Reason)
}

func TestNewCard_NoStats(t *testing.T) {
	card := NewCard(&model.ProcessedMonitor{}, time.Now(), Options{})
	assert.Equal(t, "0 ms", card.AvgResponseTime)
	assert.Equal(t, "0.00%", card.Uptime)
	assert.Equal(t, "暂无数据", card.DowntimeSummary)
	assert.Empty(t, card.DowntimeLogs)
}
