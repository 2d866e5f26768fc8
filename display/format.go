package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatResponseTime 如 "123 ms"
func FormatResponseTime(ms float64) string {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		ms = 0
	}
	return fmt.Sprintf("%d ms", int64(math.Round(ms)))
}

// FormatUptime 如 "99.95%"
func FormatUptime(uptime float64) string {
	if math.IsNaN(uptime) || math.IsInf(uptime, 0) {
		uptime = 0
	}
	return fmt.Sprintf("%.2f%%", uptime)
}

// FormatDuration 将秒数格式化为中文时长。
// 超过 100 小时只显示小时；有小时或分钟时省略秒
func FormatDuration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0秒"
	}

	h := int64(seconds / 3600)
	m := int64(math.Mod(seconds, 3600) / 60)
	s := math.Mod(seconds, 60)

	if h >= 100 {
		return fmt.Sprintf("约%d小时", h)
	}

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%d小时", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%d分钟", m)
	}
	if h == 0 && m == 0 && s > 0 {
		b.WriteString(strconv.FormatFloat(s, 'f', -1, 64))
		b.WriteString("秒")
	}
	return b.String()
}

// FormatDateTime UNIX 秒格式化为 "MM-dd HH:mm"
func FormatDateTime(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc).Format("01-02 15:04")
}
