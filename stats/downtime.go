package stats

import (
	"math"
	"sort"
	"time"

	"uptime-board/model"
)

// DowntimeLogs 最近 30 天的宕机日志（按时间倒序）及总宕机秒数。
// 总数等于返回日志 duration 之和；非有限值在返回的副本中记为 0。
// 返回新切片，不修改输入
func DowntimeLogs(logs []model.Log, now time.Time) ([]model.Log, float64) {
	cutoff := now.Add(-downtimeWindow).Unix()

	recent := make([]model.Log, 0, len(logs))
	var total float64
	for _, l := range logs {
		if l.Type != model.LogTypeDown || l.Datetime < cutoff {
			continue
		}
		l.Duration = finiteOrZero(l.Duration)
		recent = append(recent, l)
		total += l.Duration
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Datetime > recent[j].Datetime
	})
	return recent, total
}

func finiteOrZero(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return d
}
