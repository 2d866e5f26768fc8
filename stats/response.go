package stats

import (
	"math"
	"time"

	"go.uber.org/zap"

	"uptime-board/model"
	"uptime-board/pkg/logger"
)

// bucketHourly 测试中替换以模拟分桶出错
var bucketHourly = bucketByHour

func isValidNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func roundMean(sum float64, n int) *int {
	if n == 0 {
		return nil
	}
	v := int(math.Round(sum / float64(n)))
	return &v
}

// AverageResponseTime 最近 24 小时有效采样的平均值（四舍五入）。
// 没有采样时使用 fallback；都无效返回 nil
func AverageResponseTime(samples []model.ResponseTime, fallback float64, now time.Time) *int {
	if len(samples) == 0 {
		if !isValidNumber(fallback) {
			return nil
		}
		v := int(math.Round(fallback))
		return &v
	}

	cutoff := now.Add(-responseWindow).Unix()
	var sum float64
	n := 0
	for _, rt := range samples {
		if !isValidNumber(rt.Value) || rt.Datetime < cutoff {
			continue
		}
		sum += rt.Value
		n++
	}
	return roundMean(sum, n)
}

// HourlyResponseTimes 最近 24 小时按小时分桶的平均响应时间，下标 0 为最近一小时。
// 分桶出错时记录日志并返回全空的 24 个槽位
func HourlyResponseTimes(samples []model.ResponseTime, now time.Time) (out [model.HoursInDay]*int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("处理响应时间数据出错", zap.Any("panic", r))
			out = [model.HoursInDay]*int{}
		}
	}()
	// 与平均值的截止时间一样按秒计算
	return bucketHourly(samples, now.Truncate(time.Second))
}

func bucketByHour(samples []model.ResponseTime, now time.Time) [model.HoursInDay]*int {
	var (
		sums   [model.HoursInDay]float64
		counts [model.HoursInDay]int
	)
	for _, rt := range samples {
		if !isValidNumber(rt.Value) {
			continue
		}
		idx, ok := hourIndex(now, rt.Datetime)
		if !ok {
			continue
		}
		sums[idx] += rt.Value
		counts[idx]++
	}

	var out [model.HoursInDay]*int
	for i := range out {
		out[i] = roundMean(sums[i], counts[i])
	}
	return out
}

// hourIndex 槽位 i 覆盖 [now-(i+1)h, now-ih)，now 本身归入槽位 0
func hourIndex(now time.Time, ts int64) (int, bool) {
	age := now.Sub(time.Unix(ts, 0))
	if age < 0 {
		return 0, false
	}
	idx := 0
	if age > 0 {
		idx = int((age - 1) / time.Hour)
	}
	if idx >= model.HoursInDay {
		return 0, false
	}
	return idx, true
}
