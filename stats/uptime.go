package stats

import "uptime-board/ranges"

// UptimeData 每日可用率（旧的在前）和有效天的平均值。
// 0 和无法解析的天不计入平均，但保留在每日序列中
func UptimeData(encoded string) ([]*float64, float64) {
	daily := ranges.ParseUptimes(encoded)

	var sum float64
	n := 0
	for _, v := range daily {
		if v == nil || !isValidNumber(*v) {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return daily, 0
	}
	return daily, sum / float64(n)
}
