// Package ranges 处理 custom_uptime_ranges 的编码格式。
//
// 请求时发送 "<start>_<end>" 的日期区间，以 "-" 连接，最新的一天在前；
// 上游返回同样顺序、以 "-" 连接的每日可用率。
package ranges

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"

	apperrors "uptime-board/pkg/errors"
)

// Days 仪表盘统计的天数
const Days = 30

const (
	tokenSeparator = "-"
	fieldSeparator = "_"
)

var tokenPattern = regexp.MustCompile(`^(\d+)_(\d+)$`)

// DayRange 某个自然日的起止时间（UNIX 秒）
type DayRange struct {
	Start int64
	End   int64
}

func (r DayRange) String() string {
	return strconv.FormatInt(r.Start, 10) + fieldSeparator + strconv.FormatInt(r.End, 10)
}

// Generate 生成以 t 所在自然日为终点的 days 个日期区间，最新的在前。
// 区间边界按 t 的时区计算，每天 00:00:00.000 到 23:59:59.999
func Generate(t time.Time, days int) []DayRange {
	if days <= 0 {
		return []DayRange{}
	}
	out := make([]DayRange, days)
	for i := 0; i < days; i++ {
		day := now.With(t.AddDate(0, 0, -i))
		out[i] = DayRange{
			Start: day.BeginningOfDay().Unix(),
			End:   day.EndOfDay().Unix(),
		}
	}
	return out
}

// Format 编码为请求参数
func Format(rs []DayRange) string {
	tokens := make([]string, len(rs))
	for i, r := range rs {
		tokens[i] = r.String()
	}
	return strings.Join(tokens, tokenSeparator)
}

// CustomUptimeRanges 生成最近 30 天的请求参数
func CustomUptimeRanges(t time.Time) string {
	return Format(Generate(t, Days))
}

// Parse 解析请求参数，每个字段都必须是合法整数且 start <= end
func Parse(s string) ([]DayRange, error) {
	if s == "" {
		return []DayRange{}, nil
	}
	tokens := strings.Split(s, tokenSeparator)
	out := make([]DayRange, 0, len(tokens))
	for i, tok := range tokens {
		m := tokenPattern.FindStringSubmatch(tok)
		if m == nil {
			return nil, apperrors.NewInvalidRange(fmt.Errorf("token %d %q: want <start>_<end>", i, tok))
		}
		start, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, apperrors.NewInvalidRange(fmt.Errorf("token %d start: %w", i, err))
		}
		end, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, apperrors.NewInvalidRange(fmt.Errorf("token %d end: %w", i, err))
		}
		if start > end {
			return nil, apperrors.NewInvalidRange(fmt.Errorf("token %d: start %d after end %d", i, start, end))
		}
		out = append(out, DayRange{Start: start, End: end})
	}
	return out, nil
}

// ParseUptimes 解码上游返回的每日可用率，并反转为旧的在前。
// 无法解析或不在 [0,100] 内的值保留位置，记为 nil
func ParseUptimes(s string) []*float64 {
	if s == "" {
		return []*float64{}
	}
	tokens := strings.Split(s, tokenSeparator)
	out := make([]*float64, len(tokens))
	for i, tok := range tokens {
		out[len(tokens)-1-i] = parsePercent(tok)
	}
	return out
}

func parsePercent(tok string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 100 {
		return nil
	}
	return &v
}
