package ranges

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "uptime-board/pkg/errors"
)

var shanghai = time.FixedZone("CST", 8*3600)

func TestGenerate_NewestFirst(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 45, 10, 0, shanghai)
	rs := Generate(now, 3)
	require.Len(t, rs, 3)

	today := time.Date(2024, 3, 15, 0, 0, 0, 0, shanghai).Unix()
	assert.Equal(t, today, rs[0].Start)
	assert.Equal(t, today+86399, rs[0].End)
	assert.Equal(t, today-86400, rs[1].Start)
	assert.Equal(t, today-2*86400, rs[2].Start)
}

func TestGenerate_NonPositive(t *testing.T) {
	assert.Empty(t, Generate(time.Now(), 0))
	assert.Empty(t, Generate(time.Now(), -1))
}

func TestCustomUptimeRanges_RoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 2, 0, 30, 0, 0, shanghai) // 跨月、跨年
	encoded := CustomUptimeRanges(now)
	assert.Len(t, strings.Split(encoded, "-"), Days)

	rs, err := Parse(encoded)
	require.NoError(t, err)
	require.Len(t, rs, Days)

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, shanghai).Unix(), rs[0].Start)
	for i, r := range rs {
		assert.Equal(t, int64(86399), r.End-r.Start, "day %d", i)
		if i > 0 {
			assert.Equal(t, rs[i-1].Start-86400, r.Start, "day %d not consecutive", i)
		}
	}
	last := time.Unix(rs[Days-1].Start, 0).In(shanghai)
	assert.Equal(t, "2023-12-04", last.Format("2006-01-02"))

	assert.Equal(t, encoded, Format(rs))
}

func TestCustomUptimeRanges_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 夏令时开始，当天只有 23 小时
	now := time.Date(2024, 3, 20, 9, 15, 0, 0, ny)
	rs, err := Parse(CustomUptimeRanges(now))
	require.NoError(t, err)
	require.Len(t, rs, Days)

	seen := make(map[string]bool, Days)
	for i, r := range rs {
		start := time.Unix(r.Start, 0).In(ny)
		end := time.Unix(r.End, 0).In(ny)
		want := time.Date(2024, 3, 20-i, 0, 0, 0, 0, ny)

		date := start.Format("2006-01-02")
		assert.Equal(t, want.Format("2006-01-02"), date, "day %d", i)
		assert.Equal(t, "00:00:00", start.Format("15:04:05"), "day %d", i)
		assert.Equal(t, "23:59:59", end.Format("15:04:05"), "day %d", i)
		assert.Equal(t, date, end.Format("2006-01-02"), "day %d", i)
		assert.False(t, seen[date], "duplicate day %s", date)
		seen[date] = true
	}

	dst := rs[10]
	assert.Equal(t, "2024-03-10", time.Unix(dst.Start, 0).In(ny).Format("2006-01-02"))
	assert.Equal(t, int64(23*3600-1), dst.End-dst.Start)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing end", "100_"},
		{"letters", "abc_def"},
		{"three fields", "1_2_3"},
		{"start after end", "200_100"},
		{"trailing separator", "1_2-"},
		{"overflow", "99999999999999999999_1"},
		{"second token bad", "1_2-x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidRange))
		})
	}
}

func TestParse_Empty(t *testing.T) {
	rs, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, rs)
}

func TestParseUptimes(t *testing.T) {
	got := ParseUptimes("98-0-100-95")
	require.Len(t, got, 4)
	want := []float64{95, 100, 0, 98}
	for i, w := range want {
		require.NotNil(t, got[i], "slot %d", i)
		assert.InDelta(t, w, *got[i], 1e-9)
	}
}

func TestParseUptimes_InvalidSlotsKeepPosition(t *testing.T) {
	got := ParseUptimes("99.9-abc-101-")
	require.Len(t, got, 4)
	assert.Nil(t, got[0]) // ""
	assert.Nil(t, got[1]) // 101
	assert.Nil(t, got[2]) // abc
	require.NotNil(t, got[3])
	assert.InDelta(t, 99.9, *got[3], 1e-9)
}

func TestParseUptimes_Empty(t *testing.T) {
	assert.Empty(t, ParseUptimes(""))
}
