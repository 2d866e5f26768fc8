// Package stats 从单条监控记录派生仪表盘统计数据。
//
// 所有函数都是纯函数：不修改输入，不跨调用缓存，当前时间由调用方注入。
package stats

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"uptime-board/model"
	apperrors "uptime-board/pkg/errors"
	"uptime-board/pkg/logger"
)

const (
	responseWindow = 24 * time.Hour
	downtimeWindow = 30 * 24 * time.Hour
)

var errNilMonitor = errors.New("monitor record is nil")

// 派生步骤，测试中替换以模拟意外错误
var (
	averageStep  = AverageResponseTime
	hourlyStep   = HourlyResponseTimes
	downtimeStep = DowntimeLogs
	uptimeStep   = UptimeData
)

// Derive 计算单条记录的统计数据。
// 任一步骤出现意外错误时返回 ErrStatsDerivationFailed，不返回部分结果
func Derive(m *model.Monitor, now time.Time) (s *model.Stats, err error) {
	if m == nil {
		logger.Error("处理监控数据失败", zap.Error(errNilMonitor))
		return nil, apperrors.NewStatsDerivationFailed(errNilMonitor)
	}

	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			logger.Error("处理监控数据失败", zap.Int64("monitor_id", m.ID), zap.Error(cause))
			s, err = nil, apperrors.NewStatsDerivationFailed(cause)
		}
	}()

	s = &model.Stats{
		AvgResponseTime:     averageStep(m.ResponseTimes, m.AverageResponseTime.Float64(), now),
		HourlyResponseTimes: hourlyStep(m.ResponseTimes, now),
	}
	s.DowntimeLogs, s.TotalDowntime = downtimeStep(m.Logs, now)
	s.DailyUptimes, s.Uptime = uptimeStep(m.CustomUptimeRanges)
	return s, nil
}

// Process 返回原样透传的记录和新计算的统计
func Process(m *model.Monitor, now time.Time) (*model.ProcessedMonitor, error) {
	s, err := Derive(m, now)
	if err != nil {
		return nil, err
	}
	return &model.ProcessedMonitor{Monitor: *m, Stats: s}, nil
}

// ProcessAll 并发处理多条记录，结果顺序与输入一致；任一记录失败即返回错误
func ProcessAll(ctx context.Context, monitors []model.Monitor, now time.Time) ([]model.ProcessedMonitor, error) {
	out := make([]model.ProcessedMonitor, len(monitors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range monitors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pm, err := Process(&monitors[i], now)
			if err != nil {
				return fmt.Errorf("monitor %d: %w", monitors[i].ID, err)
			}
			out[i] = *pm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
