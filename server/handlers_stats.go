package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uptime-board/display"
	"uptime-board/model"
	"uptime-board/pkg/logger"
	"uptime-board/ranges"
	"uptime-board/report"
	"uptime-board/stats"
)

// deriveStatsAPI 计算单条监控记录的统计
func (s *Server) deriveStatsAPI(c *gin.Context) {
	var m model.Monitor
	if err := c.ShouldBindJSON(&m); err != nil {
		respondBadRequest(c, err)
		return
	}

	now := s.now()
	pm, err := stats.Process(&m, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, display.NewCard(pm, now, s.cardOptions()))
}

// deriveBatchAPI 批量计算，离线的监控排在最后
func (s *Server) deriveBatchAPI(c *gin.Context) {
	var monitors []model.Monitor
	if err := c.ShouldBindJSON(&monitors); err != nil {
		respondBadRequest(c, err)
		return
	}

	now := s.now()
	cards, err := s.buildCards(c, monitors, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"generatedAt": now.Unix(),
		"monitors":    cards,
	})
}

// reportAPI 渲染 HTML 状态报告
func (s *Server) reportAPI(c *gin.Context) {
	var monitors []model.Monitor
	if err := c.ShouldBindJSON(&monitors); err != nil {
		respondBadRequest(c, err)
		return
	}

	now := s.now()
	cards, err := s.buildCards(c, monitors, now)
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := report.Render(report.Build(s.reportTitle, cards, now))
	if err != nil {
		logger.Error("Failed to render status report", zap.Error(err))
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) buildCards(c *gin.Context, monitors []model.Monitor, now time.Time) ([]display.Card, error) {
	processed, err := stats.ProcessAll(c.Request.Context(), monitors, now)
	if err != nil {
		return nil, err
	}
	sorted := display.SortMonitors(processed)
	cards := make([]display.Card, len(sorted))
	opts := s.cardOptions()
	for i := range sorted {
		cards[i] = display.NewCard(&sorted[i], now, opts)
	}
	return cards, nil
}

// rangesAPI 返回拉取数据时使用的 custom_uptime_ranges 参数。
// 带 check 参数时校验给定的编码
func (s *Server) rangesAPI(c *gin.Context) {
	if check, ok := c.GetQuery("check"); ok {
		rs, err := ranges.Parse(check)
		if err != nil {
			respondError(c, err)
			return
		}
		days := make([]gin.H, len(rs))
		for i, r := range rs {
			days[i] = gin.H{"start": r.Start, "end": r.End}
		}
		c.JSON(http.StatusOK, gin.H{"days": len(rs), "ranges": days})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"custom_uptime_ranges": ranges.CustomUptimeRanges(s.now()),
		"days":                 ranges.Days,
	})
}

// displayTablesAPI 导出状态样式、类型与错误信息查找表
func (s *Server) displayTablesAPI(c *gin.Context) {
	tables := display.ExportTables()
	tables.RefreshInterval = int(s.refreshInterval / time.Second)
	c.JSON(http.StatusOK, tables)
}
